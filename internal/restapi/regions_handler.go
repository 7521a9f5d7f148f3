package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/models"
)

func (api *RestAPI) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regions, err := api.StatsManager.StatsDB.ListRegions(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entries := make([]models.RegionReference, 0, len(regions))
	for _, region := range regions {
		entries = append(entries, models.RegionReference{
			Code:    region.Code,
			NameEs:  region.NameEs,
			FlagURL: api.StatsManager.RegionFlag(region.Code),
		})
	}

	api.sendResponse(w, r, models.NewListResponse(entries, models.NewEmptyReferences()))
}
