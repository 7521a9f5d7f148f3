package restapi

import (
	"net/http"
	"strings"

	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) countrySeriesHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	sector, fieldErrors := utils.ParseSectorParam(r.URL.Query(), "sector", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	country, err := api.StatsManager.StatsDB.GetCountry(ctx, id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if country == nil {
		api.sendNotFound(w, r)
		return
	}

	series, err := api.StatsManager.StatsDB.GetCountrySeries(ctx, id, string(sector))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.SeriesEntry{
		ID:      country.ISO3,
		NameEs:  country.NameEs,
		NameEn:  country.NameEn,
		Sector:  string(sector),
		Unit:    unitGDPShare,
		FlagURL: api.StatsManager.CountryFlag(country.ISO3),
		Points:  seriesPoints(series),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, sectorReferences(sector)))
}
