package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) regionsRankingHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	year, fieldErrors := utils.ParseYearParam(params, "year", nil)
	sector, fieldErrors := utils.ParseSectorParam(params, "sector", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	if year == 0 {
		latest, err := api.latestRegionalYear(ctx)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		year = latest
	}

	rows, err := api.StatsManager.StatsDB.GetRegionalByYearSector(ctx, year, string(sector))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.GDPShare)
	}
	ranks := etl.DenseRanks(values)

	entries := make([]models.RankingEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, models.RankingEntry{
			Rank:    ranks[i],
			Code:    row.Code,
			NameEs:  row.NameEs,
			Value:   row.GDPShare,
			FlagURL: api.StatsManager.RegionFlag(row.Code),
		})
	}

	api.sendResponse(w, r, models.NewListResponse(entries, sectorReferences(sector)))
}
