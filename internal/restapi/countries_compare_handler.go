package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) countriesCompareHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	year, fieldErrors := utils.ParseYearParam(params, "year", nil)
	sector, fieldErrors := utils.ParseSectorParam(params, "sector", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	if year == 0 {
		latest, err := api.latestNationalYear(ctx)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		year = latest
	}

	rows, err := api.StatsManager.StatsDB.GetNationalComparison(ctx, year, string(sector))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	// Aggregates stay in the list for the reference line but never take a
	// rank slot away from a country.
	countryValues := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.ISO3 != models.EUAggregateID {
			countryValues = append(countryValues, row.GDPShare)
		}
	}
	ranks := etl.DenseRanks(countryValues)

	entries := make([]models.ComparisonEntry, 0, len(rows))
	ranked := 0
	for _, row := range rows {
		entry := models.ComparisonEntry{
			ID:      row.ISO3,
			NameEs:  row.NameEs,
			NameEn:  row.NameEn,
			Value:   row.GDPShare,
			FlagURL: api.StatsManager.CountryFlag(row.ISO3),
		}
		if row.ISO3 == models.EUAggregateID {
			entry.Aggregate = true
		} else {
			entry.Rank = ranks[ranked]
			ranked++
		}
		entries = append(entries, entry)
	}

	api.sendResponse(w, r, models.NewListResponse(entries, sectorReferences(sector)))
}
