package restapi

import (
	"net/http"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) regionsMapHandler(w http.ResponseWriter, r *http.Request) {
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

	previous, err := api.StatsManager.StatsDB.GetRegionalByYearSector(ctx, year-1, string(sector))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	previousShares := make(map[string]float64, len(previous))
	for _, row := range previous {
		previousShares[row.Code] = row.GDPShare
	}

	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.GDPShare)
	}
	ranks := etl.DenseRanks(values)

	entries := make([]models.MapEntry, 0, len(rows))
	for i, row := range rows {
		entry := models.MapEntry{
			Code:           row.Code,
			NameEs:         row.NameEs,
			Value:          row.GDPShare,
			SpendThousands: row.SpendThousands,
			SpendDisplay:   etl.FormatEuro(row.SpendThousands),
			GDPThousands:   row.GDPThousands,
			Rank:           ranks[i],
			FlagURL:        api.StatsManager.RegionFlag(row.Code),
		}
		if prev, ok := previousShares[row.Code]; ok {
			if change, ok := etl.YoYChange(prev, row.GDPShare); ok {
				rounded := etl.Round2(change)
				entry.YoYChange = &rounded
			}
		}
		entries = append(entries, entry)
	}

	data := models.MapData{
		Year:    year,
		Sector:  string(sector),
		Unit:    unitGDPShare,
		Entries: entries,
	}
	if value, ok, err := api.StatsManager.StatsDB.GetNationalValue(ctx, models.SpainID, year, string(sector)); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	} else if ok {
		data.NationalValue = &value
	}
	if value, ok, err := api.StatsManager.StatsDB.GetNationalValue(ctx, models.EUAggregateID, year, string(sector)); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	} else if ok {
		data.EUValue = &value
	}

	api.sendResponse(w, r, models.NewEntryResponse(data, sectorReferences(sector)))
}
