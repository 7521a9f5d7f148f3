package restapi

import (
	"net/http"
	"strings"

	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
	"rdstats.datos-idi.es/statsdb"
)

func (api *RestAPI) regionSeriesHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	if err := utils.ValidateID(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	sector, fieldErrors := utils.ParseSectorParam(r.URL.Query(), "sector", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ctx := r.Context()
	region, err := api.StatsManager.StatsDB.GetRegion(ctx, code)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if region == nil {
		api.sendNotFound(w, r)
		return
	}

	rows, err := api.StatsManager.StatsDB.GetRegionSeries(ctx, code, string(sector))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	series := make([]statsdb.YearValue, 0, len(rows))
	for _, row := range rows {
		series = append(series, statsdb.YearValue{Year: row.Year, Value: row.GDPShare})
	}

	entry := models.SeriesEntry{
		ID:      region.Code,
		NameEs:  region.NameEs,
		Sector:  string(sector),
		Unit:    unitGDPShare,
		FlagURL: api.StatsManager.RegionFlag(region.Code),
		Points:  seriesPoints(series),
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, sectorReferences(sector)))
}
