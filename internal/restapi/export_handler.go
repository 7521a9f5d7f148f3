package restapi

import (
	"fmt"
	"net/http"

	"rdstats.datos-idi.es/internal/export"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) exportRegionsHandler(w http.ResponseWriter, r *http.Request) {
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

	f, err := export.RegionalWorkbook(sector, rows)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	defer f.Close() // nolint:errcheck

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.RegionalFilename(year, sector)))
	if err := f.Write(w); err != nil {
		api.Logger.Error("writing spreadsheet response", "error", err)
	}
}
