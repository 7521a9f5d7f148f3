package restapi

import (
	"net/http"
	"strings"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (api *RestAPI) regionBreakdownHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	if err := utils.ValidateID(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return
	}

	year, fieldErrors := utils.ParseYearParam(r.URL.Query(), "year", nil)
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

	if year == 0 {
		latest, err := api.latestRegionalYear(ctx)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		year = latest
	}

	rows, err := api.StatsManager.StatsDB.GetRegionBreakdown(ctx, code, year)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	var total float64
	for _, row := range rows {
		if row.Sector == string(models.SectorTotal) {
			total = row.SpendThousands
			break
		}
	}

	slices := make([]models.BreakdownSlice, 0, len(rows))
	for _, row := range rows {
		if row.Sector == string(models.SectorTotal) {
			continue
		}
		sector := models.Sector(row.Sector)
		slice := models.BreakdownSlice{
			Sector:         row.Sector,
			LabelEs:        sector.LabelES(),
			LabelEn:        sector.LabelEN(),
			SpendThousands: row.SpendThousands,
		}
		if share, ok := etl.ShareOfTotal(row.SpendThousands, total); ok {
			slice.Share = etl.Round2(share)
		}
		slices = append(slices, slice)
	}

	entry := models.BreakdownEntry{
		Code:           region.Code,
		NameEs:         region.NameEs,
		Year:           year,
		TotalThousands: total,
		Slices:         slices,
	}

	refs := models.NewEmptyReferences()
	refs.Sectors = models.NewSectorReferences()
	api.sendResponse(w, r, models.NewEntryResponse(entry, refs))
}
