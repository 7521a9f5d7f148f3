package restapi

import (
	"context"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/statsdb"
)

// unitGDPShare is the unit every percentage payload carries, matching the
// source tables, which express R&D expenditure as a share of GDP.
const unitGDPShare = "% PIB"

// seriesPoints converts an ordered year/value series into chart points,
// attaching the year-over-year change wherever the preceding year is present.
func seriesPoints(values []statsdb.YearValue) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, len(values))
	for i, value := range values {
		point := models.SeriesPoint{Year: value.Year, Value: value.Value}
		if i > 0 && values[i-1].Year == value.Year-1 {
			if change, ok := etl.YoYChange(values[i-1].Value, value.Value); ok {
				rounded := etl.Round2(change)
				point.YoYChange = &rounded
			}
		}
		points = append(points, point)
	}
	return points
}

// sectorReferences builds the references block for a payload scoped to a
// single sector.
func sectorReferences(sector models.Sector) models.ReferencesModel {
	refs := models.NewEmptyReferences()
	refs.Sectors = []models.SectorReference{models.NewSectorReference(sector)}
	return refs
}

// latestRegionalYear resolves the default year for regional payloads: the
// most recent year present in the regional table.
func (api *RestAPI) latestRegionalYear(ctx context.Context) (int, error) {
	years, err := api.StatsManager.StatsDB.ListRegionalYears(ctx)
	if err != nil {
		return 0, err
	}
	if len(years) == 0 {
		return 0, nil
	}
	return years[0], nil
}

// latestNationalYear resolves the default year for national payloads.
func (api *RestAPI) latestNationalYear(ctx context.Context) (int, error) {
	years, err := api.StatsManager.StatsDB.ListNationalYears(ctx)
	if err != nil {
		return 0, err
	}
	if len(years) == 0 {
		return 0, nil
	}
	return years[0], nil
}
