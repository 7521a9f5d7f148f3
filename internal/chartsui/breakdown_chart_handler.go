package chartsui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/utils"
)

func (ui *ChartsUI) breakdownChartHandler(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	year, fieldErrors := utils.ParseYearParam(r.URL.Query(), "year", nil)
	if len(fieldErrors) > 0 {
		ui.renderError(w, http.StatusBadRequest, "invalid year")
		return
	}

	ctx := r.Context()
	region, err := ui.StatsManager.StatsDB.GetRegion(ctx, code)
	if err != nil {
		ui.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if region == nil {
		ui.renderError(w, http.StatusNotFound, "unknown community")
		return
	}

	if year == 0 {
		years, err := ui.StatsManager.StatsDB.ListRegionalYears(ctx)
		if err != nil {
			ui.renderError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(years) > 0 {
			year = years[0]
		}
	}

	rows, err := ui.StatsManager.StatsDB.GetRegionBreakdown(ctx, code, year)
	if err != nil {
		ui.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Gasto en I+D por sector: %s, %d", region.NameEs, year),
			Subtitle: "Miles de euros",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: region.NameEs,
			Width:     "800px",
			Height:    "550px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true), Formatter: "{b}: {d}%"}),
	)

	items := make([]opts.PieData, 0, len(rows))
	for _, row := range rows {
		if row.Sector == string(models.SectorTotal) {
			continue
		}
		items = append(items, opts.PieData{
			Name:  models.Sector(row.Sector).LabelES(),
			Value: row.SpendThousands,
		})
	}
	pie.AddSeries("Gasto", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: boolPtr(true), Formatter: "{b}: {d}%"}),
	)

	w.Header().Set("Content-Type", "text/html")
	if err := pie.Render(w); err != nil {
		ui.Logger.Error("rendering breakdown chart", "error", err)
	}
}
