package chartsui

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rdstats.datos-idi.es/internal/utils"
)

func (ui *ChartsUI) rankingChartHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	year, fieldErrors := utils.ParseYearParam(params, "year", nil)
	sector, fieldErrors := utils.ParseSectorParam(params, "sector", fieldErrors)
	if len(fieldErrors) > 0 {
		ui.renderError(w, http.StatusBadRequest, "invalid year or sector")
		return
	}

	ctx := r.Context()
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

	rows, err := ui.StatsManager.StatsDB.GetRegionalByYearSector(ctx, year, string(sector))
	if err != nil {
		ui.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Gasto en I+D por comunidad (%% PIB), %d", year),
			Subtitle: sector.LabelES(),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Ranking de comunidades",
			Width:     "1000px",
			Height:    "550px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true)}),
	)

	names := make([]string, 0, len(rows))
	values := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.NameEs)
		values = append(values, opts.BarData{Value: row.GDPShare})
	}
	bar.SetXAxis(names).AddSeries("% PIB", values)

	w.Header().Set("Content-Type", "text/html")
	if err := bar.Render(w); err != nil {
		ui.Logger.Error("rendering ranking chart", "error", err)
	}
}
