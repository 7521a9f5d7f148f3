package chartsui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rdstats.datos-idi.es/internal/utils"
)

// boolPtr helper
func boolPtr(b bool) *bool { return &b }

func (ui *ChartsUI) countryChartHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(utils.ExtractIDFromParams(r, "id"))
	sector, fieldErrors := utils.ParseSectorParam(r.URL.Query(), "sector", nil)
	if len(fieldErrors) > 0 {
		ui.renderError(w, http.StatusBadRequest, "unknown sector")
		return
	}

	ctx := r.Context()
	country, err := ui.StatsManager.StatsDB.GetCountry(ctx, id)
	if err != nil {
		ui.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if country == nil {
		ui.renderError(w, http.StatusNotFound, "unknown country")
		return
	}

	series, err := ui.StatsManager.StatsDB.GetCountrySeries(ctx, id, string(sector))
	if err != nil {
		ui.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Gasto en I+D (%% PIB): %s", country.NameEs),
			Subtitle: sector.LabelES(),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: country.NameEs,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: boolPtr(true), Trigger: "axis"}),
	)

	years := make([]string, 0, len(series))
	values := make([]opts.LineData, 0, len(series))
	for _, point := range series {
		years = append(years, fmt.Sprintf("%d", point.Year))
		values = append(values, opts.LineData{Value: point.Value})
	}
	line.SetXAxis(years).AddSeries(country.NameEs, values)

	w.Header().Set("Content-Type", "text/html")
	if err := line.Render(w); err != nil {
		ui.Logger.Error("rendering country chart", "error", err)
	}
}
