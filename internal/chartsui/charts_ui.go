// Package chartsui serves self-contained HTML previews of the dashboard
// charts, rendered server side with go-echarts.
package chartsui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"rdstats.datos-idi.es/internal/app"
)

// ChartsUI holds the handlers for the HTML chart preview pages.
type ChartsUI struct {
	*app.Application
}

// NewChartsUI creates the chart preview surface over the shared application.
func NewChartsUI(app *app.Application) *ChartsUI {
	return &ChartsUI{Application: app}
}

// SetRoutes registers the preview pages on the given router.
func (ui *ChartsUI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/charts/country/:id", ui.countryChartHandler)
	router.HandlerFunc(http.MethodGet, "/charts/regions/ranking", ui.rankingChartHandler)
	router.HandlerFunc(http.MethodGet, "/charts/region/:id/breakdown", ui.breakdownChartHandler)
}

func (ui *ChartsUI) renderError(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}
