package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the API endpoints on the given router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/v1/sectors.json", validateAPIKey(api, api.sectorsHandler))
	router.Handler(http.MethodGet, "/api/v1/countries.json", validateAPIKey(api, api.countriesHandler))
	router.Handler(http.MethodGet, "/api/v1/countries/compare.json", validateAPIKey(api, api.countriesCompareHandler))
	router.Handler(http.MethodGet, "/api/v1/country/:id/series.json", validateAPIKey(api, api.countrySeriesHandler))
	router.Handler(http.MethodGet, "/api/v1/regions.json", validateAPIKey(api, api.regionsHandler))
	router.Handler(http.MethodGet, "/api/v1/regions/map.json", validateAPIKey(api, api.regionsMapHandler))
	router.Handler(http.MethodGet, "/api/v1/regions/ranking.json", validateAPIKey(api, api.regionsRankingHandler))
	router.Handler(http.MethodGet, "/api/v1/region/:id/series.json", validateAPIKey(api, api.regionSeriesHandler))
	router.Handler(http.MethodGet, "/api/v1/region/:id/breakdown.json", validateAPIKey(api, api.regionBreakdownHandler))
	router.Handler(http.MethodGet, "/export/regions.xlsx", validateAPIKey(api, api.exportRegionsHandler))
}

// Routes assembles the router and the middleware chain around it.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.Middleware(router)
}

// Middleware wraps a handler in the full chain: security headers, request
// logging, compression and rate limiting, outermost first.
func (api *RestAPI) Middleware(handler http.Handler) http.Handler {
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = securityHeaders(handler)
	return handler
}
