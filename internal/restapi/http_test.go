package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"rdstats.datos-idi.es/internal/app"
	"rdstats.datos-idi.es/internal/appconf"
	"rdstats.datos-idi.es/internal/logging"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/stats"
)

// createTestApi creates a RestAPI instance over the fixture tables for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	statsConfig := stats.Config{
		NationalURL:     filepath.Join("../../testdata", "gdp_consolidado.csv"),
		RegionalURL:     filepath.Join("../../testdata", "gasto_ID_comunidades_porcentaje_pib.csv"),
		CountryFlagsURL: filepath.Join("../../testdata", "country_flags.json"),
		RegionFlagsURL:  filepath.Join("../../testdata", "region_flags.json"),
		DataPath:        ":memory:",
		Env:             appconf.Test,
	}
	statsManager, err := stats.InitManager(statsConfig, logger)
	require.NoError(t, err)
	t.Cleanup(statsManager.Shutdown)

	app := &app.Application{
		Config: app.Config{
			Env:     appconf.Test.String(),
			ApiKeys: []string{"TEST"},
		},
		StatsConfig:  statsConfig,
		Logger:       logger,
		StatsManager: statsManager,
	}

	return &RestAPI{Application: app}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

type testRouter struct {
	router *httprouter.Router
}

func newTestRouter(api *RestAPI) *testRouter {
	router := httprouter.New()
	api.SetRoutes(router)
	return &testRouter{router: router}
}

// get performs an in-process request and returns the recorder so callers can
// inspect raw status codes and bodies.
func (tr *testRouter) get(t *testing.T, endpoint string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, endpoint, nil)
	recorder := httptest.NewRecorder()
	tr.router.ServeHTTP(recorder, req)
	return recorder
}

// dataMap extracts the data object of a decoded envelope.
func dataMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

// entryMap extracts the entry object of a decoded envelope.
func entryMap(t *testing.T, model models.ResponseModel) map[string]interface{} {
	entry, ok := dataMap(t, model)["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

// listSlice extracts the list of a decoded envelope.
func listSlice(t *testing.T, model models.ResponseModel) []interface{} {
	list, ok := dataMap(t, model)["list"].([]interface{})
	require.True(t, ok)
	return list
}
