package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionSeriesRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/MAD/series.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestRegionSeriesEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/MAD/series.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)

	entry := entryMap(t, model)
	assert.Equal(t, "MAD", entry["id"])
	assert.Equal(t, "Madrid, Comunidad de", entry["nameEs"])
	assert.Equal(t, "total", entry["sector"])
	assert.Equal(t, "https://flagcdn.com/es-md.svg", entry["flagUrl"])

	points, ok := entry["points"].([]interface{})
	require.True(t, ok)
	require.Len(t, points, 3)

	second, ok := points[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2021), second["year"])
	assert.Equal(t, 1.83, second["value"])
	assert.InDelta(t, 1.10, second["yoyChange"], 0.001)

	third, ok := points[2].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2022), third["year"])
	assert.InDelta(t, -1.09, third["yoyChange"], 0.001)
}

func TestRegionSeriesUnknownRegion(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/ZZZ/series.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
