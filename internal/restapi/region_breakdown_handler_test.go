package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionBreakdownRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/MAD/breakdown.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestRegionBreakdownEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/MAD/breakdown.json?key=TEST&year=2021")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)

	entry := entryMap(t, model)
	assert.Equal(t, "MAD", entry["code"])
	assert.Equal(t, "Madrid, Comunidad de", entry["nameEs"])
	assert.Equal(t, float64(2021), entry["year"])
	assert.Equal(t, float64(4390000), entry["totalThousands"])

	slices, ok := entry["slices"].([]interface{})
	require.True(t, ok)
	require.Len(t, slices, 4)

	// Ordered by spend, so business leads.
	first, ok := slices[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "business", first["sector"])
	assert.Equal(t, "Empresas", first["labelEs"])
	assert.Equal(t, "Business enterprise", first["labelEn"])
	assert.Equal(t, float64(2500000), first["spendThousands"])
	assert.InDelta(t, 56.95, first["share"], 0.001)

	second, ok := slices[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "education", second["sector"])
	assert.InDelta(t, 24.60, second["share"], 0.001)

	last, ok := slices[3].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "nonprofit", last["sector"])
	assert.InDelta(t, 1.14, last["share"], 0.001)
}

func TestRegionBreakdownUnknownRegion(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/region/ZZZ/breakdown.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
