package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountriesRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/countries.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestCountriesEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/countries.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 200, model.Code)
	assert.Equal(t, "OK", model.Text)

	list := listSlice(t, model)
	require.Len(t, list, 5)

	// Ordered by Spanish name, so Germany comes first.
	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "DEU", first["id"])
	assert.Equal(t, "Alemania", first["nameEs"])
	assert.Equal(t, "Germany", first["nameEn"])
	assert.Equal(t, "https://flagcdn.com/de.svg", first["flagUrl"])
}
