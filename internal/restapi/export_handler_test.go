package restapi

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRegionsRequiresValidApiKey(t *testing.T) {
	api := createTestApi(t)
	router := newTestRouter(api)
	resp := router.get(t, "/export/regions.xlsx?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestExportRegionsEndToEnd(t *testing.T) {
	api := createTestApi(t)
	router := newTestRouter(api)
	resp := router.get(t, "/export/regions.xlsx?key=TEST&year=2021")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename=gasto_id_comunidades_2021_total.xlsx",
		resp.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(resp.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close() // nolint:errcheck

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Comunidad", rows[0][0])
	assert.Equal(t, "País Vasco", rows[1][0])
	assert.Equal(t, "PVA", rows[1][1])
}
