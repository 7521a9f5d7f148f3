package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"rdstats.datos-idi.es/internal/models"
)

func TestParseYearParam(t *testing.T) {
	t.Run("valid year", func(t *testing.T) {
		params := url.Values{"year": []string{"2021"}}
		year, fieldErrors := ParseYearParam(params, "year", nil)
		assert.Equal(t, 2021, year)
		assert.Empty(t, fieldErrors)
	})

	t.Run("missing year defaults to zero without error", func(t *testing.T) {
		year, fieldErrors := ParseYearParam(url.Values{}, "year", nil)
		assert.Equal(t, 0, year)
		assert.Empty(t, fieldErrors)
	})

	t.Run("garbage year records a field error", func(t *testing.T) {
		params := url.Values{"year": []string{"soon"}}
		_, fieldErrors := ParseYearParam(params, "year", nil)
		assert.Contains(t, fieldErrors, "year")
	})

	t.Run("out of range year records a field error", func(t *testing.T) {
		params := url.Values{"year": []string{"1200"}}
		_, fieldErrors := ParseYearParam(params, "year", nil)
		assert.Contains(t, fieldErrors, "year")
	})
}

func TestParseSectorParam(t *testing.T) {
	t.Run("defaults to total", func(t *testing.T) {
		sector, fieldErrors := ParseSectorParam(url.Values{}, "sector", nil)
		assert.Equal(t, models.SectorTotal, sector)
		assert.Empty(t, fieldErrors)
	})

	t.Run("accepts canonical identifier", func(t *testing.T) {
		params := url.Values{"sector": []string{"business"}}
		sector, fieldErrors := ParseSectorParam(params, "sector", nil)
		assert.Equal(t, models.SectorBusiness, sector)
		assert.Empty(t, fieldErrors)
	})

	t.Run("accepts spanish label", func(t *testing.T) {
		params := url.Values{"sector": []string{"Administración Pública"}}
		sector, fieldErrors := ParseSectorParam(params, "sector", nil)
		assert.Equal(t, models.SectorGovernment, sector)
		assert.Empty(t, fieldErrors)
	})

	t.Run("unknown sector records a field error", func(t *testing.T) {
		params := url.Values{"sector": []string{"spacecraft"}}
		_, fieldErrors := ParseSectorParam(params, "sector", nil)
		assert.Contains(t, fieldErrors, "sector")
	})
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("ESP"))
	assert.NoError(t, ValidateID("es-md_1.2"))
	assert.Error(t, ValidateID(""))
	assert.Error(t, ValidateID("<script>"))
	assert.Error(t, ValidateID("a b"))
}
