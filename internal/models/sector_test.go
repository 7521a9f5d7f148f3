package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectorFromCode(t *testing.T) {
	tests := []struct {
		code string
		want Sector
	}{
		{"(_T)", SectorTotal},
		{"EMPRESAS", SectorBusiness},
		{"ADMINISTRACION_PUBLICA", SectorGovernment},
		{"ENSENANZA_SUPERIOR", SectorEducation},
		{"IPSFL", SectorNonprofit},
		{"DESCONOCIDO", SectorOther},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, SectorFromCode(tt.code))
		})
	}
}

func TestSectorFromLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Sector
	}{
		{"Total", SectorTotal},
		{"Empresas", SectorBusiness},
		{"Administración Pública", SectorGovernment},
		{"ADMINISTRACION PUBLICA", SectorGovernment},
		{"Enseñanza Superior", SectorEducation},
		{"Higher education", SectorEducation},
		{"IPSFL", SectorNonprofit},
		{"algo raro", SectorOther},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, SectorFromLabel(tt.label))
		})
	}
}

func TestParseSector(t *testing.T) {
	t.Run("canonical identifier", func(t *testing.T) {
		s, ok := ParseSector("business")
		assert.True(t, ok)
		assert.Equal(t, SectorBusiness, s)
	})

	t.Run("source code", func(t *testing.T) {
		s, ok := ParseSector("(_T)")
		assert.True(t, ok)
		assert.Equal(t, SectorTotal, s)
	})

	t.Run("spanish label", func(t *testing.T) {
		s, ok := ParseSector("enseñanza superior")
		assert.True(t, ok)
		assert.Equal(t, SectorEducation, s)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, ok := ParseSector("spacecraft")
		assert.False(t, ok)
	})
}

func TestSectorLabels(t *testing.T) {
	assert.Equal(t, "Empresas", SectorBusiness.LabelES())
	assert.Equal(t, "Business enterprise", SectorBusiness.LabelEN())
	assert.Equal(t, "(_T)", SectorTotal.Code())
	// unknown sectors fall back to the "other" labels
	assert.Equal(t, "Otros", Sector("weird").LabelES())
}

func TestNewSectorReferences(t *testing.T) {
	refs := NewSectorReferences()
	assert.Len(t, refs, 5)
	assert.Equal(t, "total", refs[0].ID)
	assert.Equal(t, "(_T)", refs[0].Code)
	assert.Equal(t, "Todos los sectores", refs[0].LabelEs)
}
