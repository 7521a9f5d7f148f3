package models

import "rdstats.datos-idi.es/internal/etl"

// Sector classifies R&D expenditure by performing sector. The canonical
// values double as API identifiers and database keys.
type Sector string

const (
	SectorTotal      Sector = "total"
	SectorBusiness   Sector = "business"
	SectorGovernment Sector = "government"
	SectorEducation  Sector = "education"
	SectorNonprofit  Sector = "nonprofit"
	SectorOther      Sector = "other"
)

// sectorInfo carries the source-table code plus display labels. The codes
// are the enumeration values used by the national table; the regional table
// spells the Spanish label out instead.
type sectorInfo struct {
	code    string
	labelES string
	labelEN string
}

var sectorDetails = map[Sector]sectorInfo{
	SectorTotal:      {"(_T)", "Todos los sectores", "All sectors"},
	SectorBusiness:   {"EMPRESAS", "Empresas", "Business enterprise"},
	SectorGovernment: {"ADMINISTRACION_PUBLICA", "Administración Pública", "Government"},
	SectorEducation:  {"ENSENANZA_SUPERIOR", "Enseñanza Superior", "Higher education"},
	SectorNonprofit:  {"IPSFL", "Instituciones Privadas sin Fines de Lucro", "Private non-profit"},
	SectorOther:      {"", "Otros", "Other"},
}

// AllSectors lists the known sectors in presentation order.
func AllSectors() []Sector {
	return []Sector{SectorTotal, SectorBusiness, SectorGovernment, SectorEducation, SectorNonprofit}
}

// SectorFromCode maps a national-table enumeration code like "(_T)" or
// "EMPRESAS" to a Sector. Unknown codes land in SectorOther rather than
// failing the import.
func SectorFromCode(code string) Sector {
	folded := etl.Fold(code)
	for sector, info := range sectorDetails {
		if sector != SectorOther && etl.Fold(info.code) == folded {
			return sector
		}
	}
	return SectorOther
}

// SectorFromLabel maps a spelled-out sector name, in either language and
// with or without accents, to a Sector.
func SectorFromLabel(label string) Sector {
	folded := etl.Fold(label)
	if folded == "total" {
		return SectorTotal
	}
	for sector, info := range sectorDetails {
		if sector == SectorOther {
			continue
		}
		if etl.Fold(info.labelES) == folded || etl.Fold(info.labelEN) == folded {
			return sector
		}
	}
	// short forms used by the regional table
	switch folded {
	case "ipsfl":
		return SectorNonprofit
	}
	return SectorOther
}

// ParseSector resolves a query-parameter value: canonical identifier,
// source code, or label in either language.
func ParseSector(value string) (Sector, bool) {
	folded := etl.Fold(value)
	for _, sector := range AllSectors() {
		if string(sector) == folded {
			return sector, true
		}
	}
	if s := SectorFromCode(value); s != SectorOther {
		return s, true
	}
	if s := SectorFromLabel(value); s != SectorOther {
		return s, true
	}
	return SectorOther, false
}

// Code returns the national-table enumeration code for the sector.
func (s Sector) Code() string {
	return sectorDetails[s].code
}

// LabelES returns the Spanish display label.
func (s Sector) LabelES() string {
	if info, ok := sectorDetails[s]; ok {
		return info.labelES
	}
	return sectorDetails[SectorOther].labelES
}

// LabelEN returns the English display label.
func (s Sector) LabelEN() string {
	if info, ok := sectorDetails[s]; ok {
		return info.labelEN
	}
	return sectorDetails[SectorOther].labelEN
}
