package models

// CountryReference describes a country (or the EU aggregate) from the
// national table.
type CountryReference struct {
	ID      string `json:"id"`
	NameEs  string `json:"nameEs"`
	NameEn  string `json:"nameEn"`
	FlagURL string `json:"flagUrl,omitempty"`
}

// RegionReference describes an autonomous community from the regional table.
type RegionReference struct {
	Code    string `json:"code"`
	NameEs  string `json:"nameEs"`
	FlagURL string `json:"flagUrl,omitempty"`
}

// EUAggregateID is the pseudo-ISO3 code the national table uses for the
// European Union row.
const EUAggregateID = "EU27"

// SpainID is the ISO3 code for the national reference row joined into
// regional payloads.
const SpainID = "ESP"
