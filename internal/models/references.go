package models

// SectorReference describes one sector for the references block, so clients
// resolve display labels in the same round trip as the data.
type SectorReference struct {
	ID      string `json:"id"`
	Code    string `json:"code,omitempty"`
	LabelEs string `json:"labelEs"`
	LabelEn string `json:"labelEn"`
}

// FlagReference ties a country ISO3 code or community code to its flag image.
type FlagReference struct {
	ID      string `json:"id"`
	FlagURL string `json:"flagUrl"`
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Sectors []SectorReference `json:"sectors"`
	Flags   []FlagReference   `json:"flags"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Sectors: []SectorReference{},
		Flags:   []FlagReference{},
	}
}

// NewSectorReference builds the reference entry for a sector.
func NewSectorReference(s Sector) SectorReference {
	return SectorReference{
		ID:      string(s),
		Code:    s.Code(),
		LabelEs: s.LabelES(),
		LabelEn: s.LabelEN(),
	}
}

// NewSectorReferences lists reference entries for every known sector.
func NewSectorReferences() []SectorReference {
	sectors := AllSectors()
	refs := make([]SectorReference, 0, len(sectors))
	for _, s := range sectors {
		refs = append(refs, NewSectorReference(s))
	}
	return refs
}
