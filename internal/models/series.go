package models

// SeriesPoint is one year of a time series. YoYChange is omitted for the
// first year and for years whose predecessor is missing from the source.
type SeriesPoint struct {
	Year      int      `json:"year"`
	Value     float64  `json:"value"`
	YoYChange *float64 `json:"yoyChange,omitempty"`
}

// SeriesEntry is a line-chart payload for one place and sector.
type SeriesEntry struct {
	ID      string        `json:"id"`
	NameEs  string        `json:"nameEs"`
	NameEn  string        `json:"nameEn,omitempty"`
	Sector  string        `json:"sector"`
	Unit    string        `json:"unit"`
	FlagURL string        `json:"flagUrl,omitempty"`
	Points  []SeriesPoint `json:"points"`
}

// ComparisonEntry is one bar of a cross-country comparison for a fixed
// year and sector. Aggregates (the EU row) carry no rank.
type ComparisonEntry struct {
	ID        string  `json:"id"`
	NameEs    string  `json:"nameEs"`
	NameEn    string  `json:"nameEn"`
	Value     float64 `json:"value"`
	Rank      int     `json:"rank,omitempty"`
	Aggregate bool    `json:"aggregate,omitempty"`
	FlagURL   string  `json:"flagUrl,omitempty"`
}

// MapEntry is the choropleth payload for one autonomous community. It
// carries everything the map tooltip needs: spend, GDP, rank and flag.
type MapEntry struct {
	Code           string   `json:"code"`
	NameEs         string   `json:"nameEs"`
	Value          float64  `json:"value"`
	SpendThousands float64  `json:"spendThousands"`
	SpendDisplay   string   `json:"spendDisplay"`
	GDPThousands   float64  `json:"gdpThousands"`
	YoYChange      *float64 `json:"yoyChange,omitempty"`
	Rank           int      `json:"rank"`
	FlagURL        string   `json:"flagUrl,omitempty"`
}

// MapData joins the regional map entries with the matching national and
// European values so a tooltip can show both reference lines.
type MapData struct {
	Year          int        `json:"year"`
	Sector        string     `json:"sector"`
	Unit          string     `json:"unit"`
	Entries       []MapEntry `json:"entries"`
	NationalValue *float64   `json:"nationalValue,omitempty"`
	EUValue       *float64   `json:"euValue,omitempty"`
}

// RankingEntry is one row of the regional ranking table.
type RankingEntry struct {
	Rank    int     `json:"rank"`
	Code    string  `json:"code"`
	NameEs  string  `json:"nameEs"`
	Value   float64 `json:"value"`
	FlagURL string  `json:"flagUrl,omitempty"`
}

// BreakdownSlice is one pie slice: a sector's spend and its share of the
// community total for the year.
type BreakdownSlice struct {
	Sector         string  `json:"sector"`
	LabelEs        string  `json:"labelEs"`
	LabelEn        string  `json:"labelEn"`
	SpendThousands float64 `json:"spendThousands"`
	Share          float64 `json:"share"`
}

// BreakdownEntry is the pie payload for one community and year.
type BreakdownEntry struct {
	Code           string           `json:"code"`
	NameEs         string           `json:"nameEs"`
	Year           int              `json:"year"`
	TotalThousands float64          `json:"totalThousands"`
	Slices         []BreakdownSlice `json:"slices"`
}
