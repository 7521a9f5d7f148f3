package statsdb

// NationalIndicator is one row of the consolidated national/European table:
// R&D expenditure as a percentage of GDP for a country, year and sector.
type NationalIndicator struct {
	ISO3     string // iso3
	NameEs   string // name_es
	NameEn   string // name_en
	Year     int    // year
	Sector   string // sector (canonical identifier)
	GDPShare float64
}

// RegionalExpenditure is one row of the autonomous-community table: spend
// and GDP in thousands of euros plus the derived percentage.
type RegionalExpenditure struct {
	Code           string // code
	NameEs         string // name_es
	Year           int    // year
	Sector         string // sector (canonical identifier)
	SpendThousands float64
	GDPThousands   float64
	GDPShare       float64
}

// Country is a distinct entity of the national table.
type Country struct {
	ISO3   string
	NameEs string
	NameEn string
}

// Region is a distinct entity of the regional table.
type Region struct {
	Code   string
	NameEs string
}

// YearValue is one point of a queried time series.
type YearValue struct {
	Year  int
	Value float64
}
