package stats

import (
	"time"

	"rdstats.datos-idi.es/internal/appconf"
)

// Config names the four data sources plus storage options. Each source can
// be a URL or a local file path.
type Config struct {
	NationalURL     string
	RegionalURL     string
	CountryFlagsURL string
	RegionFlagsURL  string
	DataPath        string // .sqlite path, ":memory:" for tests
	Env             appconf.Environment
	Verbose         bool
	RefreshInterval time.Duration
}

// Delimiters the source tables are published with.
const (
	nationalDelimiter = ','
	regionalDelimiter = ';'
)
