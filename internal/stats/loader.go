package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode"

	"rdstats.datos-idi.es/internal/etl"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/statsdb"
)

func isLocalSource(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

func rawData(source string) ([]byte, error) {
	var b []byte
	var err error

	if isLocalSource(source) {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading data: %w", err)
		}
		defer resp.Body.Close() // nolint

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error downloading data: unexpected status %d", resp.StatusCode)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading response body: %w", err)
		}
	}
	return b, nil
}

// parseNational converts the consolidated national/European table into
// database rows. Rows with an unparsable percentage are dropped, matching
// the way the charts skipped NaN cells.
func parseNational(b []byte) ([]statsdb.NationalIndicator, error) {
	table, err := etl.ReadTable(b, nationalDelimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing national table: %w", err)
	}

	cols, err := columnSet(table, "Pais", "Country", "ISO3", "Anio", "Sector_Id", "Porcentaje_PIB")
	if err != nil {
		return nil, fmt.Errorf("national table: %w", err)
	}

	var rows []statsdb.NationalIndicator
	for _, record := range table.Rows {
		year, ok := parseYear(etl.Field(record, cols[3]))
		if !ok {
			continue
		}
		share, ok := etl.ParseNumber(etl.Field(record, cols[5]))
		if !ok {
			continue
		}

		sector := models.SectorFromCode(etl.Field(record, cols[4]))
		rows = append(rows, statsdb.NationalIndicator{
			NameEs:   displayName(etl.Field(record, cols[0])),
			NameEn:   displayName(etl.Field(record, cols[1])),
			ISO3:     strings.ToUpper(etl.Field(record, cols[2])),
			Year:     year,
			Sector:   string(sector),
			GDPShare: share,
		})
	}
	return rows, nil
}

// parseRegional converts the autonomous-community expenditure table.
func parseRegional(b []byte) ([]statsdb.RegionalExpenditure, error) {
	table, err := etl.ReadTable(b, regionalDelimiter)
	if err != nil {
		return nil, fmt.Errorf("error parsing regional table: %w", err)
	}

	cols, err := columnSet(table, "Comunidad", "Codigo", "Anio", "Sector", "Gasto_ID", "PIB", "Porcentaje_PIB")
	if err != nil {
		return nil, fmt.Errorf("regional table: %w", err)
	}

	var rows []statsdb.RegionalExpenditure
	for _, record := range table.Rows {
		year, ok := parseYear(etl.Field(record, cols[2]))
		if !ok {
			continue
		}
		spend, spendOK := etl.ParseNumber(etl.Field(record, cols[4]))
		gdp, gdpOK := etl.ParseNumber(etl.Field(record, cols[5]))
		share, shareOK := etl.ParseNumber(etl.Field(record, cols[6]))
		if !spendOK || !shareOK {
			continue
		}
		if !gdpOK {
			gdp = 0
		}

		sector := models.SectorFromLabel(etl.Field(record, cols[3]))
		rows = append(rows, statsdb.RegionalExpenditure{
			NameEs:         displayName(etl.Field(record, cols[0])),
			Code:           strings.ToUpper(etl.Field(record, cols[1])),
			Year:           year,
			Sector:         string(sector),
			SpendThousands: spend,
			GDPThousands:   gdp,
			GDPShare:       share,
		})
	}
	return rows, nil
}

// parseFlags decodes a flag lookup JSON, uppercasing keys so lookups match
// the table codes.
func parseFlags(b []byte) (map[string]string, error) {
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("error parsing flag lookup: %w", err)
	}
	flags := make(map[string]string, len(raw))
	for code, url := range raw {
		flags[strings.ToUpper(strings.TrimSpace(code))] = url
	}
	return flags, nil
}

// displayName re-cases names that some source revisions publish in all
// caps, like "PAÍS VASCO".
func displayName(s string) string {
	if s == "" || s != strings.ToUpper(s) || !strings.ContainsFunc(s, unicode.IsLetter) {
		return s
	}
	return etl.TitleES(s)
}

func columnSet(table *etl.Table, names ...string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		col, err := table.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

func parseYear(s string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1900 || year > 2100 {
		return 0, false
	}
	return year, true
}
