// Package etl holds the shared CSV-to-records transformation pipeline:
// decoding, numeric/text normalization and the derived metrics that every
// chart payload is built from.
package etl

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Table is a parsed CSV file with its header row split off. Column lookup is
// accent- and case-insensitive so header cosmetics in the source files don't
// break imports.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// ReadTable decodes and parses raw CSV bytes using the given delimiter.
// Files exported from Spanish statistical sources are sometimes Latin-1
// rather than UTF-8; payloads that fail UTF-8 validation are re-decoded as
// ISO 8859-1 before parsing.
func ReadTable(b []byte, comma rune) (*Table, error) {
	if !utf8.Valid(b) {
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(b), charmap.ISO8859_1.NewDecoder()))
		if err != nil {
			return nil, fmt.Errorf("error decoding latin-1 payload: %w", err)
		}
		b = decoded
	}

	reader := csv.NewReader(bytes.NewReader(b))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	table := &Table{
		Header: records[0],
		Rows:   records[1:],
		index:  make(map[string]int, len(records[0])),
	}
	for i, name := range table.Header {
		table.index[Fold(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	return table, nil
}

// Column returns the index of the named column, matching case- and
// accent-insensitively.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[Fold(name)]
	if !ok {
		return 0, fmt.Errorf("csv is missing column %q", name)
	}
	return i, nil
}

// Field returns the trimmed cell at (row, col), or "" when the row is short.
func Field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(row[col], "\ufeff"))
}
