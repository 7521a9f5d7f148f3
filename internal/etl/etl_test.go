package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	t.Run("parses comma-delimited csv with quoted euro decimals", func(t *testing.T) {
		raw := []byte("Pais,Country,ISO3,Anio,Porcentaje_PIB\nEspaña,Spain,ESP,2021,\"1,43\"\n")
		table, err := ReadTable(raw, ',')
		require.NoError(t, err)

		assert.Equal(t, []string{"Pais", "Country", "ISO3", "Anio", "Porcentaje_PIB"}, table.Header)
		require.Len(t, table.Rows, 1)

		col, err := table.Column("porcentaje_pib")
		require.NoError(t, err)
		assert.Equal(t, "1,43", Field(table.Rows[0], col))
	})

	t.Run("parses semicolon-delimited csv with commas inside cells", func(t *testing.T) {
		raw := []byte("Comunidad;Anio;Gasto_ID\nMadrid, Comunidad de;2021;4.390.000,00\n")
		table, err := ReadTable(raw, ';')
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "Madrid, Comunidad de", Field(table.Rows[0], 0))
	})

	t.Run("matches column names ignoring accents and case", func(t *testing.T) {
		raw := []byte("Año,País\n2021,España\n")
		table, err := ReadTable(raw, ',')
		require.NoError(t, err)

		col, err := table.Column("ano")
		require.NoError(t, err)
		assert.Equal(t, 0, col)

		col, err = table.Column("PAIS")
		require.NoError(t, err)
		assert.Equal(t, 1, col)
	})

	t.Run("decodes latin-1 payloads", func(t *testing.T) {
		// "España" with 0xF1 for ñ, not valid UTF-8
		raw := []byte("Pais,Anio\nEspa\xf1a,2021\n")
		table, err := ReadTable(raw, ',')
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "España", Field(table.Rows[0], 0))
	})

	t.Run("rejects empty payloads", func(t *testing.T) {
		_, err := ReadTable([]byte(""), ',')
		assert.Error(t, err)
	})

	t.Run("missing column is an error", func(t *testing.T) {
		table, err := ReadTable([]byte("A,B\n1,2\n"), ',')
		require.NoError(t, err)
		_, err = table.Column("Sector")
		assert.Error(t, err)
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"euro decimal", "1,43", 1.43, true},
		{"euro thousands", "4.390.000,00", 4390000, true},
		{"euro thousands no decimals", "76.000.000", 76000000, true},
		{"dot decimal", "1.43", 1.43, true},
		{"plain integer", "2021", 2021, true},
		{"negative euro", "-0,12", -0.12, true},
		{"empty", "", 0, false},
		{"dash placeholder", "-", 0, false},
		{"double dot placeholder", "..", 0, false},
		{"text", "n/d", 0, false},
		{"padded", "  1,5  ", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "12.345,67", FormatEuro(12345.67))
	assert.Equal(t, "0,50", FormatEuro(0.5))
	assert.Equal(t, "4.390.000,00", FormatEuro(4390000))
	assert.Equal(t, "-1.234,50", FormatEuro(-1234.5))
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"España", "espana"},
		{"Administración Pública", "administracion publica"},
		{"ENSEÑANZA SUPERIOR", "ensenanza superior"},
		{"  Cataluña ", "cataluna"},
		{"Unión Europea", "union europea"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.input))
	}
}

func TestTitleES(t *testing.T) {
	assert.Equal(t, "País Vasco", TitleES("PAÍS VASCO"))
	assert.Equal(t, "Galicia", TitleES("galicia"))
}

func TestYoYChange(t *testing.T) {
	t.Run("computes percentage change", func(t *testing.T) {
		change, ok := YoYChange(1.81, 1.83)
		require.True(t, ok)
		assert.InDelta(t, 1.1049724, change, 1e-6)
	})

	t.Run("zero base has no change", func(t *testing.T) {
		_, ok := YoYChange(0, 1.5)
		assert.False(t, ok)
	})
}

func TestShareOfTotal(t *testing.T) {
	share, ok := ShareOfTotal(2500000, 4390000)
	require.True(t, ok)
	assert.InDelta(t, 56.947608, share, 1e-6)

	_, ok = ShareOfTotal(10, 0)
	assert.False(t, ok)
}

func TestDenseRanks(t *testing.T) {
	t.Run("ranks descending", func(t *testing.T) {
		assert.Equal(t, []int{2, 1, 3}, DenseRanks([]float64{1.83, 2.11, 1.52}))
	})

	t.Run("ties share a rank", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 2, 3}, DenseRanks([]float64{2.11, 1.81, 1.81, 0.94}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, DenseRanks(nil))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.11, Round2(1.1049724*1.005))
	assert.Equal(t, 56.95, Round2(56.947608))
}
