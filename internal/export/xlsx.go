// Package export renders query results as spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/statsdb"
)

// ContentTypeXLSX is the MIME type for Office Open XML spreadsheets.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegionalWorkbook builds a one-sheet workbook with the regional expenditure
// rows for a year and sector. Numeric columns are written as real numbers so
// spreadsheet applications treat them as such.
func RegionalWorkbook(sector models.Sector, rows []statsdb.RegionalExpenditure) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	head := []any{"Comunidad", "Codigo", "Anio", "Sector", "Gasto_ID", "PIB", "Porcentaje_PIB"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return nil, err
	}

	for i, r := range rows {
		row := []any{r.NameEs, r.Code, r.Year, sector.LabelES(), r.SpendThousands, r.GDPThousands, r.GDPShare}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// RegionalFilename names the attachment for a regional export.
func RegionalFilename(year int, sector models.Sector) string {
	return fmt.Sprintf("gasto_id_comunidades_%d_%s.xlsx", year, string(sector))
}
