package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rdstats.datos-idi.es/internal/export"
	"rdstats.datos-idi.es/internal/logging"
	"rdstats.datos-idi.es/internal/models"
	"rdstats.datos-idi.es/internal/stats"
)

var (
	exportYear   int
	exportSector string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the regional expenditure table for a year to an XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "year to export (default: latest available)")
	exportCmd.Flags().StringVar(&exportSector, "sector", "total", "sector identifier, code or label")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output path (default: derived from year and sector)")
	rootCmd.AddCommand(exportCmd)
}

func runExport() error {
	sector, ok := models.ParseSector(exportSector)
	if !ok {
		return fmt.Errorf("unknown sector %q", exportSector)
	}

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelWarn)
	statsManager, err := stats.InitManager(buildStatsConfig(), logger)
	if err != nil {
		return fmt.Errorf("initializing dataset manager: %w", err)
	}
	defer statsManager.Shutdown()

	ctx := context.Background()
	year := exportYear
	if year == 0 {
		years, err := statsManager.StatsDB.ListRegionalYears(ctx)
		if err != nil {
			return err
		}
		if len(years) == 0 {
			return fmt.Errorf("no regional data available")
		}
		year = years[0]
	}

	rows, err := statsManager.StatsDB.GetRegionalByYearSector(ctx, year, string(sector))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no regional rows for year %d and sector %s", year, sector)
	}

	f, err := export.RegionalWorkbook(sector, rows)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	path := exportOutput
	if path == "" {
		path = export.RegionalFilename(year, sector)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
	return nil
}
