package statsdb

import (
	"database/sql"
	"fmt"

	"rdstats.datos-idi.es/internal/appconf"
)

// createDB creates a new SQLite database with tables for the national
// indicator series and the regional expenditure series.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test environment must use an in-memory database, got %q", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Each pooled connection to ":memory:" opens its own empty database,
	// so the pool must never grow past the connection that holds the schema.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	if err := createTables(tx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_national_year_sector ON national_indicators(year, sector);
		CREATE INDEX IF NOT EXISTS idx_national_iso3 ON national_indicators(iso3);
		CREATE INDEX IF NOT EXISTS idx_regional_year_sector ON regional_expenditure(year, sector);
		CREATE INDEX IF NOT EXISTS idx_regional_code ON regional_expenditure(code);
	`)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing schema: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS national_indicators (
			iso3      TEXT NOT NULL,
			name_es   TEXT NOT NULL,
			name_en   TEXT NOT NULL,
			year      INTEGER NOT NULL,
			sector    TEXT NOT NULL,
			gdp_share REAL NOT NULL,
			PRIMARY KEY (iso3, year, sector)
		);

		CREATE TABLE IF NOT EXISTS regional_expenditure (
			code            TEXT NOT NULL,
			name_es         TEXT NOT NULL,
			year            INTEGER NOT NULL,
			sector          TEXT NOT NULL,
			spend_thousands REAL NOT NULL,
			gdp_thousands   REAL NOT NULL,
			gdp_share       REAL NOT NULL,
			PRIMARY KEY (code, year, sector)
		);
	`)
	if err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}
	return nil
}
