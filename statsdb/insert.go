package statsdb

import (
	"context"
	"database/sql"
	"fmt"

	"rdstats.datos-idi.es/internal/logging"
)

// ReplaceDataset swaps the contents of both tables for the given rows in a
// single transaction. Readers either see the previous dataset or the new one,
// never a mix, and a failure anywhere rolls both tables back.
func (c *Client) ReplaceDataset(ctx context.Context, national []NationalIndicator, regional []RegionalExpenditure) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_dataset")

	if err := replaceNationalTx(ctx, tx, national); err != nil {
		return err
	}
	if err := replaceRegionalTx(ctx, tx, regional); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceNational swaps the national table's contents for the given rows in
// one transaction, so readers never observe a partial import.
func (c *Client) ReplaceNational(ctx context.Context, rows []NationalIndicator) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_national")

	if err := replaceNationalTx(ctx, tx, rows); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceRegional swaps the regional table's contents for the given rows in
// one transaction.
func (c *Client) ReplaceRegional(ctx context.Context, rows []RegionalExpenditure) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_regional")

	if err := replaceRegionalTx(ctx, tx, rows); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceNationalTx(ctx context.Context, tx *sql.Tx, rows []NationalIndicator) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM national_indicators`); err != nil {
		return fmt.Errorf("error clearing national_indicators: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO national_indicators (
			iso3, name_es, name_en, year, sector, gdp_share
		) VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing national insert: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx, row.ISO3, row.NameEs, row.NameEn, row.Year, row.Sector, row.GDPShare)
		if err != nil {
			return fmt.Errorf("error inserting national row %s/%d/%s: %w", row.ISO3, row.Year, row.Sector, err)
		}
	}

	return nil
}

func replaceRegionalTx(ctx context.Context, tx *sql.Tx, rows []RegionalExpenditure) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM regional_expenditure`); err != nil {
		return fmt.Errorf("error clearing regional_expenditure: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO regional_expenditure (
			code, name_es, year, sector, spend_thousands, gdp_thousands, gdp_share
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing regional insert: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx, row.Code, row.NameEs, row.Year, row.Sector,
			row.SpendThousands, row.GDPThousands, row.GDPShare)
		if err != nil {
			return fmt.Errorf("error inserting regional row %s/%d/%s: %w", row.Code, row.Year, row.Sector, err)
		}
	}

	return nil
}
