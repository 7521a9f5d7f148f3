package statsdb

import (
	"context"
	"database/sql"
	"errors"
)

// ListRegions retrieves the distinct autonomous communities, ordered by name.
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT DISTINCT code, name_es FROM regional_expenditure ORDER BY name_es`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var regions []Region
	for rows.Next() {
		var region Region
		if err := rows.Scan(&region.Code, &region.NameEs); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// GetRegion retrieves a single community by code. Returns nil when the code
// is unknown.
func (c *Client) GetRegion(ctx context.Context, code string) (*Region, error) {
	row := c.DB.QueryRowContext(
		ctx,
		`SELECT code, name_es FROM regional_expenditure WHERE code = ? LIMIT 1`,
		code,
	)

	var region Region
	err := row.Scan(&region.Code, &region.NameEs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &region, nil
}

// GetRegionalByYearSector retrieves every community's row for one year and
// sector, highest GDP share first.
func (c *Client) GetRegionalByYearSector(ctx context.Context, year int, sector string) ([]RegionalExpenditure, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT code, name_es, year, sector, spend_thousands, gdp_thousands, gdp_share
			FROM regional_expenditure
			WHERE year = ? AND sector = ?
			ORDER BY gdp_share DESC, name_es`,
		year, sector,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanRegionalRows(rows)
}

// GetRegionSeries retrieves one community's rows for a sector across all
// years, ordered by year.
func (c *Client) GetRegionSeries(ctx context.Context, code, sector string) ([]RegionalExpenditure, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT code, name_es, year, sector, spend_thousands, gdp_thousands, gdp_share
			FROM regional_expenditure
			WHERE code = ? AND sector = ?
			ORDER BY year`,
		code, sector,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanRegionalRows(rows)
}

// GetRegionBreakdown retrieves one community's per-sector rows for a year,
// total row included.
func (c *Client) GetRegionBreakdown(ctx context.Context, code string, year int) ([]RegionalExpenditure, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT code, name_es, year, sector, spend_thousands, gdp_thousands, gdp_share
			FROM regional_expenditure
			WHERE code = ? AND year = ?
			ORDER BY spend_thousands DESC`,
		code, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanRegionalRows(rows)
}

// ListRegionalYears retrieves the distinct years of the regional table,
// newest first.
func (c *Client) ListRegionalYears(ctx context.Context) ([]int, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT DISTINCT year FROM regional_expenditure ORDER BY year DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func scanRegionalRows(rows *sql.Rows) ([]RegionalExpenditure, error) {
	var result []RegionalExpenditure
	for rows.Next() {
		var row RegionalExpenditure
		err := rows.Scan(&row.Code, &row.NameEs, &row.Year, &row.Sector,
			&row.SpendThousands, &row.GDPThousands, &row.GDPShare)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
