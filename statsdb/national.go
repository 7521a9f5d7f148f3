package statsdb

import (
	"context"
	"database/sql"
	"errors"
)

// ListCountries retrieves the distinct countries of the national table,
// ordered by Spanish name.
func (c *Client) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT DISTINCT iso3, name_es, name_en FROM national_indicators ORDER BY name_es`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var countries []Country
	for rows.Next() {
		var country Country
		if err := rows.Scan(&country.ISO3, &country.NameEs, &country.NameEn); err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

// GetCountry retrieves a single country by ISO3 code. Returns nil when the
// code is not present in the table.
func (c *Client) GetCountry(ctx context.Context, iso3 string) (*Country, error) {
	row := c.DB.QueryRowContext(
		ctx,
		`SELECT iso3, name_es, name_en FROM national_indicators WHERE iso3 = ? LIMIT 1`,
		iso3,
	)

	var country Country
	err := row.Scan(&country.ISO3, &country.NameEs, &country.NameEn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetCountrySeries retrieves the GDP-share time series for one country and
// sector, ordered by year.
func (c *Client) GetCountrySeries(ctx context.Context, iso3, sector string) ([]YearValue, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT year, gdp_share FROM national_indicators
			WHERE iso3 = ? AND sector = ?
			ORDER BY year`,
		iso3, sector,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var series []YearValue
	for rows.Next() {
		var point YearValue
		if err := rows.Scan(&point.Year, &point.Value); err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, rows.Err()
}

// GetNationalComparison retrieves every country's GDP share for one year and
// sector, highest first.
func (c *Client) GetNationalComparison(ctx context.Context, year int, sector string) ([]NationalIndicator, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT iso3, name_es, name_en, year, sector, gdp_share FROM national_indicators
			WHERE year = ? AND sector = ?
			ORDER BY gdp_share DESC, name_es`,
		year, sector,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var indicators []NationalIndicator
	for rows.Next() {
		var row NationalIndicator
		if err := rows.Scan(&row.ISO3, &row.NameEs, &row.NameEn, &row.Year, &row.Sector, &row.GDPShare); err != nil {
			return nil, err
		}
		indicators = append(indicators, row)
	}
	return indicators, rows.Err()
}

// ListNationalYears retrieves the distinct years of the national table,
// newest first.
func (c *Client) ListNationalYears(ctx context.Context) ([]int, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT DISTINCT year FROM national_indicators ORDER BY year DESC`,
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

// GetNationalValue retrieves one GDP-share value. ok is false when the
// combination is not present.
func (c *Client) GetNationalValue(ctx context.Context, iso3 string, year int, sector string) (float64, bool, error) {
	row := c.DB.QueryRowContext(
		ctx,
		`SELECT gdp_share FROM national_indicators WHERE iso3 = ? AND year = ? AND sector = ?`,
		iso3, year, sector,
	)

	var value float64
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
