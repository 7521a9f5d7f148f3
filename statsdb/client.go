package statsdb

import (
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Client is the main entry point for the library
type Client struct {
	config Config
	logger *slog.Logger
	DB     *sql.DB
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}
	if config.verbose && logger != nil {
		logger.Info("statsdb tables created", slog.String("path", config.DBPath))
	}

	return &Client{
		config: config,
		logger: logger,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
