package app

import (
	"log/slog"

	"rdstats.datos-idi.es/internal/stats"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the dataset manager.
type Application struct {
	Config       Config
	StatsConfig  stats.Config
	Logger       *slog.Logger
	StatsManager *stats.Manager
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the accepted API
// keys and the per-key rate limit.
type Config struct {
	Port      int
	Env       string
	ApiKeys   []string
	RateLimit int
}
