// Package stats owns the statistical dataset: it loads the national and
// regional CSV tables plus the flag lookups, normalizes them through the
// shared ETL pipeline, and serves them from SQLite behind a Manager.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"rdstats.datos-idi.es/internal/logging"
	"rdstats.datos-idi.es/statsdb"
)

// Manager manages the statistics dataset and provides access to it
type Manager struct {
	config  Config
	logger  *slog.Logger
	StatsDB *statsdb.Client

	mu           sync.RWMutex
	countryFlags map[string]string
	regionFlags  map[string]string
	lastUpdated  time.Time

	// loadGen tags each load; a refresh that finishes after a newer load
	// started is discarded instead of overwriting fresher data.
	loadGen uint64

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured sources and starts the
// periodic refresh when the tables come from URLs.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 24 * time.Hour
	}

	db, err := statsdb.NewClient(statsdb.NewConfig(config.DataPath, config.Env, config.Verbose), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating stats database client: %w", err)
	}

	manager := &Manager{
		config:       config,
		logger:       logger,
		StatsDB:      db,
		countryFlags: map[string]string{},
		regionFlags:  map[string]string{},
		shutdownChan: make(chan struct{}),
	}

	if err := manager.load(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if !isLocalSource(config.NationalURL) || !isLocalSource(config.RegionalURL) {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.StatsDB != nil {
			_ = manager.StatsDB.Close()
		}
	})
}

// load fetches and imports all four sources. On any failure the previous
// dataset stays live: the database swap only happens after every source
// parsed.
func (manager *Manager) load(ctx context.Context) error {
	gen := atomic.AddUint64(&manager.loadGen, 1)
	start := time.Now()

	nationalRaw, err := rawData(manager.config.NationalURL)
	if err != nil {
		return fmt.Errorf("error loading national table: %w", err)
	}
	national, err := parseNational(nationalRaw)
	if err != nil {
		return err
	}

	regionalRaw, err := rawData(manager.config.RegionalURL)
	if err != nil {
		return fmt.Errorf("error loading regional table: %w", err)
	}
	regional, err := parseRegional(regionalRaw)
	if err != nil {
		return err
	}

	countryFlags, err := manager.loadFlags(manager.config.CountryFlagsURL)
	if err != nil {
		return err
	}
	regionFlags, err := manager.loadFlags(manager.config.RegionFlagsURL)
	if err != nil {
		return err
	}

	// A newer load started while this one was fetching; drop it.
	if atomic.LoadUint64(&manager.loadGen) != gen {
		return nil
	}

	// Both tables swap in one transaction so a reader never sees a national
	// table from one vintage and a regional table from another.
	if err := manager.StatsDB.ReplaceDataset(ctx, national, regional); err != nil {
		return err
	}

	manager.mu.Lock()
	manager.countryFlags = countryFlags
	manager.regionFlags = regionFlags
	manager.lastUpdated = time.Now()
	manager.mu.Unlock()

	logging.LogOperation(manager.logger, "dataset_loaded",
		slog.Int("national_rows", len(national)),
		slog.Int("regional_rows", len(regional)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// loadFlags reads a flag lookup; a missing source is not fatal, charts just
// render without flags.
func (manager *Manager) loadFlags(source string) (map[string]string, error) {
	if source == "" {
		return map[string]string{}, nil
	}
	raw, err := rawData(source)
	if err != nil {
		logging.LogError(manager.logger, "failed to load flag lookup", err,
			slog.String("source", source))
		return map[string]string{}, nil
	}
	return parseFlags(raw)
}

func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			err := manager.load(ctx)
			cancel()
			if err != nil {
				// Keep serving the previous dataset.
				logging.LogError(manager.logger, "dataset refresh failed", err)
			}
		case <-manager.shutdownChan:
			logging.LogOperation(manager.logger, "dataset_refresh_stopped")
			return
		}
	}
}

// CountryFlag returns the flag URL for an ISO3 code, or "".
func (manager *Manager) CountryFlag(iso3 string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.countryFlags[iso3]
}

// RegionFlag returns the flag URL for a community code, or "".
func (manager *Manager) RegionFlag(code string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.regionFlags[code]
}

// LastUpdated reports when the current dataset was imported.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// LogStatistics logs dataset counts after startup.
func (manager *Manager) LogStatistics(ctx context.Context) {
	countries, err := manager.StatsDB.ListCountries(ctx)
	if err != nil {
		return
	}
	regions, err := manager.StatsDB.ListRegions(ctx)
	if err != nil {
		return
	}
	years, err := manager.StatsDB.ListRegionalYears(ctx)
	if err != nil {
		return
	}
	logging.LogOperation(manager.logger, "dataset_statistics",
		slog.Int("countries", len(countries)),
		slog.Int("regions", len(regions)),
		slog.Int("years", len(years)))
}
