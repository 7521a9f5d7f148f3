package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"

	"rdstats.datos-idi.es/internal/app"
	"rdstats.datos-idi.es/internal/appconf"
	"rdstats.datos-idi.es/internal/chartsui"
	"rdstats.datos-idi.es/internal/logging"
	"rdstats.datos-idi.es/internal/restapi"
	"rdstats.datos-idi.es/internal/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the statistics API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func buildStatsConfig() stats.Config {
	return stats.Config{
		NationalURL:     settings.NationalURL,
		RegionalURL:     settings.RegionalURL,
		CountryFlagsURL: settings.CountryFlagsURL,
		RegionFlagsURL:  settings.RegionFlagsURL,
		DataPath:        settings.DBPath,
		Env:             appconf.EnvFlagToEnvironment(settings.Env),
		Verbose:         settings.Verbose,
		RefreshInterval: time.Duration(settings.RefreshHours) * time.Hour,
	}
}

func runServer() error {
	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	statsManager, err := stats.InitManager(buildStatsConfig(), logger)
	if err != nil {
		return fmt.Errorf("initializing dataset manager: %w", err)
	}
	defer statsManager.Shutdown()

	statsManager.LogStatistics(context.Background())

	application := &app.Application{
		Config: app.Config{
			Port:      settings.Port,
			Env:       settings.Env,
			ApiKeys:   settings.APIKeys,
			RateLimit: settings.RateLimit,
		},
		StatsConfig:  buildStatsConfig(),
		Logger:       logger,
		StatsManager: statsManager,
	}

	restAPI := restapi.NewRestAPI(application)
	chartsUI := chartsui.NewChartsUI(application)

	router := httprouter.New()
	restAPI.SetRoutes(router)
	chartsUI.SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", settings.Port),
		Handler:      restAPI.Middleware(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", "signal", s.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", settings.Env)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	logger.Info("stopped server", "addr", srv.Addr)
	return nil
}
