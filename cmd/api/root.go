package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rdstats.datos-idi.es/internal/config"
)

var (
	// Global flags (override the loaded configuration when set)
	cfgFile     string
	flagPort    int
	flagEnv     string
	flagAPIKeys string
	flagVerbose bool

	// Loaded configuration
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "rdstats",
	Short: "Server for Spanish R&D investment and patent statistics",
	Long: `rdstats imports the consolidated national and regional R&D expenditure
tables, stores them in SQLite and serves chart-ready JSON plus HTML previews
and spreadsheet exports.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadSettings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.rdstats/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "API server port (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "environment: development|production (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKeys, "api-keys", "", "comma separated API keys (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable verbose logging")
}

func loadSettings() {
	s, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		s = &config.Settings{}
	}
	settings = s

	f := rootCmd.PersistentFlags()
	if f.Changed("port") && flagPort > 0 {
		settings.Port = flagPort
	}
	if f.Changed("env") && flagEnv != "" {
		settings.Env = flagEnv
	}
	if f.Changed("api-keys") && flagAPIKeys != "" {
		keys := strings.Split(flagAPIKeys, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}
		settings.APIKeys = keys
	}
	if f.Changed("verbose") {
		settings.Verbose = flagVerbose
	}
}
