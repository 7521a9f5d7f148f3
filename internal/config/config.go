// Package config loads the server settings from file, environment and
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the on-disk configuration. Every value can also come from an
// RDSTATS_ environment variable or a command-line flag.
type Settings struct {
	Port      int      `mapstructure:"port" yaml:"port"`
	Env       string   `mapstructure:"env" yaml:"env"`
	APIKeys   []string `mapstructure:"api_keys" yaml:"api_keys"`
	RateLimit int      `mapstructure:"rate_limit" yaml:"rate_limit"`

	NationalURL     string `mapstructure:"national_url" yaml:"national_url"`
	RegionalURL     string `mapstructure:"regional_url" yaml:"regional_url"`
	CountryFlagsURL string `mapstructure:"country_flags_url" yaml:"country_flags_url"`
	RegionFlagsURL  string `mapstructure:"region_flags_url" yaml:"region_flags_url"`

	DBPath       string `mapstructure:"db_path" yaml:"db_path"`
	Verbose      bool   `mapstructure:"verbose" yaml:"verbose"`
	RefreshHours int    `mapstructure:"refresh_hours" yaml:"refresh_hours"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("RDSTATS")
	v.AutomaticEnv()

	v.SetDefault("port", 4000)
	v.SetDefault("env", "development")
	v.SetDefault("api_keys", []string{"test"})
	v.SetDefault("rate_limit", 100)
	v.SetDefault("national_url", "https://datos-idi.es/data/gdp_consolidado.csv")
	v.SetDefault("regional_url", "https://datos-idi.es/data/gasto_ID_comunidades_porcentaje_pib.csv")
	v.SetDefault("country_flags_url", "https://datos-idi.es/data/country_flags.json")
	v.SetDefault("region_flags_url", "https://datos-idi.es/data/region_flags.json")
	v.SetDefault("db_path", "rdstats.db")
	v.SetDefault("verbose", false)
	v.SetDefault("refresh_hours", 24)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rdstats")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.rdstats/config.yaml, creating the directory if
// necessary.
func Save(s *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rdstats")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
