package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFuzzyThreshold is used when fuzzy_threshold is unset or not a
// number between 0 and 1. Lower values make matching stricter.
const DefaultFuzzyThreshold = 0.4

const envPrefix = "SHELFSEARCH"

// Config holds all user-tunable settings.
type Config struct {
	// CatalogPath overrides catalog auto-discovery. May start with "~/".
	CatalogPath string

	// BaseDir overrides the default per-install base directory scanned
	// for account folders during auto-discovery.
	BaseDir string

	// CacheDir is the directory holding the extraction cache file.
	CacheDir string

	// FuzzyThreshold controls how permissive fuzzy matching is.
	FuzzyThreshold float64
}

// Load reads configuration from the environment and the optional config
// file. A missing config file is not an error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "shelfsearch"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		CatalogPath:    v.GetString("catalog_path"),
		BaseDir:        v.GetString("base_dir"),
		CacheDir:       v.GetString("cache_dir"),
		FuzzyThreshold: parseThreshold(v.GetString("fuzzy_threshold")),
	}

	if cfg.CacheDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
		}
		cfg.CacheDir = filepath.Join(userCache, "shelfsearch")
	}

	return cfg, nil
}

// CacheFile returns the path of the persisted extraction cache.
func (c *Config) CacheFile() string {
	return filepath.Join(c.CacheDir, "catalog.json")
}

// parseThreshold parses the fuzzy threshold, falling back to the default
// for unset, non-numeric, or out-of-range values.
func parseThreshold(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultFuzzyThreshold
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f > 1 {
		return DefaultFuzzyThreshold
	}
	return f
}
