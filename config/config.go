// Package config loads Metastatic's runtime tunables: analytics opt-out,
// default MetaAST validation mode, and complexity thresholds. Precedence
// is CLI flag > environment variable > project-local config file > built-in
// default (spec SPEC_FULL.md §10.3), the same layering the teacher applies
// via analytics.LoadEnvFile plus cobra flags in cmd/root.go.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Oeditus/metastatic-sub006/analyzer/complexity"
	"github.com/Oeditus/metastatic-sub006/model"
)

// envFile is the optional override file. loadEnvFile reads it from the
// working directory when present there, and otherwise from
// ~/.metastatic/ under the user's home directory.
const envFile = ".metastatic.env"

// Config holds every tunable this package resolves.
type Config struct {
	DisableMetrics   bool
	DefaultMode      model.Mode
	Thresholds       complexity.Thresholds
}

// Default returns Config's built-in defaults, used when neither a flag,
// an env var, nor a config file sets a value.
func Default() Config {
	return Config{
		DisableMetrics: false,
		DefaultMode:    model.Standard,
		Thresholds:     complexity.DefaultThresholds,
	}
}

// Load resolves Config by reading envFile (if present) into the process
// environment, then overlaying environment variables onto the defaults.
// It never consults CLI flags directly; callers (cmd package) apply flag
// overrides on top of the Config this returns, giving flags the highest
// precedence.
func Load() Config {
	loadEnvFile()
	cfg := Default()

	if v, ok := os.LookupEnv("METASTATIC_DISABLE_METRICS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DisableMetrics = b
		}
	}
	if v, ok := os.LookupEnv("METASTATIC_DEFAULT_MODE"); ok {
		switch v {
		case "strict":
			cfg.DefaultMode = model.Strict
		case "standard":
			cfg.DefaultMode = model.Standard
		case "permissive":
			cfg.DefaultMode = model.Permissive
		}
	}
	if v, ok := os.LookupEnv("METASTATIC_CYCLOMATIC_WARN"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.CyclomaticWarn = n
		}
	}
	if v, ok := os.LookupEnv("METASTATIC_CYCLOMATIC_ERROR"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.CyclomaticError = n
		}
	}

	return cfg
}

func loadEnvFile() {
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
		return
	}
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".metastatic", envFile))
	}
}
