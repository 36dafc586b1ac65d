package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oeditus/metastatic-sub006/model"
)

func TestDefaultMatchesSpecThresholds(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.DisableMetrics)
	assert.Equal(t, model.Standard, cfg.DefaultMode)
	assert.Equal(t, 10, cfg.Thresholds.CyclomaticWarn)
}

func TestLoadEnvVarOverridesDefault(t *testing.T) {
	os.Setenv("METASTATIC_DISABLE_METRICS", "true")
	defer os.Unsetenv("METASTATIC_DISABLE_METRICS")

	cfg := Load()
	assert.True(t, cfg.DisableMetrics)
}

func TestLoadDefaultModeOverride(t *testing.T) {
	os.Setenv("METASTATIC_DEFAULT_MODE", "permissive")
	defer os.Unsetenv("METASTATIC_DEFAULT_MODE")

	cfg := Load()
	assert.Equal(t, model.Permissive, cfg.DefaultMode)
}

func TestLoadIgnoresUnknownModeValue(t *testing.T) {
	os.Setenv("METASTATIC_DEFAULT_MODE", "bogus")
	defer os.Unsetenv("METASTATIC_DEFAULT_MODE")

	cfg := Load()
	assert.Equal(t, model.Standard, cfg.DefaultMode)
}

func TestLoadCyclomaticThresholdOverride(t *testing.T) {
	os.Setenv("METASTATIC_CYCLOMATIC_WARN", "7")
	defer os.Unsetenv("METASTATIC_CYCLOMATIC_WARN")

	cfg := Load()
	assert.Equal(t, 7, cfg.Thresholds.CyclomaticWarn)
}
