package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultOptions(t *testing.T) {
	o := NewDefaultOptions()
	assert.Equal(t, VerbosityDefault, o.Verbosity)
	assert.Equal(t, FormatText, o.Format)
}

func TestShouldShowStatisticsRequiresVerbose(t *testing.T) {
	o := &Options{Verbosity: VerbosityDefault}
	assert.False(t, o.ShouldShowStatistics())
	o.Verbosity = VerbosityVerbose
	assert.True(t, o.ShouldShowStatistics())
	o.Verbosity = VerbosityDebug
	assert.True(t, o.ShouldShowStatistics())
}

func TestShouldShowDebugRequiresDebug(t *testing.T) {
	o := &Options{Verbosity: VerbosityVerbose}
	assert.False(t, o.ShouldShowDebug())
	o.Verbosity = VerbosityDebug
	assert.True(t, o.ShouldShowDebug())
}
