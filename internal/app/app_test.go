package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hdfm/internal/ui"
)

// TestLoadConfig tests directory resolution and environment overrides
func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		config := LoadConfig()
		assert.Equal(t, DefaultDumpDir, config.DumpDir)
		assert.Equal(t, DefaultSavesDir, config.SavesDir)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv(EnvDumpDir, "/var/lib/hdfm/dump")
		t.Setenv(EnvSavesDir, "/var/lib/hdfm/saves")

		config := LoadConfig()
		assert.Equal(t, "/var/lib/hdfm/dump", config.DumpDir)
		assert.Equal(t, "/var/lib/hdfm/saves", config.SavesDir)
	})
}

// TestNewApplication tests the application constructor
func TestNewApplication(t *testing.T) {
	application := NewApplication(LoadConfig())

	assert.NotNil(t, application)
	assert.NotNil(t, application.logger)
	assert.NotNil(t, application.tuner)
	assert.NotNil(t, application.ui)
}

// TestApplication_RunValidationFailures tests that validation failures
// halt before anything is launched
func TestApplication_RunValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{
			name:   "No frequency",
			tokens: []string{"hdfm"},
		},
		{
			name:   "Help requested",
			tokens: []string{"hdfm", "--help"},
		},
		{
			name:   "Frequency out of range",
			tokens: []string{"hdfm", "108.1"},
		},
		{
			name:   "Unknown option",
			tokens: []string{"hdfm", "-z", "1", "95.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := NewApplication(LoadConfig())
			assert.Equal(t, ui.Halt, application.Run(tt.tokens))
		})
	}
}

// TestApplication_TunerDefaults tests that the loaded dump directory
// reaches the tuner configuration
func TestApplication_TunerDefaults(t *testing.T) {
	t.Setenv(EnvDumpDir, "/srv/dump")

	application := NewApplication(LoadConfig())
	assert.Equal(t, "/srv/dump", application.tuner.DumpDir)
}
