package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDir(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".i3", SettingsDir)
}

func TestSettingsFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "local_settings.json", SettingsFilename)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "barstatus.log", LogFilename)
}

func TestWeatherKeyMatchesModule(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ModuleWeather, WeatherSettingsKey)
}
