package layout

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/barstatus/internal/settings"
	"github.com/wizzomafizzo/barstatus/internal/status"
	"github.com/wizzomafizzo/barstatus/internal/testutil"
)

type recordingRegistrar struct {
	registrations []status.Registration
}

func (r *recordingRegistrar) Register(module string, opts status.Options) {
	r.registrations = append(r.registrations, status.Registration{Module: module, Options: opts})
}

func (r *recordingRegistrar) modules() []string {
	names := make([]string, 0, len(r.registrations))
	for _, reg := range r.registrations {
		names = append(names, reg.Module)
	}
	return names
}

func (r *recordingRegistrar) find(module string) []status.Registration {
	var found []status.Registration
	for _, reg := range r.registrations {
		if reg.Module == module {
			found = append(found, reg)
		}
	}
	return found
}

func loadSettings(t *testing.T, content string) *settings.Store {
	t.Helper()

	fs, path := testutil.WriteSettingsFile(t, "local_settings.json", content)
	store, err := settings.Load(context.Background(), fs, path)
	require.NoError(t, err)
	return store
}

func TestRegister_NoSettingsSkipsWeather(t *testing.T) {
	t.Parallel()

	ctx, logs := testutil.NewTestContext(t)
	reg := &recordingRegistrar{}

	require.NoError(t, Register(ctx, reg, settings.New("/missing")))

	assert.Equal(t, []string{
		"clock", "load", "temp", "battery", "battery", "runwatch",
		"network", "wireless", "disk", "alsa", "mpd",
	}, reg.modules())
	assert.Empty(t, reg.find("weather"))
	assert.Contains(t, logs(), "weather not configured, skipping")
}

func TestRegister_WeatherFromSettings(t *testing.T) {
	t.Parallel()

	store := loadSettings(t, `{"weather": {"location_code": "USCA0001", "units": "F"}}`)
	reg := &recordingRegistrar{}

	require.NoError(t, Register(context.Background(), reg, store))

	weather := reg.find("weather")
	require.Len(t, weather, 1)
	expected := status.Options{"location_code": "USCA0001", "units": "F"}
	if diff := cmp.Diff(expected, weather[0].Options); diff != "" {
		t.Errorf("weather options mismatch (-want +got):\n%s", diff)
	}

	// weather sits between alsa and mpd
	assert.Equal(t, Modules(), reg.modules())
}

func TestRegister_WeatherOptionsAreCopied(t *testing.T) {
	t.Parallel()

	store := loadSettings(t, `{"weather": {"units": "F"}}`)
	reg := &recordingRegistrar{}
	require.NoError(t, Register(context.Background(), reg, store))

	reg.find("weather")[0].Options["units"] = "C"

	value, err := store.Get("weather")
	require.NoError(t, err)
	assert.Equal(t, "F", value.(map[string]any)["units"])
}

func TestRegister_FalsyWeatherSkipped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "null", content: `{"weather": null}`},
		{name: "false", content: `{"weather": false}`},
		{name: "empty object", content: `{"weather": {}}`},
		{name: "zero", content: `{"weather": 0}`},
		{name: "empty string", content: `{"weather": ""}`},
		{name: "other keys only", content: `{"music": {"host": "localhost"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := &recordingRegistrar{}
			require.NoError(t, Register(context.Background(), reg, loadSettings(t, tt.content)))
			assert.Empty(t, reg.find("weather"))
		})
	}
}

func TestRegister_NonObjectSettingsFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "array", content: `["weather"]`},
		{name: "string", content: `"weather"`},
		{name: "number", content: `42`},
		{name: "null", content: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := &recordingRegistrar{}
			err := Register(context.Background(), reg, loadSettings(t, tt.content))
			require.ErrorIs(t, err, settings.ErrNotObject)
			assert.Len(t, reg.find("alsa"), 1)
			assert.Empty(t, reg.find("weather"))
			assert.Empty(t, reg.find("mpd"))
		})
	}
}

func TestRegister_TruthyNonObjectWeatherFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "string", content: `{"weather": "USCA0001"}`},
		{name: "true", content: `{"weather": true}`},
		{name: "array", content: `{"weather": ["USCA0001"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := &recordingRegistrar{}
			err := Register(context.Background(), reg, loadSettings(t, tt.content))
			require.ErrorIs(t, err, ErrWeatherNotObject)
			assert.Empty(t, reg.find("mpd"))
		})
	}
}

func TestRegister_WeatherSetInMemory(t *testing.T) {
	t.Parallel()

	store := settings.New("/missing")
	require.NoError(t, store.Set("weather", status.Options{"units": "C"}))

	reg := &recordingRegistrar{}
	require.NoError(t, Register(context.Background(), reg, store))

	weather := reg.find("weather")
	require.Len(t, weather, 1)
	assert.Equal(t, "C", weather[0].Options["units"])
}

func TestRegister_LiteralOptions(t *testing.T) {
	t.Parallel()

	reg := &recordingRegistrar{}
	require.NoError(t, Register(context.Background(), reg, settings.New("/missing")))

	clock := reg.find("clock")
	require.Len(t, clock, 1)
	assert.Equal(t, "%a %-d %b %l:%M%p", clock[0].Options["format"])

	load := reg.find("load")
	require.Len(t, load, 1)
	assert.Nil(t, load[0].Options)

	batteries := reg.find("battery")
	require.Len(t, batteries, 2)
	for _, battery := range batteries {
		assert.Equal(t, true, battery.Options["alert"])
		assert.Equal(t, 5, battery.Options["alert_percentage"])
	}
	assert.Equal(t, map[string]string{"DIS": "↓", "CHR": "↑", "FULL": "="}, batteries[0].Options["status"])
	assert.Equal(t, "{status} {remaining:%E%hh:%Mm}", batteries[1].Options["format"])

	runwatch := reg.find("runwatch")
	require.Len(t, runwatch, 1)
	assert.Equal(t, status.Options{"name": "DHCP", "path": "/var/run/dhclient*.pid"}, runwatch[0].Options)

	assert.Equal(t, "eth0", reg.find("network")[0].Options["interface"])
	assert.Equal(t, "wlan0", reg.find("wireless")[0].Options["interface"])
	assert.Equal(t, "/", reg.find("disk")[0].Options["path"])
	assert.Equal(t, "♪{volume}", reg.find("alsa")[0].Options["format"])

	mpd := reg.find("mpd")
	require.Len(t, mpd, 1)
	assert.Equal(t, map[string]string{"pause": "▷", "play": "▶", "stop": "◾"}, mpd[0].Options["status"])
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    any
		name     string
		expected bool
	}{
		{name: "nil", value: nil, expected: false},
		{name: "false", value: false, expected: false},
		{name: "true", value: true, expected: true},
		{name: "empty string", value: "", expected: false},
		{name: "string", value: "x", expected: true},
		{name: "zero number", value: json.Number("0"), expected: false},
		{name: "zero float number", value: json.Number("0.0"), expected: false},
		{name: "number", value: json.Number("3"), expected: true},
		{name: "empty map", value: map[string]any{}, expected: false},
		{name: "map", value: map[string]any{"a": 1}, expected: true},
		{name: "empty slice", value: []any{}, expected: false},
		{name: "slice", value: []any{1}, expected: true},
		{name: "int zero", value: 0, expected: false},
		{name: "int", value: 7, expected: true},
		{name: "float zero", value: 0.0, expected: false},
		{name: "empty options", value: status.Options{}, expected: false},
		{name: "options", value: status.Options{"units": "F"}, expected: true},
		{name: "struct", value: struct{}{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Truthy(tt.value))
		})
	}
}

func TestStatusSatisfiesRegistrar(t *testing.T) {
	t.Parallel()

	st := status.New(nil, true)
	require.NoError(t, Register(context.Background(), st, settings.New("/missing")))
	assert.Len(t, st.Registrations(), 11)
}
