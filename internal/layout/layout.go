// Package layout declares the status bar: which modules are shown, in what
// order, and with which options.
package layout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/wizzomafizzo/barstatus/internal/constants"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/status"
)

// ErrWeatherNotObject is returned when the weather setting is set but is
// not a JSON object that can be used as module options.
var ErrWeatherNotObject = errors.New("weather setting is not an object")

// Registrar accepts module registrations.
type Registrar interface {
	Register(module string, opts status.Options)
}

// Settings is the read access layout needs from the settings overlay.
type Settings interface {
	GetOr(key string, def any) (any, error)
}

// Register performs every registration of the bar. The weather module is
// only registered when the weather setting is truthy.
func Register(ctx context.Context, reg Registrar, settings Settings) error {
	log := logging.Get(ctx)

	register := func(module string, opts status.Options) {
		reg.Register(module, opts)
		log.Debug().Str("module", module).Int("options", len(opts)).Msg("registered module")
	}

	// Tue 30 Jul 11:59PM
	register(constants.ModuleClock, status.Options{
		"format": "%a %-d %b %l:%M%p",
	})

	// load average of the last 1 and 5 minutes
	register(constants.ModuleLoad, nil)

	// Intel CPUs only
	register(constants.ModuleTemp, status.Options{
		"format": "{temp:.0f}°C",
	})

	// ↓14.22W 56.15% [77.81%] 2h:41m
	// Colors red and notifies below 5% while discharging.
	register(constants.ModuleBattery, status.Options{
		"format":           "{status}/{consumption:.2f}W {percentage:.2f}% [{percentage_design:.2f}%] {remaining:%E%hh:%Mm}",
		"alert":            true,
		"alert_percentage": 5,
		"status": map[string]string{
			"DIS":  "↓",
			"CHR":  "↑",
			"FULL": "=",
		},
	})

	// Discharging 6h:51m
	register(constants.ModuleBattery, status.Options{
		"format":           "{status} {remaining:%E%hh:%Mm}",
		"alert":            true,
		"alert_percentage": 5,
		"status": map[string]string{
			"DIS":  "Discharging",
			"CHR":  "Charging",
			"FULL": "Bat full",
		},
	})

	register(constants.ModuleRunwatch, status.Options{
		"name": "DHCP",
		"path": "/var/run/dhclient*.pid",
	})

	// 10.10.10.42/24 in green when up, interface name in red when down
	register(constants.ModuleNetwork, status.Options{
		"interface": "eth0",
		"format_up": "{v4cidr}",
	})

	register(constants.ModuleWireless, status.Options{
		"interface": "wlan0",
		"format_up": "{essid} {quality:03.0f}%",
	})

	// 42/128G [86G]
	register(constants.ModuleDisk, status.Options{
		"path":   "/",
		"format": "{used}/{total}G [{avail}G]",
	})

	register(constants.ModuleAlsa, status.Options{
		"format": "♪{volume}",
	})

	weather, err := settings.GetOr(constants.WeatherSettingsKey, nil)
	if err != nil {
		return fmt.Errorf("failed to read weather setting: %w", err)
	}
	if Truthy(weather) {
		opts, err := asOptions(weather)
		if err != nil {
			return err
		}
		register(constants.ModuleWeather, opts)
	} else {
		log.Debug().Msg("weather not configured, skipping")
	}

	// Cloud connected▶Reroute to Remain
	register(constants.ModuleMPD, status.Options{
		"format": "{title} {status} {album}",
		"status": map[string]string{
			"pause": "▷",
			"play":  "▶",
			"stop":  "◾",
		},
	})

	return nil
}

func asOptions(value any) (status.Options, error) {
	switch v := value.(type) {
	case map[string]any:
		return maps.Clone(v), nil
	case status.Options:
		return maps.Clone(v), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrWeatherNotObject, value)
	}
}

// Modules returns the module names Register can produce, in order.
func Modules() []string {
	return []string{
		constants.ModuleClock,
		constants.ModuleLoad,
		constants.ModuleTemp,
		constants.ModuleBattery,
		constants.ModuleBattery,
		constants.ModuleRunwatch,
		constants.ModuleNetwork,
		constants.ModuleWireless,
		constants.ModuleDisk,
		constants.ModuleAlsa,
		constants.ModuleWeather,
		constants.ModuleMPD,
	}
}

// Truthy reports whether a decoded JSON value counts as set: not null,
// false, zero, or empty.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case status.Options:
		return len(v) > 0
	case int:
		return v != 0
	case float64:
		return v != 0
	}

	return true
}
