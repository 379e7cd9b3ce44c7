package constants

// Status module names understood by the status-bar engine.
const (
	ModuleClock    = "clock"
	ModuleLoad     = "load"
	ModuleTemp     = "temp"
	ModuleBattery  = "battery"
	ModuleRunwatch = "runwatch"
	ModuleNetwork  = "network"
	ModuleWireless = "wireless"
	ModuleDisk     = "disk"
	ModuleAlsa     = "alsa"
	ModuleWeather  = "weather"
	ModuleMPD      = "mpd"
)

// WeatherSettingsKey is the settings overlay key whose object becomes the
// weather module options.
const WeatherSettingsKey = "weather"
