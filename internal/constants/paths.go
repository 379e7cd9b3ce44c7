// Package constants contains names for directories and files used by barstatus.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "barstatus"

	// SettingsDir is the directory under the home directory holding the
	// personal settings overlay.
	SettingsDir = ".i3"

	// SettingsFilename is the personal settings overlay file name.
	SettingsFilename = "local_settings.json"

	// LogFilename is the default log file name.
	LogFilename = "barstatus.log"

	// ConfigFilename is the default program config file name.
	ConfigFilename = "barstatus.yml"
)
