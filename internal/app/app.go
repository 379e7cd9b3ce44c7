// Package app wires the settings overlay, the bar layout and the status
// engine together for a single process.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/barstatus/internal/layout"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/settings"
	"github.com/wizzomafizzo/barstatus/internal/status"
)

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	Fs           afero.Fs
	Engine       status.Engine
	SettingsPath string
	Standalone   bool
}

// App owns the process-wide settings store and status instance.
type App struct {
	settings *settings.Store
	status   *status.Status
}

// NewAppWithOptions loads the settings overlay and prepares a Status bound
// to the given engine.
func NewAppWithOptions(ctx context.Context, opts AppOptions) (*App, error) {
	if opts.Engine == nil {
		return nil, errors.New("status engine is required")
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	store, err := settings.Load(ctx, fs, opts.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &App{
		settings: store,
		status:   status.New(opts.Engine, opts.Standalone),
	}, nil
}

// Settings returns the loaded settings overlay.
func (a *App) Settings() *settings.Store {
	return a.settings
}

// Status returns the status instance modules are registered with.
func (a *App) Status() *status.Status {
	return a.status
}

// Run registers the layout and hands control to the engine.
func (a *App) Run(ctx context.Context) error {
	if err := layout.Register(ctx, a.status, a.settings); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	logging.Get(ctx).Debug().
		Str("settings_path", a.settings.Path()).
		Bool("settings_dirty", a.settings.Dirty()).
		Msg("layout registered")

	return a.status.Run(ctx)
}
