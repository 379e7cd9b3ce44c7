// Package status adapts the external status-bar engine. A Status collects
// module registrations in call order and then hands them, once, to an
// Engine that owns polling and rendering.
//
// Module options are forwarded verbatim; validating them is the engine's job.
package status

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/wizzomafizzo/barstatus/internal/logging"
)

// ErrAlreadyRan is returned when Run is called a second time.
var ErrAlreadyRan = errors.New("status already handed off to engine")

// Options are the keyword options of a single module registration.
type Options map[string]any

// Registration is one module with its options.
type Registration struct {
	Module  string  `json:"module" yaml:"module"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// Plan is everything the engine receives on hand-off.
type Plan struct {
	Standalone bool           `json:"standalone" yaml:"standalone"`
	Modules    []Registration `json:"modules" yaml:"modules"`
}

// Engine is the status-bar run loop. Run blocks until the bar exits.
type Engine interface {
	Run(ctx context.Context, plan Plan) error
}

// Status collects registrations for an Engine.
type Status struct {
	engine        Engine
	registrations []Registration
	standalone    bool
	ran           bool
}

// New creates a Status bound to engine.
func New(engine Engine, standalone bool) *Status {
	return &Status{engine: engine, standalone: standalone}
}

// Register appends a module registration. opts is copied; nil means the
// module's defaults.
func (s *Status) Register(module string, opts Options) {
	s.registrations = append(s.registrations, Registration{
		Module:  module,
		Options: maps.Clone(opts),
	})
}

// Registrations returns the registrations in call order.
func (s *Status) Registrations() []Registration {
	return slices.Clone(s.registrations)
}

// Standalone reports whether the engine runs without a parent status program.
func (s *Status) Standalone() bool {
	return s.standalone
}

// Run hands control to the engine. There is no way back after this call
// and a Status can only run once.
func (s *Status) Run(ctx context.Context) error {
	if s.ran {
		return ErrAlreadyRan
	}
	s.ran = true

	logging.Get(ctx).Info().
		Int("modules", len(s.registrations)).
		Bool("standalone", s.standalone).
		Msg("handing off to status engine")

	plan := Plan{Modules: s.Registrations(), Standalone: s.standalone}
	if err := s.engine.Run(ctx, plan); err != nil {
		return fmt.Errorf("status engine failed: %w", err)
	}
	return nil
}
