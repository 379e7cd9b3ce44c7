package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/barstatus/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 30
)

// Log level aliases for zerolog levels
const (
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Path       string
	Level      zerolog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// New creates a new context with a logger attached
// For production: provide fs, leave Writer nil for file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile := config.Path
		if logFile == "" {
			var err error
			logFile, err = storage.New(fs).GetLogPath()
			if err != nil {
				return nil, fmt.Errorf("failed to get log path: %w", err)
			}
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSize, defaultMaxLogSizeMB),
			MaxBackups: orDefault(config.MaxBackups, defaultMaxLogBackups),
			MaxAge:     orDefault(config.MaxAge, defaultMaxLogAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("app", "barstatus").
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
// for an empty name.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
