package logging

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer: writer,
		Level:  InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))

	require.NoError(t, err)
	require.NotNil(t, ctx)

	logger := Get(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.GetLevel())
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), nil, Config{Level: InfoLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestNew_WritesStructuredFields(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Info().Str("module", "clock").Msg("registered")

	output := buf.String()
	assert.Contains(t, output, `"app":"barstatus"`)
	assert.Contains(t, output, `"module":"clock"`)
	assert.Contains(t, output, `"message":"registered"`)
	assert.Contains(t, output, `"time"`)
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{Writer: &buf, Level: zerolog.WarnLevel})
	require.NoError(t, err)

	Get(ctx).Info().Msg("hidden")
	Get(ctx).Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_FileLoggingWithExplicitPath(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "barstatus.log")
	ctx, err := New(context.Background(), afero.NewMemMapFs(), Config{
		Path:  logPath,
		Level: InfoLevel,
	})
	require.NoError(t, err)

	Get(ctx).Info().Msg("to file")

	content, err := afero.ReadFile(afero.NewOsFs(), logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to file")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
		wantErr  bool
	}{
		{name: "empty defaults to info", input: "", expected: InfoLevel},
		{name: "debug", input: "debug", expected: DebugLevel},
		{name: "warn", input: "warn", expected: zerolog.WarnLevel},
		{name: "invalid", input: "loud", expected: InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, orDefault(0, 10))
	assert.Equal(t, 10, orDefault(-1, 10))
	assert.Equal(t, 4, orDefault(4, 10))
}
