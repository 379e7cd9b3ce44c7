package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/barstatus/internal/config"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/storage"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "barstatus",
		Short:         "Personal status bar layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	fs := afero.NewOsFs()
	rootCmd.PersistentFlags().StringP("config", "c", storage.New(fs).GetConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().StringP("settings", "s", "",
		"Path to personal settings JSON (default ~/.i3/local_settings.json)")

	rootCmd.AddCommand(
		createRunCommand(),
		createSettingsCommand(),
		createModulesCommand(),
		createConfigCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand loads the config named by --config and applies the
// --settings override.
func loadConfigFromCommand(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(afero.NewOsFs(), configPath)
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by config
	}

	settingsPath, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, fmt.Errorf("failed to get settings flag: %w", err)
	}
	if settingsPath != "" {
		cfg.Settings = settingsPath
	}

	return cfg, nil
}

// setupLogging attaches the configured file logger to ctx.
func setupLogging(ctx context.Context, cfg *config.Config) (context.Context, error) {
	logConfig, err := cfg.LoggingConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	ctx, err = logging.New(ctx, afero.NewOsFs(), logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return ctx, nil
}
