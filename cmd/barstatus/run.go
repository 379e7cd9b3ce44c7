package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/barstatus/internal/app"
	"github.com/wizzomafizzo/barstatus/internal/logging"
	"github.com/wizzomafizzo/barstatus/internal/status"
)

// createRunCommand creates the run command.
func createRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Register modules and hand off to the status engine",
		Long: "Load the personal settings overlay, register every status module " +
			"and hand the registration plan to the status engine.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return fmt.Errorf("failed to get output flag: %w", err)
			}
			if output == "" {
				output = cfg.Output
			}

			ctx, err := setupLogging(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			engine, err := status.NewPlanEngine(cmd.OutOrStdout(), output)
			if err != nil {
				return err //nolint:wrapcheck // message is user facing as-is
			}

			application, err := app.NewAppWithOptions(ctx, app.AppOptions{
				Fs:           afero.NewOsFs(),
				Engine:       engine,
				SettingsPath: cfg.Settings,
				Standalone:   cfg.Standalone,
			})
			if err != nil {
				logging.Get(ctx).Error().Err(err).Msg("startup failed")
				return err //nolint:wrapcheck // already wrapped by app
			}

			if err := application.Run(ctx); err != nil {
				logging.Get(ctx).Error().Err(err).Msg("run failed")
				return err //nolint:wrapcheck // already wrapped by app
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Plan output format: text, json or yaml (default from config)")

	return cmd
}
