package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/barstatus/internal/config"
)

// createConfigCommand creates the config command.
func createConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Program configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.DefaultConfigYAML()
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by config
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("failed to print config: %w", err)
			}
			return nil
		},
	})

	return cmd
}
