package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/barstatus/internal/constants"
	"github.com/wizzomafizzo/barstatus/internal/layout"
)

// createModulesCommand creates the modules command.
func createModulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the status modules in bar order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, module := range layout.Modules() {
				line := module
				if module == constants.ModuleWeather {
					line += " (when \"weather\" is set in settings)"
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return fmt.Errorf("failed to print modules: %w", err)
				}
			}
			return nil
		},
	}
}
