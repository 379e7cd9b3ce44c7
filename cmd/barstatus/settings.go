package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/barstatus/internal/settings"
)

// createSettingsCommand creates the settings command with its subcommands.
func createSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the personal settings overlay",
	}

	cmd.AddCommand(createSettingsKeysCommand(), createSettingsGetCommand())

	return cmd
}

func createSettingsKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List settings keys in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadSettingsFromCommand(cmd)
			if err != nil {
				return err
			}

			keyColor := color.New(color.FgGreen)
			out := cmd.OutOrStdout()
			for key, value := range store.All() {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", keyColor.Sprint(key), describe(value)); err != nil {
					return fmt.Errorf("failed to print settings: %w", err)
				}
			}
			return nil
		},
	}
}

func createSettingsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a settings value as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettingsFromCommand(cmd)
			if err != nil {
				return err
			}

			value, err := store.Get(args[0])
			if err != nil {
				return fmt.Errorf("failed to get setting: %w", err)
			}

			data, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal setting: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if err != nil {
				return fmt.Errorf("failed to print setting: %w", err)
			}
			return nil
		},
	}
}

func loadSettingsFromCommand(cmd *cobra.Command) (*settings.Store, error) {
	cfg, err := loadConfigFromCommand(cmd)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := settings.Load(ctx, afero.NewOsFs(), cfg.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return store, nil
}

// describe summarizes a JSON value for listings.
func describe(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return fmt.Sprintf("object (%d keys)", len(v))
	case []any:
		return fmt.Sprintf("array (%d items)", len(v))
	case json.Number:
		return v.String()
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
