package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-ledger/internal/cli"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	var (
		write  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Print or write the effective settings",
		Long: `Print the settings in effect after defaults, the settings file,
LEDGER_ environment variables and flags are applied.

With --write the effective settings are saved to path, or to the file
they were read from, or to ./` + cli.SettingsFile + `.

Examples:
  # Show where each value ends up
  LEDGER_DISPLAY_CURRENCY=€ ledger config

  # Save the current settings
  ledger config --write --currency €`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && !write {
				return fmt.Errorf("a path is only used with --write")
			}
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				return writeConfig(cmd, args)
			}
			return printConfig(cmd, output)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the effective settings to a file")
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.FormatText), "Output format (text, json, yaml)")

	return cmd
}

func printConfig(cmd *cobra.Command, output string) error {
	cc := commandContext(cmd)
	settings, err := cc.LoadSettings()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if cli.OutputFormat(output) != cli.FormatText {
		return cli.OutputResults(w, output, settings)
	}

	values := settings.ToMap()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s = %v\n", k, values[k])
	}
	if cc.SettingsFile != "" {
		cli.PrintInfo("Read from %s", cc.SettingsFile)
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cc := commandContext(cmd)
	settings, err := cc.LoadSettings()
	if err != nil {
		return err
	}

	path := cc.SettingsFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = cli.SettingsFile
	}

	if _, err := os.Stat(path); err == nil {
		ok, err := cli.Confirm(fmt.Sprintf("Overwrite %s?", path), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo("Left %s unchanged", path)
			return nil
		}
	}

	if err := cli.WriteSettings(path, settings); err != nil {
		return err
	}
	cli.GetLogger(cmd.Context()).Info("settings written", "path", path)
	cli.PrintSuccess("Wrote settings to %s", path)
	return nil
}
