package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pluqqy/pluqqy-ledger/internal/cli"
	"github.com/pluqqy/pluqqy-ledger/pkg/editor"
	"github.com/pluqqy/pluqqy-ledger/pkg/tui"
)

type rootOptions struct {
	configPath string
	quiet      bool
	noColor    bool
	yes        bool

	logCloser io.Closer
}

func (o *rootOptions) close() {
	if o.logCloser != nil {
		o.logCloser.Close()
		o.logCloser = nil
	}
}

type commandContextKey struct{}

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Execute runs the ledger command line.
func Execute(version string) error {
	root, opts := newRootCommand(version)
	defer opts.close()
	return root.Execute()
}

func newRootCommand(version string) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Terminal spreadsheet for tracking what your assets are worth",
		Long: `Ledger is a terminal spreadsheet for tracking asset values.

Sheets hold sections, sections hold rows, and every section sums its
"Value" column. The grand total of all sheets is shown at the top.

Run without arguments to open the interactive editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(opts.quiet, opts.noColor, opts.yes)

			cc := cli.NewCommandContext(opts.configPath, cmd.Flags())
			settings, err := cc.LoadSettings()
			if err != nil {
				return err
			}

			logger, closer, err := cli.NewLogger(settings.Log)
			if err != nil {
				return err
			}
			opts.close()
			opts.logCloser = closer

			ctx := cli.WithLogger(cmd.Context(), logger)
			cmd.SetContext(context.WithValue(ctx, commandContextKey{}, cc))
			return nil
		},
		RunE: runEditor,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default ./"+cli.SettingsFile+")")
	flags.String("currency", "$", "Currency symbol put before amounts")
	flags.Bool("sample", false, "Start from the sample document")
	flags.String("log-file", "", "Write debug logs to this file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors and glyphs in output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress informational messages")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to every prompt")

	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewVersionCommand(version))

	return cmd, opts
}

// commandContext returns the context prepared by the root command.
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	if ctx := cmd.Context(); ctx != nil {
		if cc, ok := ctx.Value(commandContextKey{}).(*cli.CommandContext); ok {
			return cc
		}
	}
	configPath, _ := cmd.Flags().GetString("config")
	return cli.NewCommandContext(configPath, cmd.Flags())
}

func runEditor(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("the editor needs a terminal; use 'ledger show' for plain output")
	}

	cc := commandContext(cmd)
	settings := cc.LoadSettingsWithDefault()
	logger := cli.GetLogger(cmd.Context())

	ed := editor.New(cc.NewDocument(), logger)
	logger.Info("editor started", "session", ed.Session(), "settings", cc.SettingsFile)

	p := tea.NewProgram(tui.NewApp(ed, settings.Display, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	logger.Info("editor closed", "total", ed.GrandTotal().StringFixed(2))
	return nil
}
