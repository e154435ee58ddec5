package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-ledger/internal/cli"
	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the document and its totals",
		Long: `Print every sheet of the starting document with section and grand
totals, without opening the editor.

Examples:
  # Print the sample document
  ledger show --sample

  # Machine readable output
  ledger show --sample -o json
  ledger show -o yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(cli.FormatText), "Output format (text, json, yaml)")

	return cmd
}

func runShow(cmd *cobra.Command, output string) error {
	cc := commandContext(cmd)
	doc := cc.NewDocument()
	w := cmd.OutOrStdout()

	if cli.OutputFormat(output) != cli.FormatText {
		return cli.OutputResults(w, output, newDocumentReport(cc, doc))
	}

	for i, tab := range doc.Tabs() {
		name := tab.Name
		if i == doc.ActiveIndex() {
			name += " (active)"
		}
		fmt.Fprintln(w, name)
		for _, t := range tab.Tables {
			printTable(w, cc, t)
		}
	}
	fmt.Fprintf(w, "Total: %s\n", cc.FormatAmount(sheet.ComputeDocumentTotal(doc)))
	return nil
}

func printTable(w io.Writer, cc *cli.CommandContext, t models.Table) {
	f := cli.NewTableFormatter(w)
	f.Title(t.Title)

	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	f.Header(names...)

	for _, r := range t.Rows {
		f.Row(r.Values...)
	}

	footer := make([]string, len(t.Columns))
	if col := t.ColumnIndex(sheet.ValueColumn); col >= 0 {
		footer[col] = cc.FormatAmount(sheet.ComputeTotal(t))
		f.AlignRight(col + 1)
		if col > 0 {
			footer[0] = "Total"
		}
	}
	f.Footer(footer...)
	f.Flush()
}

type documentReport struct {
	ActiveTab int         `json:"active_tab" yaml:"active_tab"`
	Total     string      `json:"total" yaml:"total"`
	Tabs      []tabReport `json:"tabs" yaml:"tabs"`
}

type tabReport struct {
	ID     string        `json:"id" yaml:"id"`
	Name   string        `json:"name" yaml:"name"`
	Tables []tableReport `json:"tables" yaml:"tables"`
}

type tableReport struct {
	models.Table `yaml:",inline"`
	Total        string `json:"total" yaml:"total"`
}

func newDocumentReport(cc *cli.CommandContext, doc sheet.Document) documentReport {
	report := documentReport{
		ActiveTab: doc.ActiveIndex(),
		Total:     cc.FormatAmount(sheet.ComputeDocumentTotal(doc)),
	}
	for _, tab := range doc.Tabs() {
		tr := tabReport{ID: tab.ID, Name: tab.Name}
		for _, t := range tab.Tables {
			tr.Tables = append(tr.Tables, tableReport{Table: t, Total: cc.FormatAmount(sheet.ComputeTotal(t))})
		}
		report.Tabs = append(report.Tabs, tr)
	}
	return report
}
