package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter renders one bordered table. Plain ASCII borders are used
// when color is off.
type TableFormatter struct {
	writer table.Writer
}

// NewTableFormatter creates a table formatter that renders to w on Flush
func NewTableFormatter(w io.Writer) *TableFormatter {
	style := table.StyleLight
	if noColor {
		style = table.StyleDefault
	}
	// Keep header and footer text as given.
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(style)
	return &TableFormatter{writer: t}
}

// Title sets the caption above the header
func (t *TableFormatter) Title(title string) {
	t.writer.SetTitle(title)
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	t.writer.AppendHeader(toRow(columns))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	t.writer.AppendRow(toRow(values))
}

// Footer writes the line under the rows
func (t *TableFormatter) Footer(values ...string) {
	t.writer.AppendFooter(toRow(values))
}

// AlignRight right-aligns the columns with the given 1-based numbers
func (t *TableFormatter) AlignRight(numbers ...int) {
	configs := make([]table.ColumnConfig, len(numbers))
	for i, n := range numbers {
		configs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.writer.SetColumnConfigs(configs)
}

// Flush renders the buffered table
func (t *TableFormatter) Flush() {
	t.writer.Render()
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		// Callers usually render text themselves; this is the fallback.
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
