package opselector

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ethereum-optimism/infra/op-selector/flags"
)

// ResultFormatter is responsible for formatting and displaying selection results.
type ResultFormatter interface {
	FormatResults(result *Result) error
}

// NewFormatter returns the formatter for the given output format, writing to out.
// A nil writer prints to stdout.
func NewFormatter(format flags.OutputFormat, out io.Writer) ResultFormatter {
	if out == nil {
		out = os.Stdout
	}
	if format == flags.FormatNames {
		return &NamesFormatter{out: out}
	}
	return &ConsoleResultFormatter{out: out}
}

// ConsoleResultFormatter renders the selected suites as a table.
type ConsoleResultFormatter struct {
	out io.Writer
}

// FormatResults implements ResultFormatter.
func (f *ConsoleResultFormatter) FormatResults(result *Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle(fmt.Sprintf("Selected Suites (%s)", result.Initial))

	t.AppendHeader(table.Row{"Library", "Module", "Suite", "Manual"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Library", AutoMerge: true},
		{Name: "Module", AutoMerge: true},
		{Name: "Suite", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Manual", Align: text.AlignCenter},
	})

	for _, suite := range result.Selected {
		t.AppendRow(table.Row{
			suite.Library(),
			suite.Module(),
			suite.Name(),
			manualMarker(suite.Manual()),
		})
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d of %d", len(result.Selected), result.Considered), ""})
	t.Render()

	if result.Transition != nil {
		_, err := fmt.Fprintf(f.out, "Resolved %q as %s via %s\n",
			result.Initial.Pattern(), result.Transition.To, result.Transition.Trigger.FullName())
		return err
	}
	return nil
}

// NamesFormatter prints one full suite name per line, for use in scripts.
type NamesFormatter struct {
	out io.Writer
}

// FormatResults implements ResultFormatter.
func (f *NamesFormatter) FormatResults(result *Result) error {
	for _, suite := range result.Selected {
		if _, err := fmt.Fprintln(f.out, suite.FullName()); err != nil {
			return err
		}
	}
	return nil
}

func manualMarker(manual bool) string {
	if manual {
		return "✓"
	}
	return ""
}
