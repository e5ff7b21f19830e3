package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// MarkdownFormatter renders truth tables as GitHub-flavoured markdown tables.
type MarkdownFormatter struct {
	writer io.Writer
	bits   string
}

// NewMarkdownFormatter creates a new markdown formatter.
func NewMarkdownFormatter(w io.Writer, bits string) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w, bits: bits}
}

// Format writes the truth table.
func (f *MarkdownFormatter) Format(t *truthtable.Table) error {
	return f.write(tableHeaders(t), tableCells(t, f.bits))
}

// FormatGates writes the gate catalogue.
func (f *MarkdownFormatter) FormatGates(rules []gates.Rule) error {
	return f.write(gateHeaders, gateCells(rules))
}

func (f *MarkdownFormatter) write(headers []string, rows [][]string) error {
	pad := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return pad }).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(f.writer, tbl.Render())
	return err
}
