package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// TableFormatter renders truth tables as a bordered terminal table.
type TableFormatter struct {
	writer      io.Writer
	renderer    *lipgloss.Renderer
	bits        string
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer, bits string, color bool) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		renderer:    lipgloss.NewRenderer(w),
		bits:        bits,
		EnableColor: color,
	}
}

// Format writes the truth table.
func (f *TableFormatter) Format(t *truthtable.Table) error {
	tbl := f.newTable().
		Headers(tableHeaders(t)...).
		Rows(tableCells(t, f.bits)...)

	_, err := fmt.Fprintln(f.writer, tbl.Render())
	return err
}

// FormatGates writes the gate catalogue.
func (f *TableFormatter) FormatGates(rules []gates.Rule) error {
	tbl := f.newTable().
		Headers(gateHeaders...).
		Rows(gateCells(rules)...)

	_, err := fmt.Fprintln(f.writer, tbl.Render())
	return err
}

func (f *TableFormatter) newTable() *table.Table {
	cell := f.renderer.NewStyle().Padding(0, 1)
	header := cell
	border := f.renderer.NewStyle()
	if f.EnableColor {
		header = header.Bold(true).Foreground(lipgloss.Color("6"))
		border = border.Foreground(lipgloss.Color("8"))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
