package output

import (
	"strconv"
	"strings"

	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// tableHeaders returns A, B followed by the gate columns.
func tableHeaders(t *truthtable.Table) []string {
	headers := make([]string, 0, len(t.Columns)+2)
	headers = append(headers, "A", "B")
	for _, c := range t.Columns {
		headers = append(headers, string(c))
	}
	return headers
}

// tableCells renders every row of t as strings in header order.
func tableCells(t *truthtable.Table, bits string) [][]string {
	cells := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		line := make([]string, 0, len(row.Outputs)+2)
		line = append(line, bitString(row.A, bits), bitString(row.B, bits))
		for _, out := range row.Outputs {
			line = append(line, bitString(out.Value, bits))
		}
		cells = append(cells, line)
	}
	return cells
}

var gateHeaders = []string{"GATE", "ARITY", "OUTPUTS", "DESCRIPTION"}

// gateCells renders the gate catalogue as strings.
func gateCells(rules []gates.Rule) [][]string {
	cells := make([][]string, 0, len(rules))
	for _, rule := range rules {
		outputs := make([]string, len(rule.Outputs))
		for i, c := range rule.Outputs {
			outputs[i] = string(c)
		}
		cells = append(cells, []string{
			rule.ID.String(),
			strconv.Itoa(rule.Arity),
			strings.Join(outputs, ", "),
			rule.Description,
		})
	}
	return cells
}
