// Package truthtable computes truth tables for a selection of gates.
package truthtable

import (
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/values"
)

// InputPair is one combination of the inputs A and B.
type InputPair struct {
	A bool
	B bool
}

var inputPairs = [4]InputPair{
	{A: false, B: false},
	{A: false, B: true},
	{A: true, B: false},
	{A: true, B: true},
}

// InputPairs returns the four input pairs in table order:
// (0,0), (0,1), (1,0), (1,1).
func InputPairs() []InputPair {
	return append([]InputPair(nil), inputPairs[:]...)
}

// Row is the result of every selected gate for one input pair.
type Row struct {
	Outputs []gates.Output `json:"outputs" yaml:"outputs"`
	A       bool           `json:"a" yaml:"a"`
	B       bool           `json:"b" yaml:"b"`
}

// Value returns the value of column c, and false if c is not in the row.
func (r Row) Value(c gates.Column) (value, ok bool) {
	for _, out := range r.Outputs {
		if out.Column == c {
			return out.Value, true
		}
	}
	return false, false
}

// Columns returns the row's column names in order.
func (r Row) Columns() []gates.Column {
	cols := make([]gates.Column, len(r.Outputs))
	for i, out := range r.Outputs {
		cols[i] = out.Column
	}
	return cols
}

// Table is a computed truth table.
// Columns lists the gate output columns; the A and B input columns are implicit.
type Table struct {
	Gates   []values.GateID `json:"gates" yaml:"gates"`
	Columns []gates.Column  `json:"columns" yaml:"columns"`
	Rows    []Row           `json:"rows" yaml:"rows"`
}

// Row returns the row for the input pair (a, b).
func (t *Table) Row(a, b bool) (Row, bool) {
	for _, row := range t.Rows {
		if row.A == a && row.B == b {
			return row, true
		}
	}
	return Row{}, false
}

// Engine evaluates selections against a gate registry.
type Engine struct {
	registry *gates.Registry
}

// NewEngine creates an engine backed by registry.
// A nil registry uses gates.NewRegistry().
func NewEngine(registry *gates.Registry) *Engine {
	if registry == nil {
		registry = gates.NewRegistry()
	}
	return &Engine{registry: registry}
}

// Registry returns the registry the engine evaluates against.
func (e *Engine) Registry() *gates.Registry {
	return e.registry
}

// Compute evaluates every selected gate against the four input pairs.
// Each row is computed once across all selected gates.
func (e *Engine) Compute(sel Selection) (*Table, error) {
	ids := sel.IDs()
	rules := make([]gates.Rule, 0, len(ids))
	columns := make([]gates.Column, 0, len(ids)+1)
	for _, id := range ids {
		rule, err := e.registry.Lookup(id)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		columns = append(columns, rule.Outputs...)
	}

	table := &Table{
		Gates:   ids,
		Columns: columns,
		Rows:    make([]Row, 0, len(inputPairs)),
	}
	for _, in := range inputPairs {
		row := Row{A: in.A, B: in.B, Outputs: make([]gates.Output, 0, len(columns))}
		for _, rule := range rules {
			row.Outputs = append(row.Outputs, rule.Evaluate(in.A, in.B)...)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
