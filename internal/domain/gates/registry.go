// Package gates defines the evaluation rule of every logic gate.
package gates

import (
	"github.com/reglet-dev/logicgates/internal/domain/values"
)

// Column is the name of one output column of a truth table.
type Column string

// Output columns produced by the gate set.
const (
	ColumnAND  Column = "AND"
	ColumnOR   Column = "OR"
	ColumnXOR  Column = "XOR"
	ColumnNAND Column = "NAND"
	ColumnNOTA Column = "NOT_A"
	ColumnNOTB Column = "NOT_B"
)

// Output is one named result of applying a rule to an input pair.
type Output struct {
	Column Column `json:"column" yaml:"column"`
	Value  bool   `json:"value" yaml:"value"`
}

// Rule is the evaluation rule of a single gate.
// Exactly one of binary or unary is set, matching Arity.
type Rule struct {
	binary      func(a, b bool) bool
	unary       func(a bool) bool
	Description string        `json:"description" yaml:"description"`
	Outputs     []Column      `json:"outputs" yaml:"outputs"`
	ID          values.GateID `json:"id" yaml:"id"`
	Arity       int           `json:"arity" yaml:"arity"`
}

// Evaluate applies the rule to the input pair (a, b).
// Unary rules are applied to a and b independently, one output each.
func (r Rule) Evaluate(a, b bool) []Output {
	if r.Arity == 1 {
		return []Output{
			{Column: r.Outputs[0], Value: r.unary(a)},
			{Column: r.Outputs[1], Value: r.unary(b)},
		}
	}
	return []Output{{Column: r.Outputs[0], Value: r.binary(a, b)}}
}

// Registry maps every GateID to its rule.
type Registry struct {
	rules [values.GateCount]Rule
}

func and(a, b bool) bool  { return a && b }
func or(a, b bool) bool   { return a || b }
func xor(a, b bool) bool  { return (a || b) && !(a && b) }
func nand(a, b bool) bool { return !(a && b) }
func not(a bool) bool     { return !a }

// NewRegistry returns the registry of the fixed gate set.
func NewRegistry() *Registry {
	return &Registry{rules: [values.GateCount]Rule{
		values.GateAND: {
			ID:          values.GateAND,
			Arity:       2,
			Outputs:     []Column{ColumnAND},
			Description: "true only when both inputs are true",
			binary:      and,
		},
		values.GateOR: {
			ID:          values.GateOR,
			Arity:       2,
			Outputs:     []Column{ColumnOR},
			Description: "true when at least one input is true",
			binary:      or,
		},
		values.GateXOR: {
			ID:          values.GateXOR,
			Arity:       2,
			Outputs:     []Column{ColumnXOR},
			Description: "true when exactly one input is true",
			binary:      xor,
		},
		values.GateNAND: {
			ID:          values.GateNAND,
			Arity:       2,
			Outputs:     []Column{ColumnNAND},
			Description: "false only when both inputs are true; universal gate",
			binary:      nand,
		},
		values.GateNOT: {
			ID:          values.GateNOT,
			Arity:       1,
			Outputs:     []Column{ColumnNOTA, ColumnNOTB},
			Description: "inverts its input; applied to A and B separately",
			unary:       not,
		},
	}}
}

// Lookup returns the rule for id.
func (r *Registry) Lookup(id values.GateID) (Rule, error) {
	if err := id.Validate(); err != nil {
		return Rule{}, err
	}
	return r.rules[id], nil
}

// Rules returns every rule in canonical order.
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules[:]...)
}
