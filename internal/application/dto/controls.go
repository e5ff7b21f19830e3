// Package dto holds data carried between the application layer and
// its presentation adapters.
package dto

import "github.com/reglet-dev/logicgates/internal/domain/values"

// GateControl is one gate-selection control as the user sees it.
type GateControl struct {
	Description string
	ID          values.GateID
	Selected    bool
}

// Label returns the control text, e.g. "[x] NAND".
func (c GateControl) Label() string {
	mark := "[ ]"
	if c.Selected {
		mark = "[x]"
	}
	return mark + " " + c.ID.String()
}

// TableRequest is the input of a one-shot table render.
// A nil Gates renders the default selection; an empty non-nil Gates
// renders only the input columns.
type TableRequest struct {
	Format string
	Bits   string
	Gates  []string
	Color  bool
}
