// Package prompt implements interactive gate selection on a terminal.
package prompt

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/logicgates/internal/application/dto"
	"github.com/reglet-dev/logicgates/internal/domain/values"
	"golang.org/x/term"
)

// doneChoice is the option value that ends a session.
const doneChoice = "done"

// TerminalPrompter asks which gate to toggle using a huh select list.
type TerminalPrompter struct {
	input *os.File
}

// NewTerminalPrompter creates a prompter reading from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{input: os.Stdin}
}

// IsInteractive checks if stdin is a terminal rather than a pipe or file.
func (p *TerminalPrompter) IsInteractive() bool {
	return term.IsTerminal(int(p.input.Fd()))
}

// PromptToggle shows one option per gate, marked with its selection state,
// plus a final option that ends the session.
func (p *TerminalPrompter) PromptToggle(ctx context.Context, controls []dto.GateControl) (values.GateID, bool, error) {
	choice := doneChoice
	if len(controls) > 0 {
		choice = controls[0].ID.String()
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Toggle a gate").
			Description("Selected gates are shown as columns in the table").
			Options(options(controls)...).
			Value(&choice),
	))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, true, nil
		}
		return 0, false, err
	}

	return resolve(choice)
}

// options builds the select list for controls.
func options(controls []dto.GateControl) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(controls)+1)
	for _, c := range controls {
		label := c.Label()
		if c.Description != "" {
			label += " - " + c.Description
		}
		opts = append(opts, huh.NewOption(label, c.ID.String()))
	}
	return append(opts, huh.NewOption("Done", doneChoice))
}

// resolve maps a selected option value back to a gate.
func resolve(choice string) (values.GateID, bool, error) {
	if choice == doneChoice {
		return 0, true, nil
	}
	id, err := values.ParseGateID(choice)
	if err != nil {
		return 0, false, err
	}
	return id, false, nil
}
