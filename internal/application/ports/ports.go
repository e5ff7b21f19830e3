// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/logicgates/internal/application/dto"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/domain/values"
)

// OutputFormatter renders truth tables and the gate catalogue.
type OutputFormatter interface {
	Format(table *truthtable.Table) error
	FormatGates(rules []gates.Rule) error
}

// FormatterOptions configures formatter output.
type FormatterOptions struct {
	// Bits is "numeric" (0/1) or "boolean" (T/F).
	Bits  string
	Color bool
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}

// GatePrompter asks the user which gate to toggle next.
type GatePrompter interface {
	// IsInteractive reports whether a user can answer prompts.
	IsInteractive() bool

	// PromptToggle returns the gate to toggle, or done=true when the
	// user ends the session.
	PromptToggle(ctx context.Context, controls []dto.GateControl) (id values.GateID, done bool, err error)
}
