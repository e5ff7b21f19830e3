package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/reglet-dev/logicgates/internal/application/errors"
	"github.com/reglet-dev/logicgates/internal/application/ports"
)

// Tips are shown when an explorer session starts.
var Tips = []string{
	"Toggle gates to show or hide their truth table columns",
	"NAND is universal - try building other gates using only NAND!",
	"Notice patterns between input combinations",
	"Compare OR vs XOR to see how they differ",
}

// ExploreUseCase runs an interactive toggle/render loop over a session.
type ExploreUseCase struct {
	prompter  ports.GatePrompter
	formatter ports.OutputFormatter
	out       io.Writer
	logger    *slog.Logger
}

// NewExploreUseCase creates a new explore use case.
func NewExploreUseCase(
	prompter ports.GatePrompter,
	formatter ports.OutputFormatter,
	out io.Writer,
	logger *slog.Logger,
) *ExploreUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExploreUseCase{
		prompter:  prompter,
		formatter: formatter,
		out:       out,
		logger:    logger,
	}
}

// Execute renders the session's table, then repeatedly asks for a gate to
// toggle and re-renders, until the user is done or ctx is cancelled.
//
//nolint:errcheck // Best-effort terminal output
func (uc *ExploreUseCase) Execute(ctx context.Context, session *Session) error {
	if !uc.prompter.IsInteractive() {
		return apperrors.NewSessionError(session.ID().String(), "explore requires an interactive terminal", nil)
	}

	fmt.Fprintln(uc.out, "Tips:")
	for _, tip := range Tips {
		fmt.Fprintf(uc.out, "  - %s\n", tip)
	}
	fmt.Fprintln(uc.out)

	for {
		if err := uc.render(session); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		id, done, err := uc.prompter.PromptToggle(ctx, session.Controls())
		if err != nil {
			return apperrors.NewSessionError(session.ID().String(), "prompt failed", err)
		}
		if done {
			uc.logger.Debug("session ended", "session", session.ID().String(), "selection", session.Selection().String())
			return nil
		}

		if err := session.Toggle(id); err != nil {
			return err
		}
	}
}

func (uc *ExploreUseCase) render(session *Session) error {
	table, err := session.Table()
	if err != nil {
		return err
	}
	if err := uc.formatter.Format(table); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
