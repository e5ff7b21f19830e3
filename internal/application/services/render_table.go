package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/logicgates/internal/application/dto"
	"github.com/reglet-dev/logicgates/internal/application/ports"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// RenderTableUseCase computes a truth table once and writes it out.
type RenderTableUseCase struct {
	engine     *truthtable.Engine
	formatters ports.OutputFormatterFactory
	logger     *slog.Logger
}

// NewRenderTableUseCase creates a new render table use case.
func NewRenderTableUseCase(
	engine *truthtable.Engine,
	formatters ports.OutputFormatterFactory,
	logger *slog.Logger,
) *RenderTableUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &RenderTableUseCase{
		engine:     engine,
		formatters: formatters,
		logger:     logger,
	}
}

// Execute renders the table described by req to w.
func (uc *RenderTableUseCase) Execute(_ context.Context, req dto.TableRequest, w io.Writer) error {
	sel := truthtable.DefaultSelection()
	if req.Gates != nil {
		parsed, err := truthtable.ParseSelection(req.Gates)
		if err != nil {
			return err
		}
		sel = parsed
	}

	formatter, err := uc.formatters.Create(req.Format, w, ports.FormatterOptions{
		Bits:  req.Bits,
		Color: req.Color,
	})
	if err != nil {
		return err
	}

	table, err := uc.engine.Compute(sel)
	if err != nil {
		return err
	}
	uc.logger.Debug("rendering table", "selection", sel.String(), "format", req.Format)

	if err := formatter.Format(table); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// ListGates writes the gate catalogue in the requested format.
func (uc *RenderTableUseCase) ListGates(_ context.Context, req dto.TableRequest, w io.Writer) error {
	formatter, err := uc.formatters.Create(req.Format, w, ports.FormatterOptions{
		Bits:  req.Bits,
		Color: req.Color,
	})
	if err != nil {
		return err
	}
	if err := formatter.FormatGates(uc.engine.Registry().Rules()); err != nil {
		return fmt.Errorf("failed to write gates: %w", err)
	}
	return nil
}
