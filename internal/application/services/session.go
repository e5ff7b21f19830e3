// Package services contains application use cases.
package services

import (
	"log/slog"

	"github.com/reglet-dev/logicgates/internal/application/dto"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/domain/values"
)

// Session owns the selection of one explorer session.
// It is not safe for concurrent use; a session has a single user.
type Session struct {
	engine    *truthtable.Engine
	logger    *slog.Logger
	selection truthtable.Selection
	id        values.SessionID
}

// NewSession starts a session with the given initial selection.
func NewSession(engine *truthtable.Engine, initial truthtable.Selection, logger *slog.Logger) *Session {
	if engine == nil {
		engine = truthtable.NewEngine(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	id := values.NewSessionID()
	s := &Session{
		engine:    engine,
		selection: initial,
		id:        id,
		logger:    logger.With("session", id.String()),
	}
	s.logger.Debug("session started", "selection", initial.String())
	return s
}

// ID returns the session identifier.
func (s *Session) ID() values.SessionID {
	return s.id
}

// Selection returns the current selection.
func (s *Session) Selection() truthtable.Selection {
	return s.selection
}

// Toggle flips gate id in the selection.
func (s *Session) Toggle(id values.GateID) error {
	next, err := truthtable.Toggle(s.selection, id)
	if err != nil {
		s.logger.Warn("toggle rejected", "gate", id.String(), "error", err)
		return err
	}
	s.selection = next
	s.logger.Debug("gate toggled", "gate", id.String(), "selected", next.Contains(id), "selection", next.String())
	return nil
}

// ToggleName parses name as a gate and toggles it.
func (s *Session) ToggleName(name string) error {
	id, err := values.ParseGateID(name)
	if err != nil {
		return err
	}
	return s.Toggle(id)
}

// Table computes the truth table for the current selection.
func (s *Session) Table() (*truthtable.Table, error) {
	table, err := s.engine.Compute(s.selection)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("table computed", "columns", len(table.Columns))
	return table, nil
}

// Controls returns one control per gate in canonical order, marked
// with whether the gate is selected.
func (s *Session) Controls() []dto.GateControl {
	rules := s.engine.Registry().Rules()
	controls := make([]dto.GateControl, 0, len(rules))
	for _, rule := range rules {
		controls = append(controls, dto.GateControl{
			ID:          rule.ID,
			Description: rule.Description,
			Selected:    s.selection.Contains(rule.ID),
		})
	}
	return controls
}
