package services

import (
	"context"
	"io"

	"github.com/reglet-dev/logicgates/internal/application/dto"
	"github.com/reglet-dev/logicgates/internal/application/ports"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/domain/values"
	"github.com/stretchr/testify/mock"
)

// MockPrompter is a mock implementation of ports.GatePrompter
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) IsInteractive() bool {
	return m.Called().Bool(0)
}

func (m *MockPrompter) PromptToggle(ctx context.Context, controls []dto.GateControl) (values.GateID, bool, error) {
	args := m.Called(ctx, controls)
	return args.Get(0).(values.GateID), args.Bool(1), args.Error(2)
}

// recordingFormatter keeps every table it is asked to format.
type recordingFormatter struct {
	tables []*truthtable.Table
	rules  []gates.Rule
	err    error
}

func (f *recordingFormatter) Format(table *truthtable.Table) error {
	f.tables = append(f.tables, table)
	return f.err
}

func (f *recordingFormatter) FormatGates(rules []gates.Rule) error {
	f.rules = rules
	return f.err
}

// stubFactory hands out a single formatter and records the request.
type stubFactory struct {
	formatter *recordingFormatter
	format    string
	options   ports.FormatterOptions
	err       error
}

func (f *stubFactory) Create(format string, _ io.Writer, options ports.FormatterOptions) (ports.OutputFormatter, error) {
	f.format = format
	f.options = options
	if f.err != nil {
		return nil, f.err
	}
	return f.formatter, nil
}

func (f *stubFactory) SupportedFormats() []string {
	return []string{"table"}
}
