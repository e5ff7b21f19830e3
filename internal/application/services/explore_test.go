package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/reglet-dev/logicgates/internal/application/dto"
	apperrors "github.com/reglet-dev/logicgates/internal/application/errors"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExplore_TogglesUntilDone(t *testing.T) {
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(true)
	prompter.On("PromptToggle", mock.Anything, mock.Anything).Return(values.GateAND, false, nil).Once()
	prompter.On("PromptToggle", mock.Anything, mock.Anything).Return(values.GateNAND, false, nil).Once()
	prompter.On("PromptToggle", mock.Anything, mock.Anything).Return(values.GateID(0), true, nil).Once()

	formatter := &recordingFormatter{}
	var out bytes.Buffer
	session := NewSession(nil, truthtable.DefaultSelection(), nil)

	err := NewExploreUseCase(prompter, formatter, &out, nil).Execute(context.Background(), session)
	require.NoError(t, err)

	require.Len(t, formatter.tables, 3)
	assert.Equal(t, []gates.Column{gates.ColumnNAND}, formatter.tables[0].Columns)
	assert.Equal(t, []gates.Column{gates.ColumnAND, gates.ColumnNAND}, formatter.tables[1].Columns)
	assert.Equal(t, []gates.Column{gates.ColumnAND}, formatter.tables[2].Columns)
	assert.Contains(t, out.String(), "NAND is universal")
	prompter.AssertExpectations(t)
}

func TestExplore_PromptSeesCurrentSelection(t *testing.T) {
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(true)
	prompter.On("PromptToggle", mock.Anything, mock.MatchedBy(func(c []dto.GateControl) bool {
		return len(c) == values.GateCount && c[values.GateNAND].Selected && !c[values.GateAND].Selected
	})).Return(values.GateID(0), true, nil).Once()

	session := NewSession(nil, truthtable.DefaultSelection(), nil)
	err := NewExploreUseCase(prompter, &recordingFormatter{}, &bytes.Buffer{}, nil).Execute(context.Background(), session)
	require.NoError(t, err)
	prompter.AssertExpectations(t)
}

func TestExplore_NonInteractive(t *testing.T) {
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(false)

	session := NewSession(nil, truthtable.DefaultSelection(), nil)
	err := NewExploreUseCase(prompter, &recordingFormatter{}, &bytes.Buffer{}, nil).Execute(context.Background(), session)

	var sessErr *apperrors.SessionError
	require.True(t, errors.As(err, &sessErr))
	assert.Equal(t, session.ID().String(), sessErr.SessionID)
	prompter.AssertNotCalled(t, "PromptToggle", mock.Anything, mock.Anything)
}

func TestExplore_PromptError(t *testing.T) {
	promptErr := errors.New("user aborted")
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(true)
	prompter.On("PromptToggle", mock.Anything, mock.Anything).Return(values.GateID(0), false, promptErr).Once()

	session := NewSession(nil, truthtable.DefaultSelection(), nil)
	err := NewExploreUseCase(prompter, &recordingFormatter{}, &bytes.Buffer{}, nil).Execute(context.Background(), session)
	assert.ErrorIs(t, err, promptErr)
}

func TestExplore_InvalidGateFromPrompt(t *testing.T) {
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(true)
	prompter.On("PromptToggle", mock.Anything, mock.Anything).Return(values.GateID(99), false, nil).Once()

	session := NewSession(nil, truthtable.DefaultSelection(), nil)
	err := NewExploreUseCase(prompter, &recordingFormatter{}, &bytes.Buffer{}, nil).Execute(context.Background(), session)
	assert.ErrorIs(t, err, values.ErrInvalidGateID)
}

func TestExplore_CancelledContext(t *testing.T) {
	prompter := new(MockPrompter)
	prompter.On("IsInteractive").Return(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := NewSession(nil, truthtable.DefaultSelection(), nil)
	err := NewExploreUseCase(prompter, &recordingFormatter{}, &bytes.Buffer{}, nil).Execute(ctx, session)
	assert.ErrorIs(t, err, context.Canceled)
	prompter.AssertNotCalled(t, "PromptToggle", mock.Anything, mock.Anything)
}
