package services

import (
	"testing"

	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DefaultsAndControls(t *testing.T) {
	s := NewSession(nil, truthtable.DefaultSelection(), nil)
	assert.False(t, s.ID().IsZero())

	controls := s.Controls()
	require.Len(t, controls, values.GateCount)
	for i, c := range controls {
		assert.Equal(t, values.GateID(i), c.ID)
		assert.Equal(t, c.ID == values.GateNAND, c.Selected, c.ID.String())
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, "[x] NAND", controls[values.GateNAND].Label())
	assert.Equal(t, "[ ] AND", controls[values.GateAND].Label())
}

func TestSession_ToggleScenario(t *testing.T) {
	s := NewSession(truthtable.NewEngine(nil), truthtable.DefaultSelection(), nil)

	require.NoError(t, s.ToggleName("and"))
	assert.Equal(t, "{AND, NAND}", s.Selection().String())

	table, err := s.Table()
	require.NoError(t, err)
	row, ok := table.Row(true, true)
	require.True(t, ok)
	nand, ok := row.Value(gates.ColumnNAND)
	require.True(t, ok)
	assert.False(t, nand)
	and, ok := row.Value(gates.ColumnAND)
	require.True(t, ok)
	assert.True(t, and)

	require.NoError(t, s.Toggle(values.GateNAND))
	table, err = s.Table()
	require.NoError(t, err)
	assert.Equal(t, []gates.Column{gates.ColumnAND}, table.Columns)
}

func TestSession_ToggleInvalid(t *testing.T) {
	s := NewSession(nil, truthtable.DefaultSelection(), nil)

	assert.ErrorIs(t, s.ToggleName("XNOR"), values.ErrInvalidGateID)
	assert.ErrorIs(t, s.Toggle(values.GateID(12)), values.ErrInvalidGateID)
	assert.Equal(t, truthtable.DefaultSelection(), s.Selection())
}

func TestSession_UniqueIDs(t *testing.T) {
	a := NewSession(nil, truthtable.Selection{}, nil)
	b := NewSession(nil, truthtable.Selection{}, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}
