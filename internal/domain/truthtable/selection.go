package truthtable

import (
	"strings"

	"github.com/reglet-dev/logicgates/internal/domain/values"
)

// Selection is the set of gates whose columns are shown.
// It is a comparable value: two selections with the same members are ==.
type Selection struct {
	mask uint8
}

// DefaultSelection returns the selection a new session starts with: {NAND}.
func DefaultSelection() Selection {
	return Selection{mask: bit(values.GateNAND)}
}

// NewSelection builds a selection from ids. Duplicates are ignored.
func NewSelection(ids ...values.GateID) (Selection, error) {
	var s Selection
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return Selection{}, err
		}
		s.mask |= bit(id)
	}
	return s, nil
}

// ParseSelection builds a selection from gate names.
func ParseSelection(names []string) (Selection, error) {
	var s Selection
	for _, name := range names {
		id, err := values.ParseGateID(name)
		if err != nil {
			return Selection{}, err
		}
		s.mask |= bit(id)
	}
	return s, nil
}

// Toggle removes id from s if present and adds it otherwise.
// An undefined id returns s unchanged with an InvalidGateIDError.
func Toggle(s Selection, id values.GateID) (Selection, error) {
	if err := id.Validate(); err != nil {
		return s, err
	}
	return Selection{mask: s.mask ^ bit(id)}, nil
}

// Contains reports whether id is selected.
func (s Selection) Contains(id values.GateID) bool {
	if id.Validate() != nil {
		return false
	}
	return s.mask&bit(id) != 0
}

// IDs returns the selected gates in canonical order.
func (s Selection) IDs() []values.GateID {
	ids := make([]values.GateID, 0, s.Len())
	for _, id := range values.AllGates() {
		if s.Contains(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the number of selected gates.
func (s Selection) Len() int {
	n := 0
	for m := s.mask; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether no gate is selected.
func (s Selection) IsEmpty() bool {
	return s.mask == 0
}

func (s Selection) String() string {
	names := make([]string, 0, s.Len())
	for _, id := range s.IDs() {
		names = append(names, id.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

func bit(id values.GateID) uint8 {
	return 1 << uint(id)
}
