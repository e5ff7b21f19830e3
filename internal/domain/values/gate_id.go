package values

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGateID is matched by every InvalidGateIDError.
var ErrInvalidGateID = errors.New("invalid gate id")

// InvalidGateIDError reports a gate identifier outside the fixed gate set.
type InvalidGateIDError struct {
	Value string
}

func (e *InvalidGateIDError) Error() string {
	return fmt.Sprintf("invalid gate id: %q (valid: %s)", e.Value, strings.Join(GateNames(), ", "))
}

// Is makes errors.Is(err, ErrInvalidGateID) succeed.
func (e *InvalidGateIDError) Is(target error) bool {
	return target == ErrInvalidGateID
}

// GateID identifies one of the fixed logic gates.
// The numeric order is the canonical display order.
type GateID int

const (
	GateAND GateID = iota
	GateOR
	GateXOR
	GateNAND
	GateNOT

	// GateCount is the number of defined gates.
	GateCount = 5
)

var gateNames = [GateCount]string{"AND", "OR", "XOR", "NAND", "NOT"}

// AllGates returns every gate in canonical order.
func AllGates() []GateID {
	ids := make([]GateID, GateCount)
	for i := range ids {
		ids[i] = GateID(i)
	}
	return ids
}

// GateNames returns the names of every gate in canonical order.
func GateNames() []string {
	return append([]string(nil), gateNames[:]...)
}

// ParseGateID parses a gate name. Matching ignores case and surrounding space.
func ParseGateID(s string) (GateID, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range gateNames {
		if n == name {
			return GateID(i), nil
		}
	}
	return 0, &InvalidGateIDError{Value: s}
}

// MustParseGateID parses a gate name or panics (for tests and constants)
func MustParseGateID(s string) GateID {
	id, err := ParseGateID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate returns an InvalidGateIDError if g is not a defined gate.
func (g GateID) Validate() error {
	if g < 0 || g >= GateCount {
		return &InvalidGateIDError{Value: fmt.Sprintf("GateID(%d)", int(g))}
	}
	return nil
}

// String returns the gate name, or GateID(n) for undefined values.
func (g GateID) String() string {
	if g.Validate() != nil {
		return fmt.Sprintf("GateID(%d)", int(g))
	}
	return gateNames[g]
}

// MarshalText implements encoding.TextMarshaler
func (g GateID) MarshalText() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return []byte(gateNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *GateID) UnmarshalText(data []byte) error {
	id, err := ParseGateID(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}
