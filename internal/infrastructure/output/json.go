package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// JSONFormatter formats truth tables as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the truth table as JSON.
func (f *JSONFormatter) Format(t *truthtable.Table) error {
	return f.encode(t)
}

// FormatGates writes the gate catalogue as JSON.
func (f *JSONFormatter) FormatGates(rules []gates.Rule) error {
	return f.encode(rules)
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.writer)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
