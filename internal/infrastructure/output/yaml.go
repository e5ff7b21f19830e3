package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
)

// YAMLFormatter formats truth tables as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the truth table as YAML.
func (f *YAMLFormatter) Format(t *truthtable.Table) error {
	return f.encode(t)
}

// FormatGates writes the gate catalogue as YAML.
func (f *YAMLFormatter) FormatGates(rules []gates.Rule) error {
	return f.encode(rules)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
