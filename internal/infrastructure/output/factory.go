// Package output renders truth tables and the gate catalogue.
package output

import (
	"fmt"
	"io"

	"github.com/reglet-dev/logicgates/internal/application/ports"
)

// Cell rendering styles for textual formats.
const (
	BitsNumeric = "numeric"
	BitsBoolean = "boolean"
)

// FormatterFactory implements ports.OutputFormatterFactory.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns a formatter for the given format name.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.OutputFormatter, error) {
	bits, err := ParseBits(options.Bits)
	if err != nil {
		return nil, err
	}

	switch format {
	case "table":
		return NewTableFormatter(writer, bits, options.Color), nil
	case "json":
		return NewJSONFormatter(writer, true), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	case "markdown":
		return NewMarkdownFormatter(writer, bits), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml", "markdown"}
}

// ParseBits validates a cell rendering style. Empty means numeric.
func ParseBits(s string) (string, error) {
	switch s {
	case "", BitsNumeric:
		return BitsNumeric, nil
	case BitsBoolean:
		return BitsBoolean, nil
	default:
		return "", fmt.Errorf("unknown bits style: %s (supported: %s, %s)", s, BitsNumeric, BitsBoolean)
	}
}

// bitString renders one truth value.
func bitString(v bool, bits string) string {
	if bits == BitsBoolean {
		if v {
			return "T"
		}
		return "F"
	}
	if v {
		return "1"
	}
	return "0"
}
