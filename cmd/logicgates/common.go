package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/reglet-dev/logicgates/internal/infrastructure/config"
)

// CommonOptions contains flags shared across all commands.
type CommonOptions struct {
	// Output
	Format string
	Bits   string

	// Selection
	Gates []string

	// Flags (bools grouped for alignment)
	Color   bool
	Verbose bool
	Quiet   bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() *CommonOptions {
	return &CommonOptions{
		Format: "table",
		Bits:   "numeric",
		Gates:  []string{"NAND"},
		Color:  true,
	}
}

// RegisterFlags adds common flags to a flag set.
func (opts *CommonOptions) RegisterFlags(flags *pflag.FlagSet) {
	// Selection
	flags.StringSliceVarP(&opts.Gates, config.KeyGates, "g", opts.Gates,
		"Gates to show: AND, OR, XOR, NAND, NOT (comma separated)")

	// Output
	flags.StringVarP(&opts.Format, config.KeyFormat, "f", opts.Format,
		"Output format: table, json, yaml, markdown")
	flags.StringVar(&opts.Bits, config.KeyBits, opts.Bits,
		"Cell style for table and markdown: numeric (0/1) or boolean (T/F)")
	flags.BoolVar(&opts.Color, config.KeyColor, opts.Color,
		"Colour table headers")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Verbose output")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// BindFlags lets flags override config file and environment values in v.
func (opts *CommonOptions) BindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for _, key := range []string{config.KeyGates, config.KeyFormat, config.KeyBits, config.KeyColor} {
		//nolint:errcheck // flag registered in RegisterFlags
		v.BindPFlag(key, flags.Lookup(key))
	}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if opts.Verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	return nil
}
