// Package config loads logicgates settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/reglet-dev/logicgates/internal/application/errors"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/infrastructure/output"
)

// Configuration keys.
const (
	KeyGates  = "gates"
	KeyFormat = "format"
	KeyColor  = "color"
	KeyBits   = "bits"
)

// EnvPrefix prefixes every environment override, e.g. LOGICGATES_FORMAT.
const EnvPrefix = "LOGICGATES"

// Config is the validated configuration of a command run.
type Config struct {
	Format    string
	Bits      string
	Gates     []string
	Selection truthtable.Selection
	Color     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGates, []string{"NAND"})
	v.SetDefault(KeyFormat, "table")
	v.SetDefault(KeyColor, true)
	v.SetDefault(KeyBits, output.BitsNumeric)
}

// ReadInConfig points v at cfgFile, or at $HOME/.logicgates.yaml when
// cfgFile is empty, and reads it. A missing default file is not an error.
func ReadInConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return apperrors.NewConfigurationError("config file", "failed to find home directory", err)
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".logicgates")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return apperrors.NewConfigurationError("config file", "failed to read config", err)
	}

	slog.Debug("using config file", "file", v.ConfigFileUsed())
	return nil
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Format: v.GetString(KeyFormat),
		Bits:   v.GetString(KeyBits),
		Color:  v.GetBool(KeyColor),
		Gates:  splitList(v.GetStringSlice(KeyGates)),
	}

	sel, err := truthtable.ParseSelection(cfg.Gates)
	if err != nil {
		return nil, apperrors.NewConfigurationError(KeyGates, "invalid gate selection", err)
	}
	cfg.Selection = sel

	if !slices.Contains(output.NewFormatterFactory().SupportedFormats(), cfg.Format) {
		return nil, apperrors.NewConfigurationError(KeyFormat,
			fmt.Sprintf("unknown format %q (supported: %s)", cfg.Format,
				strings.Join(output.NewFormatterFactory().SupportedFormats(), ", ")), nil)
	}

	bits, err := output.ParseBits(cfg.Bits)
	if err != nil {
		return nil, apperrors.NewConfigurationError(KeyBits, "invalid bits style", err)
	}
	cfg.Bits = bits

	return cfg, nil
}

// splitList accepts both list values and comma separated strings,
// e.g. LOGICGATES_GATES="AND,NOT".
func splitList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
