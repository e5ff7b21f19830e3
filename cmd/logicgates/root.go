package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/logicgates/internal/application/ports"
	"github.com/reglet-dev/logicgates/internal/infrastructure/config"
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd(viper.GetViper(), nil).ExecuteContext(ctx)
}

// newRootCmd builds the command tree around v. A nil prompter uses the
// terminal.
func newRootCmd(v *viper.Viper, prompter ports.GatePrompter) *cobra.Command {
	var cfgFile string
	opts := DefaultCommonOptions()

	rootCmd := &cobra.Command{
		Use:   "logicgates",
		Short: "Truth table explorer for basic logic gates",
		Long: `logicgates prints truth tables for the AND, OR, XOR, NAND and NOT gates
over every combination of two inputs A and B. Choose which gates appear as
columns with --gates, or toggle them interactively with 'logicgates explore'.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := opts.ValidateFlags(); err != nil {
				return err
			}
			setupLogging(opts)
			return config.ReadInConfig(v, cfgFile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.SetDefaults(v)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.logicgates.yaml)")
	opts.RegisterFlags(rootCmd.PersistentFlags())
	opts.BindFlags(v, rootCmd.PersistentFlags())

	env := &commandEnv{viper: v, prompter: prompter}
	rootCmd.AddCommand(
		newTableCmd(env),
		newExploreCmd(env),
		newGatesCmd(env),
		newVersionCmd(),
	)

	return rootCmd
}

func setupLogging(opts *CommonOptions) {
	level := slog.LevelInfo
	switch {
	case opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelError
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
