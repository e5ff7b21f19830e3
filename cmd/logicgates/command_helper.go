package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/logicgates/internal/application/ports"
	"github.com/reglet-dev/logicgates/internal/infrastructure/config"
	"github.com/reglet-dev/logicgates/internal/infrastructure/container"
)

// commandEnv is shared by every subcommand of one root command.
type commandEnv struct {
	viper    *viper.Viper
	prompter ports.GatePrompter
}

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with config loading and container
// initialization.
func withContainer(env *commandEnv, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		cfg, err := config.Load(env.viper)
		if err != nil {
			return err
		}

		c := container.New(container.Options{
			Config:   cfg,
			Logger:   logger,
			Prompter: env.prompter,
		})

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
		}

		if err := handler(ctx, cmd, args); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	}
}
