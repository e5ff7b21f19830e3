package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/logicgates/internal/application/dto"
)

func newGatesCmd(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the available gates",
		Args:  cobra.NoArgs,
		RunE: withContainer(env, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			cfg := ctx.Container.Config()
			return ctx.Container.RenderTableUseCase().ListGates(ctx.Context, dto.TableRequest{
				Format: cfg.Format,
				Bits:   cfg.Bits,
				Color:  cfg.Color,
			}, cmd.OutOrStdout())
		}),
	}
}
