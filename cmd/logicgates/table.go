package main

import (
	"github.com/spf13/cobra"

	"github.com/reglet-dev/logicgates/internal/application/dto"
)

func newTableCmd(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the truth table for the selected gates",
		Example: `  logicgates table
  logicgates table --gates AND,OR,XOR
  logicgates table -g NOT --format json
  logicgates table --gates "" --format markdown`,
		Args: cobra.NoArgs,
		RunE: withContainer(env, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			cfg := ctx.Container.Config()
			return ctx.Container.RenderTableUseCase().Execute(ctx.Context, dto.TableRequest{
				Format: cfg.Format,
				Bits:   cfg.Bits,
				Gates:  cfg.Gates,
				Color:  cfg.Color,
			}, cmd.OutOrStdout())
		}),
	}
}
