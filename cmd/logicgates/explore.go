package main

import (
	"github.com/spf13/cobra"
)

func newExploreCmd(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Toggle gates interactively and watch the truth table change",
		Long: `explore starts from the configured gates (NAND by default), prints the
truth table and asks which gate to toggle next. Choose "Done" or press
Ctrl-C to finish.`,
		Args: cobra.NoArgs,
		RunE: withContainer(env, func(ctx *CommandContext, cmd *cobra.Command, _ []string) error {
			uc, err := ctx.Container.ExploreUseCase(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			session := ctx.Container.NewSession()
			ctx.Logger.Debug("starting explorer", "session", session.ID().String())
			return uc.Execute(ctx.Context, session)
		}),
	}
}
