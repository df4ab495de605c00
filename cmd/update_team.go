package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/linearcli/internal/linearcli"
)

var updateTeamCmd = &cobra.Command{
	Use:     "update-team",
	Short:   "Change the default team",
	Long:    `List your Linear teams and overwrite the stored default team with the one you pick.`,
	Example: `  000 update-team`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp(cmd, func(ctx context.Context, app *linearcli.App) error {
			return app.UpdateTeam(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(updateTeamCmd)
}
