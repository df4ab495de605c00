package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/linearcli/internal/linearcli"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store your Linear API key and pick a default team",
	Long: `Prompt for a Linear personal API key, store it in the OS credential store,
then list your teams and store the one you pick as the default team.

Create a key under Linear > Settings > Security & access > Personal API keys.`,
	Example: `  000 login`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp(cmd, func(ctx context.Context, app *linearcli.App) error {
			return app.Login(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
