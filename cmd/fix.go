package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/linearcli/internal/linearcli"
	"github.com/dimasma0305/linearcli/internal/log"
)

var fixSelectTeam bool

var fixCmd = &cobra.Command{
	Use:     "fix [flags] <issue title words...>",
	Aliases: []string{"checkout"},
	Short:   "Create an issue and check out its branch",
	Long: `Create a Linear issue from the given title, assigned to you, in the first
workflow state whose name contains "Progress", then run

  git checkout -b <branch name Linear generated for the issue>

The issue is created in your default team unless --select-team is given.
Flags are only read before the first title word, so titles may contain words
starting with "-". Use "--" to end the flags explicitly.`,
	Example: `  # Create an issue in the default team
  000 fix add retry logic

  # Same, using the checkout alias
  000 checkout add retry logic

  # Choose the team for this issue only
  000 fix -t flaky upload test

  # Title starting with a dash
  000 fix -- -1 off by one`,
	Args: cobra.ArbitraryArgs,
	// Title words like "-1" or "--force" must reach the title untouched,
	// so flags are split off by splitTitleArgs instead of by cobra.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := splitTitleArgs(cmd, args)
		if err != nil {
			return err
		}
		if help, _ := cmd.Flags().GetBool("help"); help {
			return cmd.Help()
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
		}
		return runApp(cmd, func(ctx context.Context, app *linearcli.App) error {
			_, err := app.Fix(ctx, words, fixSelectTeam)
			return err
		})
	},
}

// splitTitleArgs parses the known flags in front of the title and returns the
// remaining words. Parsing stops at "--", at the first word that does not
// start with "-", or at the first dash word that names no flag.
func splitTitleArgs(cmd *cobra.Command, args []string) ([]string, error) {
	// merges the root's persistent flags into cmd.Flags()
	_ = cmd.InheritedFlags()
	flags := cmd.Flags()

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !isKnownFlag(cmd, arg) {
			break
		}
	}
	if err := flags.Parse(args[:i]); err != nil {
		return nil, err
	}
	return args[i:], nil
}

func isKnownFlag(cmd *cobra.Command, arg string) bool {
	flags := cmd.Flags()
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return flags.Lookup(name) != nil
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return flags.ShorthandLookup(arg[1:]) != nil
	default:
		return false
	}
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().BoolVarP(&fixSelectTeam, "select-team", "t", false, "Pick the team for this issue instead of using the default")
}
