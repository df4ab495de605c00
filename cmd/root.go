/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/

// Package cmd provides command-line interface commands for 000
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/linearcli/internal/log"
)

// UsageMessage is printed for an unknown or missing command.
const UsageMessage = "Unknown command. Available commands are `login`, `fix` and `update-team`."

var strictMode bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "000",
	Short: "Create a Linear issue and check out its branch in one command",
	Long: `000 - Linear issues straight from your terminal

Stores your Linear API key in the OS credential store, remembers a default
team and turns a one-line title into an assigned, in-progress issue with a
matching git branch checked out.`,
	Example: `  # Store your API key and pick a default team
  000 login

  # Create an issue and check out its branch
  000 fix add retry logic

  # Pick the team for just this issue
  000 fix --select-team flaky upload test

  # Change the default team
  000 update-team`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	Run: func(_ *cobra.Command, _ []string) {
		log.Info(UsageMessage)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(os.Args[1:]); err != nil && strictMode {
		os.Exit(1)
	}
}

func execute(args []string) error {
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		log.Error("%v", err)
		if strings.HasPrefix(err.Error(), "unknown command") {
			log.Info(UsageMessage)
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "Exit with status 1 when a command fails")
}
