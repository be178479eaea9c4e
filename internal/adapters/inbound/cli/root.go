package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tsfix",
		Short:         "Rule-based lint fixer for TypeScript/React source trees",
		Long:          "tsfix applies idempotent textual rewrite rules to TypeScript/React files (any → unknown, @ts-ignore → @ts-expect-error, require() flagging) and can target fixes at the exact lines an external lint run complained about.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
