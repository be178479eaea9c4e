package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/tui"
	"github.com/qwickapps/tsfix/internal/application"
)

func newLintCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
		command    []string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Run the project's lint command and fix the lines it reports",
		Long:  "Executes the configured lint command, parses its error report, and applies a targeted fix on each line the linter named (unused bindings, explicit any).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := newLintFixService()
			svc.Stderr = cmd.ErrOrStderr()

			report, err := svc.Run(cmd.Context(), path, application.LintFixOptions{
				Command: command,
				Dir:     dir,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLintFixReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the fix report as JSON")
	cmd.Flags().StringSliceVar(&command, "command", nil, "lint command to run instead of the configured one")
	cmd.Flags().StringVar(&dir, "dir", "", "working directory for the lint command")
	return cmd
}
