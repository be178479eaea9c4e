package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/tui"
	"github.com/qwickapps/tsfix/internal/application"
)

func newFixCmd() *cobra.Command {
	var (
		dryRun       bool
		jsonOutput   bool
		quiet        bool
		ruleNames    []string
		experimental []string
	)

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Apply the rewrite rules to a project's source tree",
		Long:  "Scans the configured source root for matching TypeScript/React files, applies every enabled rule to each file, and writes back only the files whose content changed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := newRewriteService()
			svc.Stderr = cmd.ErrOrStderr()

			report, err := svc.Rewrite(path, application.RewriteOptions{
				DryRun:       dryRun,
				Rules:        ruleNames,
				Experimental: experimental,
			})
			if err != nil {
				return err
			}

			if report.Dirty && !dryRun {
				fmt.Fprintln(cmd.ErrOrStderr(), tui.DirtyTreeWarning())
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Total files fixed: %d\n", len(report.Changed))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report, dryRun))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the run report as JSON")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print only the total count")
	cmd.Flags().StringSliceVar(&ruleNames, "rule", nil, "run only the named rules (repeatable)")
	cmd.Flags().StringSliceVar(&experimental, "experimental", nil, "enable the named experimental rules (repeatable)")
	return cmd
}
