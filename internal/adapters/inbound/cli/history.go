package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/history"
	"github.com/qwickapps/tsfix/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show past fix runs for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			entries, err := history.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output run history as JSON")
	return cmd
}
