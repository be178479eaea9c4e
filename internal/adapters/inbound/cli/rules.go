package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/tui"
	"github.com/qwickapps/tsfix/internal/application"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the available rewrite rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := application.DescribeRules(true)

			if jsonOutput {
				type ruleInfo struct {
					Name         string `json:"name"`
					Description  string `json:"description"`
					Experimental bool   `json:"experimental"`
				}
				out := make([]ruleInfo, 0, len(rules))
				for _, r := range rules {
					out = append(out, ruleInfo{
						Name:         r.Name(),
						Description:  r.Description,
						Experimental: r.Experimental,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output the rule list as JSON")
	return cmd
}
