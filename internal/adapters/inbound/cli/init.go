package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/detector"
	"github.com/qwickapps/tsfix/internal/domain"
)

const configFileName = ".tsfix.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .tsfix.yaml configuration file",
		Long:  "Create a .tsfix.yaml with the default rules and include patterns, using the detected source root.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			sourceRoot := domain.DefaultConfig().SourceRoot
			if info, err := detector.New().Detect(absPath); err == nil {
				sourceRoot = info.SourceRoot
				if !info.HasPackageJSON && !info.HasTSConfig {
					fmt.Fprintf(cmd.ErrOrStderr(),
						"warning: %s has no package.json or tsconfig.json; is this a TypeScript project?\n", absPath)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(sourceRoot)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .tsfix.yaml")

	return cmd
}

func generateConfig(sourceRoot string) string {
	cfg := domain.DefaultConfig()

	includeSection := "include:\n"
	for _, p := range cfg.Include {
		includeSection += fmt.Sprintf("  - %q\n", p)
	}

	excludeSection := "exclude:\n"
	for _, s := range cfg.Exclude {
		excludeSection += fmt.Sprintf("  - %q\n", s)
	}

	result := fmt.Sprintf("# tsfix configuration\n\nsource_root: %s\n\n%s\n%s\n", sourceRoot, includeSection, excludeSection)

	result += `# Empty means every stable rule. Experimental rules need an explicit opt-in.
# rules:
#   - weaken-any
#   - ts-ignore-to-expect-error
#   - flag-dynamic-require

# experimental:
#   - case-block-scoping

lint:
  command: ["npm", "run", "lint"]
  # dir: web
`

	return result
}
