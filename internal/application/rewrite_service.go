package application

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/qwickapps/tsfix/internal/domain"
)

// RewriteService runs the rule-based rewriter: scan the source tree,
// apply every rule in order to each candidate file, write back the files
// whose content changed, and report what happened.
type RewriteService struct {
	scanner  domain.SourceScanner
	loader   domain.ConfigLoader
	detector domain.ProjectDetector
	git      domain.GitInfo
	history  domain.RunHistory

	// Stderr receives per-file diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

func NewRewriteService(
	sc domain.SourceScanner,
	loader domain.ConfigLoader,
	det domain.ProjectDetector,
	git domain.GitInfo,
	hist domain.RunHistory,
) *RewriteService {
	return &RewriteService{
		scanner:  sc,
		loader:   loader,
		detector: det,
		git:      git,
		history:  hist,
		Stderr:   os.Stderr,
	}
}

// RewriteOptions adjusts a single run.
type RewriteOptions struct {
	// DryRun reports what would change without writing anything.
	DryRun bool

	// Rules restricts the run to the named rules (overrides config).
	Rules []string

	// Experimental enables rules that are off by default, in addition
	// to any the config opts into.
	Experimental []string
}

// Rewrite applies the configured rules to every file matched under
// projectPath's source root. Configuration problems abort before any
// file is touched; per-file failures are logged and skipped.
func (s *RewriteService) Rewrite(projectPath string, opts RewriteOptions) (*domain.RunReport, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.loader.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	enabled := cfg.Rules
	if len(opts.Rules) > 0 {
		enabled = opts.Rules
	}
	experimental := append(append([]string{}, cfg.Experimental...), opts.Experimental...)

	rules, err := domain.ResolveRules(enabled, experimental)
	if err != nil {
		return nil, err
	}

	if s.detector != nil {
		info, err := s.detector.Detect(absPath)
		if err == nil && !info.HasPackageJSON && !info.HasTSConfig {
			fmt.Fprintf(s.Stderr, "warning: %s has no package.json or tsconfig.json; is this a TypeScript project?\n", absPath)
		}
	}

	srcRoot := filepath.Join(absPath, cfg.SourceRoot)
	files, err := s.scanner.Scan(srcRoot, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	report := &domain.RunReport{
		Root:         srcRoot,
		TotalScanned: len(files),
		Timestamp:    time.Now().UTC(),
	}
	s.recordGitState(absPath, report)

	for _, rel := range files {
		s.rewriteFile(srcRoot, rel, rules, opts.DryRun, report)
	}

	if !opts.DryRun && len(report.Changed) > 0 && s.history != nil {
		entry := domain.RunEntry{
			Timestamp:    report.Timestamp.Format(time.RFC3339),
			CommitHash:   report.CommitHash,
			FilesChanged: len(report.Changed),
			Rules:        rulesApplied(report),
		}
		if err := s.history.Save(absPath, entry); err != nil {
			fmt.Fprintf(s.Stderr, "warning: saving run history: %v\n", err)
		}
	}

	return report, nil
}

// rewriteFile runs one file through the rule pipeline. Failures are
// isolated: they are recorded, logged, and the run moves on.
func (s *RewriteService) rewriteFile(srcRoot, rel string, rules []domain.Rule, dryRun bool, report *domain.RunReport) {
	abs := filepath.Join(srcRoot, filepath.FromSlash(rel))

	data, err := os.ReadFile(abs)
	if err != nil {
		s.skip(report, rel, err)
		return
	}

	original := string(data)
	current := original
	var applied []string

	for _, r := range rules {
		next := r.Apply(current)
		if next != current {
			applied = append(applied, r.Name())
			current = next
		}
	}

	if current == original {
		return
	}

	if !dryRun {
		if err := os.WriteFile(abs, []byte(current), fileMode(abs)); err != nil {
			s.skip(report, rel, err)
			return
		}
	}

	report.Changed = append(report.Changed, domain.FileChange{Path: rel, Rules: applied})
}

func (s *RewriteService) skip(report *domain.RunReport, rel string, err error) {
	report.Skipped = append(report.Skipped, domain.FileError{Path: rel, Reason: err.Error()})
	fmt.Fprintf(s.Stderr, "error processing %s: %v\n", rel, err)
}

func (s *RewriteService) recordGitState(projectPath string, report *domain.RunReport) {
	if s.git == nil || !s.git.IsGitRepo(projectPath) {
		return
	}
	if hash, err := s.git.CommitHash(projectPath); err == nil {
		report.CommitHash = hash
	}
	if dirty, err := s.git.IsDirty(projectPath); err == nil {
		report.Dirty = dirty
	}
}

// fileMode preserves the original permissions on overwrite.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}

// rulesApplied collects the distinct rule names that changed any file,
// in rule-table order of first appearance.
func rulesApplied(report *domain.RunReport) []string {
	seen := make(map[string]bool)
	var names []string
	for _, ch := range report.Changed {
		for _, r := range ch.Rules {
			if !seen[r] {
				seen[r] = true
				names = append(names, r)
			}
		}
	}
	return names
}

// DescribeRules returns the rule set a run with the given options would
// execute, for the rules listing and MCP surface.
func DescribeRules(includeExperimental bool) []domain.Rule {
	all := domain.Builtins()
	if includeExperimental {
		return all
	}
	var out []domain.Rule
	for _, r := range all {
		if !r.Experimental {
			out = append(out, r)
		}
	}
	return out
}
