package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qwickapps/tsfix/internal/domain"
)

// LintFixService drives the message-driven variant: run the external lint
// command, parse its report into per-file error records, and apply a
// local fix on each line the linter named.
type LintFixService struct {
	loader domain.ConfigLoader
	runner domain.LintRunner
	parser domain.LintParser

	// Stderr receives per-file diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

func NewLintFixService(loader domain.ConfigLoader, runner domain.LintRunner, parser domain.LintParser) *LintFixService {
	return &LintFixService{
		loader: loader,
		runner: runner,
		parser: parser,
		Stderr: os.Stderr,
	}
}

// LintFixOptions adjusts a single run.
type LintFixOptions struct {
	// Command overrides the configured lint argv.
	Command []string

	// Dir overrides the working directory for the lint command.
	Dir string

	// DryRun reports what would change without writing anything.
	DryRun bool
}

// Run executes the lint command for projectPath and fixes the lines it
// complained about. A lint command that produces nothing parseable is
// treated as "no errors found", never as a failure.
func (s *LintFixService) Run(ctx context.Context, projectPath string, opts LintFixOptions) (*domain.LintFixReport, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.loader.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	command := cfg.Lint.Command
	if len(opts.Command) > 0 {
		command = opts.Command
	}
	dir := absPath
	if cfg.Lint.Dir != "" {
		dir = filepath.Join(absPath, cfg.Lint.Dir)
	}
	if opts.Dir != "" {
		dir = opts.Dir
	}

	output, err := s.runner.Run(ctx, command, dir)
	if err != nil {
		// The command could not even be spawned. Whatever partial output
		// exists has already been lost, so report a clean zero-error run.
		fmt.Fprintf(s.Stderr, "warning: lint command failed: %v\n", err)
		return &domain.LintFixReport{}, nil
	}

	byFile := s.parser.Parse(output, cfg.Exclude)

	report := &domain.LintFixReport{}
	for _, fe := range byFile {
		report.ErrorsFound += len(fe.Errors)
	}
	if report.ErrorsFound == 0 {
		return report, nil
	}

	for _, fe := range byFile {
		s.fixFile(fe, opts.DryRun, report)
	}

	return report, nil
}

// fixFile applies each record's fix to the exact line it names. Records
// whose line numbers fall outside the file are ignored.
func (s *LintFixService) fixFile(fe domain.FileErrors, dryRun bool, report *domain.LintFixReport) {
	data, err := os.ReadFile(fe.Path)
	if err != nil {
		report.Skipped = append(report.Skipped, domain.FileError{Path: fe.Path, Reason: err.Error()})
		fmt.Fprintf(s.Stderr, "error processing %s: %v\n", fe.Path, err)
		return
	}

	lines := strings.Split(string(data), "\n")
	var applied []string

	for _, rec := range fe.Errors {
		idx := rec.Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		fixed, changed := domain.ApplyMessageFix(lines[idx], rec)
		if changed {
			lines[idx] = fixed
			if rec.RuleID != "" {
				applied = appendUnique(applied, rec.RuleID)
			}
		}
	}

	result := strings.Join(lines, "\n")
	if result == string(data) {
		return
	}

	if !dryRun {
		if err := os.WriteFile(fe.Path, []byte(result), fileMode(fe.Path)); err != nil {
			report.Skipped = append(report.Skipped, domain.FileError{Path: fe.Path, Reason: err.Error()})
			fmt.Fprintf(s.Stderr, "error writing %s: %v\n", fe.Path, err)
			return
		}
	}

	report.Changed = append(report.Changed, domain.FileChange{Path: fe.Path, Rules: applied})
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
