package application_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/config"
	"github.com/qwickapps/tsfix/internal/application"
	"github.com/qwickapps/tsfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	output  *domain.LintOutput
	err     error
	command []string
	dir     string
}

func (f *fakeRunner) Run(_ context.Context, command []string, dir string) (*domain.LintOutput, error) {
	f.command = command
	f.dir = dir
	return f.output, f.err
}

type fakeParser struct {
	result []domain.FileErrors
}

func (f *fakeParser) Parse(_ *domain.LintOutput, _ []string) []domain.FileErrors {
	return f.result
}

func newTestLintFixService(runner *fakeRunner, parser *fakeParser) *application.LintFixService {
	svc := application.NewLintFixService(config.New(), runner, parser)
	svc.Stderr = io.Discard
	return svc
}

func TestLintFix_FixesReportedLines(t *testing.T) {
	project := t.TempDir()
	path := writeSource(t, project, "src/App.tsx",
		"import { useState, useEffect } from 'react';\nconst v: any = 1;\n")

	runner := &fakeRunner{output: &domain.LintOutput{ExitCode: 1}}
	parser := &fakeParser{result: []domain.FileErrors{{
		Path: path,
		Errors: []domain.LintError{
			{File: path, Line: 1, RuleID: "@typescript-eslint/no-unused-vars", Message: "'useEffect' is defined but never used"},
			{File: path, Line: 2, RuleID: "@typescript-eslint/no-explicit-any", Message: "Unexpected any. Specify a different type."},
		},
	}}}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.ErrorsFound)
	require.Len(t, report.Changed, 1)
	assert.Equal(t, []string{"@typescript-eslint/no-unused-vars", "@typescript-eslint/no-explicit-any"}, report.Changed[0].Rules)

	assert.Equal(t, "import { useState } from 'react';\nconst v: unknown = 1;\n", readSource(t, path))
}

func TestLintFix_DryRunLeavesFilesAlone(t *testing.T) {
	project := t.TempDir()
	content := "const v: any = 1;\n"
	path := writeSource(t, project, "src/App.tsx", content)

	runner := &fakeRunner{output: &domain.LintOutput{ExitCode: 1}}
	parser := &fakeParser{result: []domain.FileErrors{{
		Path:   path,
		Errors: []domain.LintError{{File: path, Line: 1, RuleID: "@typescript-eslint/no-explicit-any"}},
	}}}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{DryRun: true})
	require.NoError(t, err)

	require.Len(t, report.Changed, 1)
	assert.Equal(t, content, readSource(t, path), "dry run must not write")
}

func TestLintFix_ZeroErrors(t *testing.T) {
	runner := &fakeRunner{output: &domain.LintOutput{}}
	parser := &fakeParser{}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), t.TempDir(), application.LintFixOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.ErrorsFound)
	assert.Empty(t, report.Changed)
}

func TestLintFix_SpawnFailureIsNotFatal(t *testing.T) {
	runner := &fakeRunner{err: errors.New("executable not found")}
	parser := &fakeParser{}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), t.TempDir(), application.LintFixOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.ErrorsFound)
}

func TestLintFix_MissingFileSkipped(t *testing.T) {
	project := t.TempDir()
	missing := filepath.Join(project, "src", "Gone.tsx")

	runner := &fakeRunner{output: &domain.LintOutput{ExitCode: 1}}
	parser := &fakeParser{result: []domain.FileErrors{{
		Path:   missing,
		Errors: []domain.LintError{{File: missing, Line: 1, Message: "'x' is defined but never used"}},
	}}}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.ErrorsFound)
	assert.Empty(t, report.Changed)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, missing, report.Skipped[0].Path)
}

func TestLintFix_OutOfRangeLineIgnored(t *testing.T) {
	project := t.TempDir()
	content := "const x = 1;\n"
	path := writeSource(t, project, "src/App.tsx", content)

	runner := &fakeRunner{output: &domain.LintOutput{ExitCode: 1}}
	parser := &fakeParser{result: []domain.FileErrors{{
		Path:   path,
		Errors: []domain.LintError{{File: path, Line: 99, Message: "'x' is defined but never used"}},
	}}}

	report, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{})
	require.NoError(t, err)

	assert.Empty(t, report.Changed)
	assert.Equal(t, content, readSource(t, path))
}

func TestLintFix_CommandAndDirOverrides(t *testing.T) {
	project := t.TempDir()
	customDir := t.TempDir()

	runner := &fakeRunner{output: &domain.LintOutput{}}
	parser := &fakeParser{}

	_, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{
		Command: []string{"yarn", "lint"},
		Dir:     customDir,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"yarn", "lint"}, runner.command)
	assert.Equal(t, customDir, runner.dir)
}

func TestLintFix_DefaultCommandFromConfig(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, ".tsfix.yaml"),
		[]byte("lint:\n  command: [\"pnpm\", \"lint\"]\n"), 0644))

	runner := &fakeRunner{output: &domain.LintOutput{}}
	parser := &fakeParser{}

	_, err := newTestLintFixService(runner, parser).Run(context.Background(), project, application.LintFixOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"pnpm", "lint"}, runner.command)
}
