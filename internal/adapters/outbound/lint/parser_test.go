package lint_test

import (
	"testing"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/lint"
	"github.com/qwickapps/tsfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TextReport(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `
/project/src/components/Button.tsx
  12:5  error  'useEffect' is defined but never used  @typescript-eslint/no-unused-vars
  30:2  error  Unexpected any. Specify a different type.  @typescript-eslint/no-explicit-any

/project/src/hooks/useAuth.ts
  3:10  error  'token' is assigned a value but never used  @typescript-eslint/no-unused-vars
`,
		ExitCode: 1,
	}

	byFile := lint.NewParser().Parse(output, nil)
	require.Len(t, byFile, 2)

	assert.Equal(t, "/project/src/components/Button.tsx", byFile[0].Path)
	require.Len(t, byFile[0].Errors, 2)
	assert.Equal(t, 12, byFile[0].Errors[0].Line)
	assert.Equal(t, 5, byFile[0].Errors[0].Column)
	assert.Equal(t, "@typescript-eslint/no-unused-vars", byFile[0].Errors[0].RuleID)
	assert.Equal(t, "'useEffect' is defined but never used", byFile[0].Errors[0].Message)

	assert.Equal(t, "/project/src/hooks/useAuth.ts", byFile[1].Path)
	require.Len(t, byFile[1].Errors, 1)
	assert.Equal(t, 3, byFile[1].Errors[0].Line)
}

func TestParse_TextSkipsWarnings(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `
/project/src/App.tsx
  1:1  warning  Unexpected console statement  no-console
  4:2  error  'x' is defined but never used  @typescript-eslint/no-unused-vars
`,
	}

	byFile := lint.NewParser().Parse(output, nil)
	require.Len(t, byFile, 1)
	require.Len(t, byFile[0].Errors, 1)
	assert.Equal(t, 4, byFile[0].Errors[0].Line)
}

func TestParse_TextExcludedFileResetsCursor(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `
/project/src/Button.test.tsx
  2:1  error  'render' is defined but never used  @typescript-eslint/no-unused-vars
/project/src/Button.tsx
  9:3  error  'props' is defined but never used  @typescript-eslint/no-unused-vars
`,
	}

	byFile := lint.NewParser().Parse(output, []string{".test."})
	require.Len(t, byFile, 1)
	assert.Equal(t, "/project/src/Button.tsx", byFile[0].Path)
	require.Len(t, byFile[0].Errors, 1)
	assert.Equal(t, 9, byFile[0].Errors[0].Line)
}

func TestParse_TextErrorsBeforeAnyPathDropped(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: "  5:1  error  'x' is defined but never used  no-unused-vars\n",
	}

	assert.Empty(t, lint.NewParser().Parse(output, nil))
}

func TestParse_TextMessageWithoutRuleID(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `
/project/src/App.tsx
  7:1  error  Parsing error: unexpected token
`,
	}

	byFile := lint.NewParser().Parse(output, nil)
	require.Len(t, byFile, 1)
	require.Len(t, byFile[0].Errors, 1)
	assert.Empty(t, byFile[0].Errors[0].RuleID)
	assert.Equal(t, "Parsing error: unexpected token", byFile[0].Errors[0].Message)
}

func TestParse_JSONReport(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `[
  {
    "filePath": "/project/src/App.tsx",
    "messages": [
      {"ruleId": "@typescript-eslint/no-explicit-any", "severity": 2, "message": "Unexpected any. Specify a different type.", "line": 14, "column": 20},
      {"ruleId": "no-console", "severity": 1, "message": "Unexpected console statement.", "line": 20, "column": 3}
    ]
  },
  {
    "filePath": "/project/src/clean.ts",
    "messages": []
  }
]`,
		ExitCode: 1,
	}

	byFile := lint.NewParser().Parse(output, nil)
	require.Len(t, byFile, 1)
	assert.Equal(t, "/project/src/App.tsx", byFile[0].Path)
	require.Len(t, byFile[0].Errors, 1)
	assert.Equal(t, "@typescript-eslint/no-explicit-any", byFile[0].Errors[0].RuleID)
	assert.Equal(t, 14, byFile[0].Errors[0].Line)
}

func TestParse_JSONExcludedFiles(t *testing.T) {
	output := &domain.LintOutput{
		Stdout: `[
  {
    "filePath": "/project/src/App.test.tsx",
    "messages": [
      {"ruleId": "no-unused-vars", "severity": 2, "message": "'x' is defined but never used", "line": 1, "column": 1}
    ]
  }
]`,
	}

	assert.Empty(t, lint.NewParser().Parse(output, []string{".test."}))
}

func TestParse_StderrFallback(t *testing.T) {
	output := &domain.LintOutput{
		Stderr: `
/project/src/App.tsx
  2:7  error  'x' is defined but never used  @typescript-eslint/no-unused-vars
`,
	}

	byFile := lint.NewParser().Parse(output, nil)
	require.Len(t, byFile, 1)
	assert.Equal(t, "/project/src/App.tsx", byFile[0].Path)
}

func TestParse_EmptyOutput(t *testing.T) {
	assert.Empty(t, lint.NewParser().Parse(&domain.LintOutput{}, nil))
	assert.Empty(t, lint.NewParser().Parse(nil, nil))
}
