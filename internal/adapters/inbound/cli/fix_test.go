package cli_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/qwickapps/tsfix/internal/adapters/inbound/cli"
	"github.com/qwickapps/tsfix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T, rel, content string) (string, string) {
	t.Helper()
	project := t.TempDir()
	path := filepath.Join(project, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return project, path
}

func TestFixCmd_RewritesFiles(t *testing.T) {
	project, path := newProject(t, "src/components/App.tsx", "const x: any = load();\n")

	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fix", project})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const x: unknown = load();\n", string(data))
	assert.Contains(t, out.String(), "Total files fixed: 1")
}

func TestFixCmd_DryRun(t *testing.T) {
	content := "const x: any = load();\n"
	project, path := newProject(t, "src/components/App.tsx", content)

	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fix", project, "--dry-run"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
	assert.Contains(t, out.String(), "Would fix:")
}

func TestFixCmd_JSONOutput(t *testing.T) {
	project, _ := newProject(t, "src/components/App.tsx", "const x: any = load();\n")

	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fix", project, "--json"})
	require.NoError(t, root.Execute())

	var report domain.RunReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Changed, 1)
	assert.Equal(t, "components/App.tsx", report.Changed[0].Path)
}

func TestFixCmd_UnknownRuleFails(t *testing.T) {
	project, _ := newProject(t, "src/components/App.tsx", "const x = 1;\n")

	root := cli.NewRootCmdForTest()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"fix", project, "--rule", "no-such-rule"})
	assert.Error(t, root.Execute())
}

func TestRulesCmd_ListsRules(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"rules"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "weaken-any")
	assert.Contains(t, out.String(), "case-block-scoping")
	assert.Contains(t, out.String(), "experimental")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "tsfix")
}
