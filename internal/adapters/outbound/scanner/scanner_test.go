package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qwickapps/tsfix/internal/adapters/outbound/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0644))
}

func TestScan_MatchesGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/Button.tsx")
	writeFile(t, root, "components/forms/Input.tsx")
	writeFile(t, root, "hooks/useAuth.ts")
	writeFile(t, root, "styles/main.css")

	files, err := scanner.New().Scan(root, []string{"components/**/*.tsx", "hooks/**/*.ts"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"components/Button.tsx",
		"components/forms/Input.tsx",
		"hooks/useAuth.ts",
	}, files)
}

func TestScan_ExcludeSubstrings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/Button.tsx")
	writeFile(t, root, "components/Button.test.tsx")
	writeFile(t, root, "components/Button.stories.tsx")
	writeFile(t, root, "components/__tests__/helpers.tsx")

	files, err := scanner.New().Scan(root, []string{"components/**/*.tsx"}, []string{".test.", ".stories.", "__tests__"})
	require.NoError(t, err)

	assert.Equal(t, []string{"components/Button.tsx"}, files)
}

func TestScan_SkipsNodeModules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/App.tsx")
	writeFile(t, root, "node_modules/react/index.tsx")

	files, err := scanner.New().Scan(root, []string{"**/*.tsx"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"components/App.tsx"}, files)
}

func TestScan_DeduplicatesOverlappingGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/Button.tsx")

	files, err := scanner.New().Scan(root, []string{"components/**/*.tsx", "**/*.tsx"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"components/Button.tsx"}, files)
}

func TestScan_MalformedPattern(t *testing.T) {
	root := t.TempDir()
	_, err := scanner.New().Scan(root, []string{"components/[*.tsx"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "nope"), []string{"**/*.ts"}, nil)
	assert.Error(t, err)
}

func TestExcluded(t *testing.T) {
	assert.True(t, scanner.Excluded("components/Button.test.tsx", []string{".test."}))
	assert.True(t, scanner.Excluded("components/__tests__/x.tsx", []string{"__tests__"}))
	assert.False(t, scanner.Excluded("components/Button.tsx", []string{".test.", "__tests__"}))
	assert.False(t, scanner.Excluded("components/Button.tsx", nil))
}
