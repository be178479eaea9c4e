package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Directories never worth descending into, whatever the globs say.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

// SourceScanner implements domain.SourceScanner by walking the filesystem
// and matching relative paths against doublestar globs.
type SourceScanner struct{}

func New() *SourceScanner {
	return &SourceScanner{}
}

// Scan expands the include globs under rootDir, drops paths containing any
// exclude substring, and returns the deduplicated union sorted. A malformed
// pattern or missing root aborts before any file is visited.
func (s *SourceScanner) Scan(rootDir string, include, exclude []string) ([]string, error) {
	for _, p := range include {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("malformed glob pattern %q", p)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("source root %s does not exist or is not a directory", absRoot)
	}

	seen := make(map[string]bool)
	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if Excluded(rel, exclude) {
			return nil
		}

		for _, p := range include {
			ok, err := doublestar.Match(p, rel)
			if err != nil {
				return fmt.Errorf("matching %q against %q: %w", rel, p, err)
			}
			if ok {
				if !seen[rel] {
					seen[rel] = true
					files = append(files, rel)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Excluded reports whether the path contains any of the exclusion
// substrings (e.g. ".test.", "__tests__").
func Excluded(path string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(path, s) {
			return true
		}
	}
	return false
}
