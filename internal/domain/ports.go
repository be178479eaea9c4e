package domain

import "context"

// SourceScanner expands include globs under a root directory into a
// deduplicated, sorted list of relative file paths.
type SourceScanner interface {
	Scan(rootDir string, include, exclude []string) ([]string, error)
}

// ConfigLoader reads the project configuration, falling back to defaults
// when no config file exists.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// LintRunner executes the external lint command and captures its output.
// A non-zero exit is normal (that is how linters report findings) and is
// returned as output, not as an error.
type LintRunner interface {
	Run(ctx context.Context, command []string, dir string) (*LintOutput, error)
}

// LintParser turns captured lint output into per-file error records.
type LintParser interface {
	Parse(output *LintOutput, exclude []string) []FileErrors
}

// GitInfo reports repository facts recorded in run reports.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// ProjectDetector classifies the target tree before a run.
type ProjectDetector interface {
	Detect(projectPath string) (ProjectInfo, error)
}

// ProjectInfo describes what kind of project the target directory is.
type ProjectInfo struct {
	HasPackageJSON bool   `json:"has_package_json"`
	HasTSConfig    bool   `json:"has_tsconfig"`
	UsesReact      bool   `json:"uses_react"`
	SourceRoot     string `json:"source_root"`
}
