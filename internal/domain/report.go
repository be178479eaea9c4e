package domain

import "time"

// RunReport summarizes one rewriter invocation. It is produced once,
// rendered, and optionally condensed into a RunEntry for history.
type RunReport struct {
	Root         string       `json:"root"`
	CommitHash   string       `json:"commit_hash,omitempty"`
	Dirty        bool         `json:"dirty,omitempty"`
	TotalScanned int          `json:"total_scanned"`
	Changed      []FileChange `json:"changed"`
	Skipped      []FileError  `json:"skipped,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}

// FileChange records a rewritten file and the rules that altered it,
// path relative to the scanned root.
type FileChange struct {
	Path  string   `json:"path"`
	Rules []string `json:"rules"`
}

// FileError records a file that could not be read or written back.
// The failure is isolated: the run continues past it.
type FileError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// LintError is one diagnostic scraped from lint output. Transient: it
// only lives long enough to drive a per-line fix.
type LintError struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	RuleID  string `json:"rule_id,omitempty"`
	Message string `json:"message"`
}

// FileErrors groups the lint errors reported for a single file, in the
// order the lint tool emitted them.
type FileErrors struct {
	Path   string
	Errors []LintError
}

// LintOutput is the captured result of running the external lint command.
type LintOutput struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// LintFixReport summarizes one message-driven fix invocation.
type LintFixReport struct {
	ErrorsFound int          `json:"errors_found"`
	Changed     []FileChange `json:"changed"`
	Skipped     []FileError  `json:"skipped,omitempty"`
}

// RunEntry is the persisted summary of a completed run.
type RunEntry struct {
	Timestamp    string   `json:"timestamp"`
	CommitHash   string   `json:"commit_hash,omitempty"`
	FilesChanged int      `json:"files_changed"`
	Rules        []string `json:"rules,omitempty"`
}
