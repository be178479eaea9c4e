package lint

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/qwickapps/tsfix/internal/domain"
)

// Runner implements domain.LintRunner by spawning the lint command as a
// subprocess and blocking until it exits.
type Runner struct {
	// Timeout is the max execution time. Default: 2 minutes.
	Timeout time.Duration
}

// NewRunner creates a Runner with the default timeout.
func NewRunner() *Runner {
	return &Runner{Timeout: 2 * time.Minute}
}

// Run executes the command in dir and captures stdout and stderr. Linters
// signal findings with a non-zero exit, so that case returns the output
// with the code set rather than an error; only a failure to spawn is an
// error.
func (r *Runner) Run(ctx context.Context, command []string, dir string) (*domain.LintOutput, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("lint command is empty")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &domain.LintOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, fmt.Errorf("running %s: %w", command[0], err)
	}

	return out, nil
}
