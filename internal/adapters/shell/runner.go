// Package shell provides a captured-output subprocess runner shared by
// the adapters that wrap external packaging tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes a command and captures its output instead of streaming
// it: every caller here wants to parse stdout, and stderr belongs in the
// error report when the tool fails.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes name with args in dir (empty dir means the process cwd)
// and returns stdout split into lines. A non-zero exit is reported as
// domain.ErrExternalTool with the exit code and captured stderr attached.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // commands are fixed tool names
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running " + name + " " + strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		captured := strings.TrimSpace(stderr.String())
		decorated := zerr.With(domain.ErrExternalTool, "tool", name)
		decorated = zerr.With(decorated, "exit_code", exitCode)
		decorated = zerr.With(decorated, "stderr", captured)
		return nil, &toolError{err: decorated, exitCode: exitCode, stderr: captured}
	}

	return splitLines(stdout.String()), nil
}

// toolError carries the exit status and captured stderr of a failed run
// so callers can tell a tool refusing its input from the tool itself
// breaking. It unwraps to domain.ErrExternalTool.
type toolError struct {
	err      error
	exitCode int
	stderr   string
}

func (e *toolError) Error() string { return e.err.Error() }
func (e *toolError) Unwrap() error { return e.err }

// ExitCode returns the exit status carried by a Run error, or -1 when
// the error did not come from a tool exiting non-zero.
func ExitCode(err error) int {
	var te *toolError
	if errors.As(err, &te) {
		return te.exitCode
	}
	return -1
}

// Stderr returns the captured stderr carried by a Run error, empty when
// the error did not come from a tool exiting non-zero.
func Stderr(err error) string {
	var te *toolError
	if errors.As(err, &te) {
		return te.stderr
	}
	return ""
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
