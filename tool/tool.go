// Package tool wraps the external programs a run depends on: the stream
// downloader and the multiplexer. Both are opaque; only their exit status is
// interpreted.
package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/vimeodl/vimeodl/log"
)

var (
	// ErrDependencyMissing is returned when a required executable cannot be run.
	ErrDependencyMissing = errors.New("required tool is not installed")

	// ErrToolFailed is wrapped by Result.Err when a tool exits unsuccessfully.
	ErrToolFailed = errors.New("tool failed")
)

// Result records the outcome of one external invocation.
type Result struct {
	Tool     string
	Args     []string
	ExitCode int
	Err      error
}

// OK reports whether the tool ran and exited with status zero.
func (r Result) OK() bool {
	return r.Err == nil
}

// Command renders the invocation for logs and messages.
func (r Result) Command() string {
	return strings.Join(append([]string{r.Tool}, r.Args...), " ")
}

func run(ctx context.Context, path string, args []string, stdout, stderr io.Writer) Result {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	result := Result{Tool: path, Args: args}
	if err := cmd.Run(); err != nil {
		result.ExitCode = -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Err = fmt.Errorf("%w: %s exited with %d: %w", ErrToolFailed, path, result.ExitCode, err)
	}

	log.Debugf("ran %s (exit %d)", result.Command(), result.ExitCode)
	return result
}
