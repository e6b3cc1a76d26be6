// Package toolchain runs composed build commands through the platform
// shell. The contract with the native toolchain is the command text
// and its exit code; everything else is passthrough.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/qiniu/x/log"
)

// ExitError reports a subprocess that exited non-zero. Stderr carries
// the captured error stream, surfaced verbatim to the user.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d: %s", e.Code, e.Command)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

// Runner executes shell command strings in a fixed directory.
type Runner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run hands the command string to the shell and blocks until it exits.
// A non-zero exit returns *ExitError; the operation is not retried.
func (r *Runner) Run(ctx context.Context, command string) error {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}
	return r.run(command, exec.CommandContext(ctx, shell, flag, command))
}

// Exec runs a program directly, bypassing the shell, so paths with
// spaces or shell metacharacters stay intact.
func (r *Runner) Exec(ctx context.Context, name string, args ...string) error {
	display := strings.Join(append([]string{name}, args...), " ")
	return r.run(display, exec.CommandContext(ctx, name, args...))
}

func (r *Runner) run(display string, cmd *exec.Cmd) error {
	log.Debug("exec:", display)

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var captured bytes.Buffer
	cmd.Dir = r.Dir
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &captured)

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{Command: display, Code: ee.ExitCode(), Stderr: captured.String()}
		}
		return fmt.Errorf("failed to run command: %w", err)
	}
	return nil
}
