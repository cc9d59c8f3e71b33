// Package scriptrunner executes admin-triggered maintenance scripts as child
// processes with a bounded wall-clock timeout.
package scriptrunner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Result captures the outcome of one script run. Output holds the combined
// standard output and standard error of the child process.
type Result struct {
	OK       bool
	ExitCode int
	Output   string
}

// waitDelay bounds how long Wait may keep draining the output pipe after the
// deadline kills the script. Orphaned children that inherited the pipe would
// otherwise keep it open and block the caller well past the timeout.
const waitDelay = time.Second

// Runner runs scripts with a fixed timeout.
type Runner struct {
	timeout time.Duration
	logger  zerolog.Logger
}

// NewRunner creates a runner with the given wall-clock budget per script.
func NewRunner(timeout time.Duration, logger zerolog.Logger) *Runner {
	return &Runner{
		timeout: timeout,
		logger:  logger,
	}
}

// Run executes the script at scriptPath and reports its captured output and
// exit status. A missing script, a timeout, and a non-zero exit all yield
// OK=false with a descriptive message; Run itself only errors on the caller's
// context being cancelled before the process could be handled.
func (r *Runner) Run(ctx context.Context, scriptPath string) Result {
	if _, err := os.Stat(scriptPath); err != nil {
		r.logger.Error().Str("script", scriptPath).Err(err).Msg("Script not found")
		return Result{
			OK:       false,
			ExitCode: -1,
			Output:   fmt.Sprintf("script not found: %s", scriptPath),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, scriptPath)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		r.logger.Warn().Str("script", scriptPath).Dur("elapsed", elapsed).Msg("Script timed out")
		return Result{
			OK:       false,
			ExitCode: -1,
			Output:   string(output) + fmt.Sprintf("\nscript timed out after %s", r.timeout),
		}
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Warn().
			Str("script", scriptPath).
			Int("exitCode", exitCode).
			Dur("elapsed", elapsed).
			Msg("Script exited with error")
		return Result{
			OK:       false,
			ExitCode: exitCode,
			Output:   string(output) + fmt.Sprintf("\nscript failed: %v", err),
		}
	}

	r.logger.Info().Str("script", scriptPath).Dur("elapsed", elapsed).Msg("Script completed")
	return Result{
		OK:       true,
		ExitCode: 0,
		Output:   string(output),
	}
}
