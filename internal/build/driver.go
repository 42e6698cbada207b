// Package build runs the dependency fetch and format commands after the
// manifest has been edited.
package build

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"go.trai.ch/zerr"

	"github.com/wexinc/mixadd/internal/config"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/logging"
)

// Step is one build tool invocation.
type Step struct {
	// Name identifies the step in logs ("fetch", "format").
	Name string
	// Command is run through "sh -c". Empty skips the step.
	Command string
}

// StepResult contains the outcome of a step.
type StepResult struct {
	Step
	// Skipped is set when the step had no command.
	Skipped bool
	// ExitCode is the exit code of the command, or -1 if it did not start.
	ExitCode int
	// Duration is how long the command ran.
	Duration time.Duration
	// Err is the BuildToolFailed warning for a failed step.
	Err error
}

// Driver runs build steps in order, streaming their output.
type Driver struct {
	// ProjectDir is the working directory of every step.
	ProjectDir string
	// Steps run in order. A failing step does not stop the next one.
	Steps []Step
	// Stdout and Stderr receive the commands' output as it is produced.
	Stdout io.Writer
	Stderr io.Writer

	logger *logging.Logger
}

// NewDriver creates a Driver that fetches dependencies and then formats
// the project in dir.
func NewDriver(dir string, cmds config.CommandsConfig, stdout, stderr io.Writer, logger *logging.Logger) *Driver {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Driver{
		ProjectDir: dir,
		Steps: []Step{
			{Name: "fetch", Command: cmds.Fetch},
			{Name: "format", Command: cmds.Format},
		},
		Stdout: stdout,
		Stderr: stderr,
		logger: logger.With("component", "build"),
	}
}

// Run executes every step and returns one warning per failed step.
// The manifest edit that preceded it stays in place either way.
func (d *Driver) Run(ctx context.Context) []error {
	var warnings []error
	for _, res := range d.RunSteps(ctx) {
		if res.Err != nil {
			warnings = append(warnings, res.Err)
		}
	}
	return warnings
}

// RunSteps executes every step and returns the per-step results.
func (d *Driver) RunSteps(ctx context.Context) []StepResult {
	results := make([]StepResult, 0, len(d.Steps))
	for _, step := range d.Steps {
		results = append(results, d.runStep(ctx, step))
	}
	return results
}

func (d *Driver) runStep(ctx context.Context, step Step) StepResult {
	result := StepResult{Step: step}
	if step.Command == "" {
		result.Skipped = true
		d.logger.Debug("step skipped", "step", step.Name)
		return result
	}

	d.logger.Info("running step", "step", step.Name, "command", step.Command)
	start := time.Now()

	logOut := d.logger.Writer(logging.LevelDebug)
	defer logOut.Flush()

	cmd := exec.CommandContext(ctx, "sh", "-c", step.Command)
	cmd.Dir = d.ProjectDir
	cmd.Stdout = teeLog(d.Stdout, logOut)
	cmd.Stderr = teeLog(d.Stderr, logOut)

	err := cmd.Run()
	result.Duration = time.Since(start)

	if err == nil {
		d.logger.Info("step complete", "step", step.Name, "duration", result.Duration.String())
		return result
	}

	result.ExitCode = -1
	cause := zerr.Wrap(err, step.Name+" step failed")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		cause = zerr.With(cause, "exit_code", result.ExitCode)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		cause = zerr.Wrap(ctxErr, step.Name+" step interrupted")
	}

	result.Err = mixerrors.BuildToolFailed(step.Command, cause)
	d.logger.Warn("step failed",
		"step", step.Name,
		"exit_code", result.ExitCode,
		"error", err.Error(),
	)
	return result
}

// teeLog copies command output to the debug log as well as to w.
func teeLog(w, log io.Writer) io.Writer {
	if w == nil {
		return log
	}
	return io.MultiWriter(w, log)
}
