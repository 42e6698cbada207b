package lock

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/logging"
	"github.com/wexinc/mixadd/internal/project"
)

// noProjectMarker is printed by mix when run outside a project.
const noProjectMarker = "could not find a mix.project"

// Source provides the locked dependency versions of a project.
// The returned map is always usable. A non-nil error is a warning
// (kind ErrLockInfo) and never aborts the run.
type Source interface {
	Locks(ctx context.Context) (deps.Locks, error)
}

// Reader runs the dependency listing command and parses its output.
type Reader struct {
	// Dir is the project directory the command runs in.
	Dir string
	// Command is the listing command, run through "sh -c". Empty disables listing.
	Command string
	// Detector checks that Dir holds a project before running Command.
	// Nil skips the check.
	Detector *project.Detector

	logger *logging.Logger
}

// NewReader creates a Reader for the project in dir.
func NewReader(dir, command string, detector *project.Detector, logger *logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Reader{
		Dir:      dir,
		Command:  command,
		Detector: detector,
		logger:   logger.With("component", "lock"),
	}
}

// Locks runs the listing command and returns the locked versions.
//
// A directory without a project, or a listing that reports no project,
// yields an empty map and no warning: fresh installs must still work there.
// Any other failure yields an empty map and a LockInfoUnavailable warning.
func (r *Reader) Locks(ctx context.Context) (deps.Locks, error) {
	if r.Command == "" {
		r.logger.Debug("lock listing disabled")
		return deps.Locks{}, nil
	}

	if r.Detector != nil {
		info, err := r.Detector.DetectProject(r.Dir)
		if err != nil || info == nil {
			r.logger.Info("no project found, assuming no locked dependencies", "dir", r.Dir)
			return deps.Locks{}, nil
		}
		r.logger.Debug("project detected",
			"name", info.Name,
			"manifest", info.ManifestPath,
			"lock_file", info.HasLockFile,
			"umbrella", info.IsUmbrella,
			"git", info.IsGitRepo,
			"markers", strings.Join(info.Markers, ","),
		)
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, "sh", "-c", r.Command)
	cmd.Dir = r.Dir

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if err != nil {
		if strings.Contains(strings.ToLower(output.String()), noProjectMarker) {
			r.logger.Info("listing reported no project", "command", r.Command)
			return deps.Locks{}, nil
		}

		cause := zerr.Wrap(err, "listing command failed")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cause = zerr.With(cause, "exit_code", exitErr.ExitCode())
		}
		r.logger.Warn("lock listing failed",
			"command", r.Command,
			"error", err.Error(),
			"output", strings.TrimSpace(output.String()),
		)
		return deps.Locks{}, mixerrors.LockInfoUnavailable(r.Command, cause)
	}

	locks := Parse(output.String())
	r.logger.Debug("lock listing complete",
		"locked", len(locks),
		"duration", time.Since(start).String(),
	)
	return locks, nil
}
