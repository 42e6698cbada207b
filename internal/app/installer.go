// Package app wires the install pipeline: search, lock listing,
// classification, selection, manifest edit and build.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/logging"
	"github.com/wexinc/mixadd/internal/reconcile"
	"github.com/wexinc/mixadd/internal/tui"
)

// Outcome is how an install run ended.
type Outcome int

const (
	// OutcomeApplied means the selection reached the manifest writer.
	OutcomeApplied Outcome = iota
	// OutcomeNoResults means the search returned nothing.
	OutcomeNoResults
	// OutcomeNoSelection means the user picked nothing.
	OutcomeNoSelection
)

// Message is the informational line printed for outcomes that end the run early.
func (o Outcome) Message() string {
	switch o {
	case OutcomeNoResults:
		return "No packages found."
	case OutcomeNoSelection:
		return "No packages selected."
	default:
		return ""
	}
}

// Report summarizes an install run.
type Report struct {
	Outcome Outcome
	// Candidates are the classified search results in presentation order.
	Candidates []deps.Candidate
	// Applied are the candidates written to the manifest.
	Applied []deps.Candidate
	// Written reports whether the manifest file changed.
	Written bool
	// Warnings are the non-fatal problems reported during the run.
	Warnings []error
}

// Installer runs one search-select-edit-build pass.
type Installer struct {
	searcher Searcher
	locks    LockSource
	selector Selector
	manifest ManifestEditor
	build    BuildDriver

	out    io.Writer
	errOut io.Writer
	logger *logging.Logger
}

// NewInstaller creates an Installer from its ports. A nil build driver
// skips the build step.
func NewInstaller(searcher Searcher, locks LockSource, selector Selector, manifest ManifestEditor, build BuildDriver) *Installer {
	return &Installer{
		searcher: searcher,
		locks:    locks,
		selector: selector,
		manifest: manifest,
		build:    build,
		out:      io.Discard,
		errOut:   io.Discard,
		logger:   logging.NewNoop(),
	}
}

// WithOutput sets where progress and warnings are printed.
func (i *Installer) WithOutput(out, errOut io.Writer) *Installer {
	i.out = out
	i.errOut = errOut
	return i
}

// WithLogger sets the logger.
func (i *Installer) WithLogger(logger *logging.Logger) *Installer {
	i.logger = logger.With("component", "installer")
	return i
}

// Run searches for query and installs or upgrades what the user selects.
// Search, selection and manifest failures are returned as errors. Lock
// listing, patch and build problems are printed as warnings and collected
// in the report.
func (i *Installer) Run(ctx context.Context, query string) (*Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, mixerrors.UsageError("missing search query", "mixadd install <query>")
	}
	ctx = logging.WithQuery(ctx, query)
	log := i.logger.WithContext(ctx)
	report := &Report{}

	var (
		found   []deps.Candidate
		locks   deps.Locks
		lockErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = i.searcher.Search(gctx, query)
		return err
	})
	g.Go(func() error {
		locks, lockErr = i.locks.Locks(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("search failed", "error", err.Error())
		return nil, err
	}
	if lockErr != nil {
		i.warn(report, lockErr)
	}

	if len(found) == 0 {
		report.Outcome = OutcomeNoResults
		tui.Info(i.out, report.Outcome.Message())
		return report, nil
	}

	report.Candidates = reconcile.Order(reconcile.Classify(found, locks), query)
	log.Info("candidates classified", "results", len(report.Candidates), "locked", len(locks))

	selected, err := i.selector.Select(ctx, report.Candidates)
	if err != nil {
		return nil, err
	}
	log.Info("packages selected", "names", strings.Join(deps.Names(selected), ","))
	if len(selected) == 0 {
		report.Outcome = OutcomeNoSelection
		tui.Info(i.out, report.Outcome.Message())
		return report, nil
	}

	result, err := i.manifest.Apply(selected)
	if err != nil {
		log.Error("manifest update failed", "error", err.Error())
		return nil, err
	}
	report.Outcome = OutcomeApplied
	report.Applied = result.Applied
	report.Written = result.Written
	for _, w := range result.Skipped {
		i.warn(report, w)
	}
	for _, c := range result.Applied {
		tui.Success(i.out, describe(c))
	}

	if len(result.Applied) == 0 {
		tui.Info(i.out, "Manifest unchanged.")
		return report, nil
	}
	if !result.Written {
		// The manifest already asks for these versions; the fetch still
		// has to move the lock.
		log.Info("manifest already up to date", "applied", len(result.Applied))
	}

	if i.build != nil {
		for _, w := range i.build.Run(ctx) {
			i.warn(report, w)
		}
	}

	log.Info("install complete", "applied", len(report.Applied), "warnings", len(report.Warnings))
	return report, nil
}

func (i *Installer) warn(report *Report, err error) {
	report.Warnings = append(report.Warnings, err)
	i.logger.Warn("warning", "error", err.Error(), "fatal", mixerrors.IsFatal(err))
	tui.Warn(i.errOut, err)
}

func describe(c deps.Candidate) string {
	if c.Status == deps.StatusUpgrade {
		return fmt.Sprintf("Upgraded %s %s → %s", c.Name, c.LockedVersion, c.LatestVersion)
	}
	return fmt.Sprintf("Added %s", c.Tuple())
}
