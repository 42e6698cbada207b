package app

import (
	"context"

	"github.com/wexinc/mixadd/internal/deps"
	"github.com/wexinc/mixadd/internal/manifest"
)

// Searcher finds packages matching a query in the registry.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type Searcher interface {
	// Search returns candidates in registry order. An empty result is not an error.
	Search(ctx context.Context, query string) ([]deps.Candidate, error)
}

// LockSource provides the versions locked in the project.
type LockSource interface {
	// Locks always returns a usable map. A non-nil error is a warning.
	Locks(ctx context.Context) (deps.Locks, error)
}

// Selector lets the user choose among classified candidates.
type Selector interface {
	// Select returns the chosen candidates. An empty selection is not an error.
	Select(ctx context.Context, cands []deps.Candidate) ([]deps.Candidate, error)
}

// ManifestEditor writes selected candidates to the manifest.
type ManifestEditor interface {
	Apply(selected []deps.Candidate) (*manifest.Result, error)
}

// BuildDriver runs the post-edit build tool commands.
type BuildDriver interface {
	// Run returns one warning per failed command.
	Run(ctx context.Context) []error
}
