// Package deps defines the package records shared by the install pipeline.
package deps

import "fmt"

// Status is the classification of a search result against the locked dependencies.
type Status int

const (
	// StatusNone means the package is not locked in the project and can be installed.
	StatusNone Status = iota
	// StatusInstalled means the locked version equals the latest published version.
	StatusInstalled
	// StatusUpgrade means a different version is locked.
	StatusUpgrade
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "installable"
	case StatusInstalled:
		return "installed"
	case StatusUpgrade:
		return "upgrade"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Candidate is a package returned by a registry search.
type Candidate struct {
	// Name is the registry-assigned package name.
	Name string `json:"name"`
	// LatestVersion is the newest version published to the registry.
	LatestVersion string `json:"latest_version"`
	// Status is set by classification. Registry results start as StatusNone.
	Status Status `json:"-"`
	// LockedVersion is the version currently locked in the project.
	// Empty when Status is StatusNone.
	LockedVersion string `json:"-"`
	// Description is the package summary from the registry, if any.
	Description string `json:"description,omitempty"`
	// URL is the package page on the registry, if any.
	URL string `json:"url,omitempty"`
}

// Selectable reports whether the candidate can be picked for installation.
func (c Candidate) Selectable() bool {
	return c.Status != StatusInstalled
}

// Tuple renders the manifest entry for a fresh install, pinned with the
// pessimistic operator: {:pow, "~> 1.0.2"}.
func (c Candidate) Tuple() string {
	return fmt.Sprintf("{:%s, \"~> %s\"}", c.Name, c.LatestVersion)
}

// Label is the one-line text shown for the candidate in prompts and summaries.
func (c Candidate) Label() string {
	switch c.Status {
	case StatusUpgrade:
		return fmt.Sprintf("%s %s → %s", c.Name, c.LockedVersion, c.LatestVersion)
	default:
		return fmt.Sprintf("%s %s", c.Name, c.LatestVersion)
	}
}

// Names returns the candidate names in order.
func Names(cands []Candidate) []string {
	names := make([]string, len(cands))
	for i, c := range cands {
		names[i] = c.Name
	}
	return names
}

// Locks maps a package name to its locked version.
type Locks map[string]string

// Get returns the locked version for name and whether it is locked.
func (l Locks) Get(name string) (string, bool) {
	v, ok := l[name]
	return v, ok
}
