// Package version provides build information for mixadd.
package version

import (
	"fmt"
	"runtime"
)

// Build variables, set via -ldflags "-X github.com/wexinc/mixadd/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info contains version information about mixadd.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo creates a new Info from the build variables.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// Current returns the Info for the running binary.
func Current() *Info {
	return NewInfo(Version, Commit, Date)
}

// String returns a formatted version string.
func (i *Info) String() string {
	return fmt.Sprintf("mixadd %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// FullString returns a detailed version string.
func (i *Info) FullString() string {
	return fmt.Sprintf(`mixadd %s
  Commit:   %s
  Built:    %s
  Go:       %s
  OS/Arch:  %s/%s`, i.Version, i.Commit, i.Date, i.GoVer, i.OS, i.Arch)
}

// UserAgent is the User-Agent header sent to the package registry.
func (i *Info) UserAgent() string {
	return fmt.Sprintf("mixadd/%s (%s/%s)", i.Version, i.OS, i.Arch)
}
