// Package main is the entry point for the mixadd CLI application.
package main

import (
	"github.com/wexinc/mixadd/cmd/mixadd/cmd"
	"github.com/wexinc/mixadd/internal/version"
)

// Version information - set by build flags.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	cmd.Execute()
}
