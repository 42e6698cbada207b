// Package lock reads the versions currently locked in a Mix project.
package lock

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/wexinc/mixadd/internal/deps"
)

// lockedLine matches the status line printed by "mix deps" for each
// resolved dependency, e.g. "  locked at 1.0.2 (pow) 0a1b2c3d".
var lockedLine = regexp.MustCompile(`locked at (\S+) \((\S+)\)`)

// Parse extracts name → version pairs from dependency listing output.
// Lines that do not match are skipped. A repeated name keeps its last version.
func Parse(output string) deps.Locks {
	locks := deps.Locks{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := lockedLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		locks[m[2]] = m[1]
	}
	return locks
}
