// Package manifest edits the dependency list of a mix.exs file in place.
//
// Edits are textual: only the version string of an upgraded tuple changes,
// and new tuples are inserted right after the opening bracket of the deps
// list. Everything else in the file is preserved byte for byte.
package manifest

import (
	"regexp"
	"strings"
)

// Editor patches manifest text. Each method reports whether its target was
// found; when it was not, the text is returned unchanged.
type Editor interface {
	// ReplaceVersion sets the version of the first uncommented
	// {:name, "..."} tuple, keeping any requirement operator written before
	// the old version.
	ReplaceVersion(text, name, version string) (string, bool)
	// InsertDependency adds tuple as the first entry of the deps list.
	InsertDependency(text, tuple string) (string, bool)
}

// depsListOpen matches the start of the deps list in either block or
// keyword form: "defp deps do [" or "defp deps, do: [".
var depsListOpen = regexp.MustCompile(`defp\s+deps(?:\s*\(\s*\))?(?:\s+do\s*|\s*,\s*do:\s*)\[`)

// RegexEditor implements Editor with regular expressions over the raw text.
type RegexEditor struct{}

// tuplePattern matches {:name, "[op]version with the optional operator in
// group 1 and the first version token in group 2. The rest of a compound
// requirement such as ">= 1.0.0 and < 2.0.0" is left out of the match.
func tuplePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\{\s*:` + regexp.QuoteMeta(name) + `\s*,\s*"(\s*(?:~>|>=|<=|==|!=|>|<)\s*)?\s*([^"\s]+)`)
}

// ReplaceVersion implements Editor. Tuples inside comments are skipped.
func (RegexEditor) ReplaceVersion(text, name, version string) (string, bool) {
	for _, loc := range tuplePattern(name).FindAllStringSubmatchIndex(text, -1) {
		if commented(text, loc[0]) {
			continue
		}
		start, end := loc[4], loc[5]
		return text[:start] + version + text[end:], true
	}
	return text, false
}

// commented reports whether pos follows a # on its line.
func commented(text string, pos int) bool {
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	return strings.IndexByte(text[lineStart:pos], '#') >= 0
}

// InsertDependency implements Editor.
func (RegexEditor) InsertDependency(text, tuple string) (string, bool) {
	loc := depsListOpen.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	open := loc[1]
	bracketIndent := lineIndent(text, open-1)

	eol := strings.IndexByte(text[open:], '\n')
	if eol < 0 {
		eol = len(text)
	} else {
		eol += open
	}
	rest := strings.TrimSpace(text[open:eol])

	switch {
	case strings.HasPrefix(rest, "]"):
		// Empty inline list: expand it onto its own lines.
		closing := open + strings.IndexByte(text[open:], ']')
		return text[:open] + "\n" + bracketIndent + "  " + tuple + "\n" + bracketIndent + text[closing:], true

	case rest != "" && !strings.HasPrefix(rest, "#"):
		// Entries continue on the bracket line.
		return text[:open] + tuple + ", " + text[open:], true
	}

	indent, hasEntries := scanEntries(text, eol)
	if indent == "" {
		indent = bracketIndent + "  "
	}
	entry := "\n" + indent + tuple
	if hasEntries {
		entry += ","
	}
	return text[:eol] + entry + text[eol:], true
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := start
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	return text[start:end]
}

// scanEntries looks at the lines following pos. It returns the indentation
// of the first non-blank line unless that line closes the list, and whether
// any non-comment entry comes before the closing bracket.
func scanEntries(text string, pos int) (indent string, hasEntries bool) {
	first := true
	for _, line := range strings.Split(text[pos:], "\n")[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "]") {
			return indent, false
		}
		if first {
			indent = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			first = false
		}
		if !strings.HasPrefix(trimmed, "#") {
			return indent, true
		}
	}
	return indent, false
}
