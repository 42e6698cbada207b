// Package reconcile classifies search results against locked versions and
// orders them for presentation.
package reconcile

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/wexinc/mixadd/internal/deps"
)

// Classify annotates each candidate with its status against locks:
// not locked → StatusNone, locked at the latest version → StatusInstalled,
// locked at another version → StatusUpgrade with LockedVersion set.
// It returns a new slice in input order.
func Classify(cands []deps.Candidate, locks deps.Locks) []deps.Candidate {
	out := make([]deps.Candidate, len(cands))
	for i, c := range cands {
		c.Status = deps.StatusNone
		c.LockedVersion = ""
		if locked, ok := locks.Get(c.Name); ok {
			c.LockedVersion = locked
			if locked == c.LatestVersion {
				c.Status = deps.StatusInstalled
			} else {
				c.Status = deps.StatusUpgrade
			}
		}
		out[i] = c
	}
	return out
}

// Score is the name similarity of name to query: 1 minus the edit distance
// of the lowercased strings divided by the longer length in runes.
// Identical strings score 1. The result is not clamped.
func Score(name, query string) float64 {
	a, b := strings.ToLower(name), strings.ToLower(query)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Rank orders candidates by descending Score against query, breaking
// ties by name in ascending byte order. The input is not modified.
func Rank(cands []deps.Candidate, query string) []deps.Candidate {
	type scored struct {
		cand  deps.Candidate
		score float64
	}
	items := make([]scored, len(cands))
	for i, c := range cands {
		items[i] = scored{cand: c, score: Score(c.Name, query)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].cand.Name < items[j].cand.Name
	})

	out := make([]deps.Candidate, len(items))
	for i, it := range items {
		out[i] = it.cand
	}
	return out
}

// Groups holds classified candidates split by status.
type Groups struct {
	Installed   []deps.Candidate
	Upgrades    []deps.Candidate
	Installable []deps.Candidate
}

// Partition splits classified candidates by status, keeping input order
// within each group.
func Partition(cands []deps.Candidate) Groups {
	var g Groups
	for _, c := range cands {
		switch c.Status {
		case deps.StatusInstalled:
			g.Installed = append(g.Installed, c)
		case deps.StatusUpgrade:
			g.Upgrades = append(g.Upgrades, c)
		default:
			g.Installable = append(g.Installable, c)
		}
	}
	return g
}

// Order returns the presentation order of classified candidates:
// installed and upgrades in registry order, then installable ranked
// against query.
func Order(cands []deps.Candidate, query string) []deps.Candidate {
	g := Partition(cands)
	out := make([]deps.Candidate, 0, len(cands))
	out = append(out, g.Installed...)
	out = append(out, g.Upgrades...)
	out = append(out, Rank(g.Installable, query)...)
	return out
}
