// Package tui provides the interactive package selector for mixadd.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/mixadd/internal/deps"
	"github.com/wexinc/mixadd/internal/reconcile"
	"github.com/wexinc/mixadd/internal/tui/styles"
)

// Section headers, in presentation order.
const (
	SectionInstalled = "Installed"
	SectionUpgrades  = "Upgrades"
	SectionAvailable = "Available"
)

func sectionFor(s deps.Status) string {
	switch s {
	case deps.StatusInstalled:
		return SectionInstalled
	case deps.StatusUpgrade:
		return SectionUpgrades
	default:
		return SectionAvailable
	}
}

type row struct {
	cand     deps.Candidate
	selected bool
}

// SelectorModel is a multi-select list of candidates. Installed candidates
// are shown but the cursor never lands on them and they cannot be toggled.
type SelectorModel struct {
	title    string
	rows     []row
	cursor   int
	keys     keyMap
	help     help.Model
	done     bool
	canceled bool
}

// NewSelector creates a selector over candidates in presentation order.
// Rows are grouped by section, keeping the given order within each group.
func NewSelector(title string, cands []deps.Candidate) *SelectorModel {
	g := reconcile.Partition(cands)
	rows := make([]row, 0, len(cands))
	for _, group := range [][]deps.Candidate{g.Installed, g.Upgrades, g.Installable} {
		for _, c := range group {
			rows = append(rows, row{cand: c})
		}
	}
	m := &SelectorModel{
		title:  title,
		rows:   rows,
		cursor: -1,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.cursor = m.next(-1, 1)
	return m
}

// Init implements tea.Model.
func (m *SelectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.All):
			m.toggleAll()
		}
	}
	return m, nil
}

// next returns the next selectable row after from in direction dir, or
// from itself when there is none.
func (m *SelectorModel) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.rows); i += dir {
		if m.rows[i].cand.Selectable() {
			return i
		}
	}
	return from
}

func (m *SelectorModel) move(dir int) {
	if m.cursor < 0 {
		return
	}
	m.cursor = m.next(m.cursor, dir)
}

func (m *SelectorModel) toggle() {
	if m.cursor < 0 {
		return
	}
	m.rows[m.cursor].selected = !m.rows[m.cursor].selected
}

// toggleAll selects every selectable row, or clears them all when they
// are already selected.
func (m *SelectorModel) toggleAll() {
	all := true
	for _, r := range m.rows {
		if r.cand.Selectable() && !r.selected {
			all = false
			break
		}
	}
	for i := range m.rows {
		if m.rows[i].cand.Selectable() {
			m.rows[i].selected = !all
		}
	}
}

// Selectable reports whether any row can be selected.
func (m *SelectorModel) Selectable() bool {
	return m.cursor >= 0
}

// Canceled reports whether the user left without confirming.
func (m *SelectorModel) Canceled() bool {
	return m.canceled
}

// Selected returns the chosen candidates in presentation order.
// A canceled selector has no selection.
func (m *SelectorModel) Selected() []deps.Candidate {
	if m.canceled {
		return nil
	}
	var out []deps.Candidate
	for _, r := range m.rows {
		if r.selected {
			out = append(out, r.cand)
		}
	}
	return out
}

// View implements tea.Model.
func (m *SelectorModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.List())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// List renders the title and grouped rows without the help line.
func (m *SelectorModel) List() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(styles.TitleStyle.Render(m.title))
		b.WriteString("\n")
	}

	section := ""
	for i, r := range m.rows {
		if s := sectionFor(r.cand.Status); s != section {
			section = s
			b.WriteString(styles.SectionStyle.Render(s))
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *SelectorModel) renderRow(i int, r row) string {
	c := r.cand
	focused := i == m.cursor

	cursor := "  "
	if focused {
		cursor = styles.CursorStyle.Render("› ")
	}

	if !c.Selectable() {
		line := styles.CheckboxDisabled + " " + styles.DisabledStyle.Render(c.Name+" "+c.LatestVersion+" (installed)")
		return cursor + line
	}

	box := styles.CheckboxUnchecked
	if r.selected {
		box = styles.CheckboxChecked
	}

	nameStyle := styles.NameStyle
	if focused {
		nameStyle = styles.FocusedNameStyle
	}

	line := box + " " + nameStyle.Render(c.Name) + " "
	if c.Status == deps.StatusUpgrade {
		line += styles.VersionStyle.Render(c.LockedVersion) + " → " + styles.UpgradeStyle.Render(c.LatestVersion)
	} else {
		line += styles.VersionStyle.Render(c.LatestVersion)
	}
	if c.Description != "" {
		line += "  " + styles.DescriptionStyle.Render(truncate(c.Description, 60))
	}
	return cursor + line
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
