package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
)

// DefaultTitle is the prompt title.
const DefaultTitle = "Select packages to install"

// Prompt asks the user to pick candidates in an inline bubbletea program.
type Prompt struct {
	// In and Out are the program's terminal streams.
	In  io.Reader
	Out io.Writer
	// Title is shown above the list.
	Title string
	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal func() bool
}

// NewPrompt creates a Prompt reading keys from in.
func NewPrompt(in *os.File, out io.Writer) *Prompt {
	return &Prompt{
		In:    in,
		Out:   out,
		Title: DefaultTitle,
		IsTerminal: func() bool {
			return term.IsTerminal(int(in.Fd()))
		},
	}
}

// Select shows candidates and returns the chosen ones in presentation
// order. Canceling the prompt or confirming nothing returns no candidates
// and no error. When nothing can be selected, the list is printed and
// no input is read.
func (p *Prompt) Select(ctx context.Context, cands []deps.Candidate) ([]deps.Candidate, error) {
	model := NewSelector(p.Title, cands)
	if !model.Selectable() {
		fmt.Fprintln(p.Out, model.List())
		return nil, nil
	}

	if p.IsTerminal != nil && !p.IsTerminal() {
		return nil, mixerrors.NotInteractive()
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, mixerrors.Wrap(err, mixerrors.ErrTerminal, "package prompt failed")
	}

	m, ok := final.(*SelectorModel)
	if !ok {
		return nil, errors.New("unexpected prompt model")
	}
	return m.Selected(), nil
}

// StaticSelector picks candidates by name without prompting.
type StaticSelector struct {
	// Names are the packages to pick.
	Names []string
	// Out receives warnings for names that cannot be picked.
	Out io.Writer
}

// ParseNames splits a comma-separated package list, dropping blanks.
func ParseNames(list []string) []string {
	var names []string
	for _, item := range list {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Select returns the named candidates in presentation order. Names that
// are installed already or missing from cands are reported as warnings.
func (s *StaticSelector) Select(_ context.Context, cands []deps.Candidate) ([]deps.Candidate, error) {
	wanted := make(map[string]bool, len(s.Names))
	for _, n := range s.Names {
		wanted[n] = true
	}

	var selected []deps.Candidate
	for _, c := range cands {
		if !wanted[c.Name] {
			continue
		}
		delete(wanted, c.Name)
		if !c.Selectable() {
			Warn(s.Out, mixerrors.New(mixerrors.ErrUsage,
				fmt.Sprintf("%s %s is already installed", c.Name, c.LatestVersion)))
			continue
		}
		selected = append(selected, c)
	}

	for _, n := range s.Names {
		if wanted[n] {
			delete(wanted, n)
			Warn(s.Out, mixerrors.New(mixerrors.ErrUsage,
				fmt.Sprintf("%s is not in the search results", n)))
		}
	}
	return selected, nil
}
