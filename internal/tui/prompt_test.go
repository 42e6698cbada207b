package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
)

func TestPrompt_NotInteractive(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{
		In:         strings.NewReader(""),
		Out:        &out,
		IsTerminal: func() bool { return false },
	}

	got, err := p.Select(context.Background(), ordered())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, mixerrors.ErrTerminal)
	assert.True(t, mixerrors.IsUserError(err))
}

func TestPrompt_NothingSelectablePrintsList(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{
		In:  strings.NewReader(""),
		Out: &out,
		IsTerminal: func() bool {
			t.Error("terminal check not expected")
			return false
		},
	}

	got, err := p.Select(context.Background(), []deps.Candidate{
		{Name: "pow", LatestVersion: "1.0.2", LockedVersion: "1.0.2", Status: deps.StatusInstalled},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, out.String(), "pow 1.0.2 (installed)")
}

func interactivePrompt(input string) *Prompt {
	return &Prompt{
		In:         strings.NewReader(input),
		Out:        &bytes.Buffer{},
		Title:      DefaultTitle,
		IsTerminal: func() bool { return true },
	}
}

func TestPrompt_InteractiveSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "toggle first", input: " \r", want: []string{"pow"}},
		{name: "move then toggle", input: "j \r", want: []string{"pow_assent"}},
		{name: "select all", input: "a\r", want: []string{"pow", "pow_assent", "powerful"}},
		{name: "confirm nothing", input: "\r", want: nil},
		{name: "cancel after toggle", input: " q", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := interactivePrompt(tt.input)

			got, err := p.Select(context.Background(), ordered())
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, deps.Names(got))
		})
	}
}

func TestPrompt_InteractiveCanceledContext(t *testing.T) {
	p := interactivePrompt("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.Select(ctx, ordered())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseNames(t *testing.T) {
	assert.Nil(t, ParseNames(nil))
	assert.Equal(t, []string{"pow", "plug", "jason"}, ParseNames([]string{"pow, plug", " ,jason,"}))
}

func TestStaticSelector(t *testing.T) {
	var out bytes.Buffer
	s := &StaticSelector{Names: []string{"powerful", "plug", "missing", "pow"}, Out: &out}

	got, err := s.Select(context.Background(), ordered())
	require.NoError(t, err)

	assert.Equal(t, []string{"pow", "powerful"}, deps.Names(got), "presentation order")
	assert.Contains(t, out.String(), "plug 1.14.0 is already installed")
	assert.Contains(t, out.String(), "missing is not in the search results")
}

func TestStaticSelector_NoNames(t *testing.T) {
	got, err := (&StaticSelector{}).Select(context.Background(), ordered())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOutputHelpers(t *testing.T) {
	var out bytes.Buffer
	Info(&out, "No packages found.")
	Success(&out, "Updated mix.exs")
	Warn(&out, mixerrors.New(mixerrors.ErrPatch, "dependency x not found"))
	Warn(&out, nil)

	s := out.String()
	assert.Contains(t, s, "No packages found.\n")
	assert.Contains(t, s, "✓ Updated mix.exs")
	assert.Contains(t, s, "warning: dependency x not found")
	assert.Equal(t, 3, strings.Count(s, "\n"))

	assert.NotPanics(t, func() {
		Info(nil, "x")
		Success(nil, "x")
		Warn(nil, assert.AnError)
	})
}
