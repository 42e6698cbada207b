package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
)

func install(name, version string) deps.Candidate {
	return deps.Candidate{Name: name, LatestVersion: version, Status: deps.StatusNone}
}

func upgrade(name, locked, version string) deps.Candidate {
	return deps.Candidate{Name: name, LatestVersion: version, LockedVersion: locked, Status: deps.StatusUpgrade}
}

// copyFixture copies a testdata manifest into a temp dir and returns its path.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mix.exs")
	require.NoError(t, os.WriteFile(path, []byte(fixture(t, name)), 0644))
	return path
}

func TestWriter_Apply(t *testing.T) {
	tests := []struct {
		name       string
		fixture    string
		selected   []deps.Candidate
		goldenName string
		applied    int
		skipped    int
	}{
		{
			name:       "new package into template list",
			fixture:    "fresh.exs",
			selected:   []deps.Candidate{install("pow", "1.0.2")},
			goldenName: "scenario_a",
			applied:    1,
		},
		{
			name:       "upgrade exact pin",
			fixture:    "app.exs",
			selected:   []deps.Candidate{upgrade("pow", "1.0.0", "1.0.2")},
			goldenName: "scenario_b",
			applied:    1,
		},
		{
			name:    "upgrade ranged pins",
			fixture: "app.exs",
			selected: []deps.Candidate{
				upgrade("plug_cowboy", "2.5.0", "2.6.3"),
				upgrade("jason", "1.2.0", "1.4.1"),
				upgrade("phoenix", "1.7.10", "1.7.14"),
			},
			goldenName: "upgrade_ranged",
			applied:    3,
		},
		{
			name:    "new packages into populated list",
			fixture: "app.exs",
			selected: []deps.Candidate{
				install("ecto_sql", "3.11.0"),
				install("postgrex", "0.17.4"),
			},
			goldenName: "install_into_list",
			applied:    2,
		},
		{
			name:    "mixed with missing upgrade target",
			fixture: "app.exs",
			selected: []deps.Candidate{
				upgrade("credo", "1.7.0", "1.7.5"),
				install("pow_assent", "0.4.18"),
				upgrade("missing", "0.9.0", "1.0.0"),
			},
			goldenName: "mixed",
			applied:    2,
			skipped:    1,
		},
		{
			name:       "empty keyword list",
			fixture:    "inline_empty.exs",
			selected:   []deps.Candidate{install("pow", "1.0.2")},
			goldenName: "inline_empty",
			applied:    1,
		},
		{
			name:       "keyword list with entries",
			fixture:    "inline_entries.exs",
			selected:   []deps.Candidate{install("pow", "1.0.2")},
			goldenName: "inline_entries",
			applied:    1,
		},
		{
			name:       "empty block list",
			fixture:    "empty_block.exs",
			selected:   []deps.Candidate{install("pow", "1.0.2")},
			goldenName: "empty_block",
			applied:    1,
		},
		{
			name:    "upgrade skips commented tuple and keeps upper bound",
			fixture: "commented.exs",
			selected: []deps.Candidate{
				upgrade("pow", "1.0.0", "1.0.2"),
				upgrade("ecto", "3.9.0", "3.11.1"),
			},
			goldenName: "commented",
			applied:    2,
		},
		{
			name:    "tab indentation",
			fixture: "tabs.exs",
			selected: []deps.Candidate{
				upgrade("ecto", "3.9.0", "3.11.1"),
				install("ecto_sql", "3.11.0"),
			},
			goldenName: "tabs",
			applied:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := copyFixture(t, tt.fixture)

			result, err := NewWriter(path, nil).Apply(tt.selected)
			require.NoError(t, err)
			assert.True(t, result.Written)
			assert.Len(t, result.Applied, tt.applied)
			assert.Len(t, result.Skipped, tt.skipped)

			got, err := os.ReadFile(path)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, got)
		})
	}
}

func TestWriter_ApplyMissingManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.exs")

	result, err := NewWriter(path, nil).Apply([]deps.Candidate{install("pow", "1.0.2")})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, mixerrors.ErrManifest)
	assert.True(t, mixerrors.IsFatal(err))
	assert.Contains(t, err.Error(), "manifest not found")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "manifest must not be created")
}

func TestWriter_ApplyNoChangeSkipsWrite(t *testing.T) {
	path := copyFixture(t, "app.exs")
	past := mustModTime(t, path)

	result, err := NewWriter(path, nil).Apply([]deps.Candidate{upgrade("missing", "0.1.0", "0.2.0")})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Empty(t, result.Applied)
	require.Len(t, result.Skipped, 1)

	skipped := result.Skipped[0]
	assert.ErrorIs(t, skipped, mixerrors.ErrPatch)
	assert.False(t, mixerrors.IsFatal(skipped))
	assert.Contains(t, skipped.Error(), "dependency missing not found")

	assert.Equal(t, fixture(t, "app.exs"), readFile(t, path))
	assert.Equal(t, past, mustModTime(t, path))
}

func TestWriter_ApplyNoDepsList(t *testing.T) {
	path := copyFixture(t, "no_deps.exs")

	result, err := NewWriter(path, nil).Apply([]deps.Candidate{install("pow", "1.0.2")})
	require.NoError(t, err)
	assert.False(t, result.Written)
	require.Len(t, result.Skipped, 1)
	assert.ErrorIs(t, result.Skipped[0], mixerrors.ErrPatch)
	assert.Contains(t, result.Skipped[0].Error(), "no deps list found")
}

func TestWriter_ApplyIgnoresInstalled(t *testing.T) {
	path := copyFixture(t, "app.exs")
	installed := deps.Candidate{Name: "phoenix", LatestVersion: "1.7.10", LockedVersion: "1.7.10", Status: deps.StatusInstalled}

	result, err := NewWriter(path, nil).Apply([]deps.Candidate{installed})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Empty(t, result.Applied)
	assert.Empty(t, result.Skipped)
}

func TestWriter_ApplyEmptySelection(t *testing.T) {
	path := copyFixture(t, "app.exs")

	result, err := NewWriter(path, nil).Apply(nil)
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Equal(t, fixture(t, "app.exs"), readFile(t, path))
}

func TestWriter_ApplyPreservesMode(t *testing.T) {
	path := copyFixture(t, "app.exs")
	require.NoError(t, os.Chmod(path, 0600))

	_, err := NewWriter(path, nil).Apply([]deps.Candidate{upgrade("pow", "1.0.0", "1.0.2")})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

type stubEditor struct {
	replaced []string
	inserted []string
}

func (s *stubEditor) ReplaceVersion(text, name, version string) (string, bool) {
	s.replaced = append(s.replaced, name+"@"+version)
	return text + "r", true
}

func (s *stubEditor) InsertDependency(text, tuple string) (string, bool) {
	s.inserted = append(s.inserted, tuple)
	return text + "i", true
}

func TestWriter_UsesEditor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.exs")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	editor := &stubEditor{}
	w := NewWriter(path, nil)
	w.Editor = editor

	_, err := w.Apply([]deps.Candidate{install("pow", "1.0.2"), upgrade("plug", "1.0.0", "1.1.0")})
	require.NoError(t, err)

	assert.Equal(t, []string{`{:pow, "~> 1.0.2"}`}, editor.inserted)
	assert.Equal(t, []string{"plug@1.1.0"}, editor.replaced)
	assert.Equal(t, "xir", readFile(t, path))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func mustModTime(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.ModTime().UnixNano()
}
