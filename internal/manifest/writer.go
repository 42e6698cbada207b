package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wexinc/mixadd/internal/deps"
	mixerrors "github.com/wexinc/mixadd/internal/errors"
	"github.com/wexinc/mixadd/internal/logging"
)

// Result describes what Apply did to the manifest.
type Result struct {
	// Applied are the candidates whose edit was made.
	Applied []deps.Candidate
	// Skipped holds one warning per candidate whose edit target was not found.
	Skipped []error
	// Written reports whether the manifest file was rewritten.
	Written bool
}

// Writer applies selected candidates to a manifest file.
type Writer struct {
	// Path is the manifest file.
	Path string
	// Editor patches the manifest text.
	Editor Editor

	logger *logging.Logger
}

// NewWriter creates a Writer for the manifest at path using the regex editor.
func NewWriter(path string, logger *logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Writer{
		Path:   path,
		Editor: RegexEditor{},
		logger: logger.With("component", "manifest", "path", path),
	}
}

// Apply reads the manifest, makes one edit per selected candidate in order
// and writes the result back in a single rename. Upgrades replace the locked
// tuple's version; new packages are inserted at the top of the deps list.
// A missing edit target is a warning in Result.Skipped. The file is not
// touched when no edit changed the text.
func (w *Writer) Apply(selected []deps.Candidate) (*Result, error) {
	data, err := os.ReadFile(w.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mixerrors.ManifestNotFound(w.Path)
		}
		return nil, mixerrors.ManifestReadFailed(w.Path, err)
	}

	original := string(data)
	text := original
	result := &Result{}

	for _, c := range selected {
		var found bool
		switch c.Status {
		case deps.StatusUpgrade:
			text, found = w.Editor.ReplaceVersion(text, c.Name, c.LatestVersion)
			if !found {
				result.Skipped = append(result.Skipped, mixerrors.DependencyNotFound(c.Name, w.Path))
				w.logger.Warn("upgrade target not found", "package", c.Name)
				continue
			}
		case deps.StatusNone:
			text, found = w.Editor.InsertDependency(text, c.Tuple())
			if !found {
				result.Skipped = append(result.Skipped, mixerrors.DepsListNotFound(c.Name, w.Path))
				w.logger.Warn("deps list not found", "package", c.Name)
				continue
			}
		default:
			w.logger.Debug("ignoring installed package", "package", c.Name)
			continue
		}
		w.logger.Debug("patched manifest", "package", c.Name, "status", c.Status.String(), "version", c.LatestVersion)
		result.Applied = append(result.Applied, c)
	}

	if text == original {
		w.logger.Info("manifest unchanged")
		return result, nil
	}

	if err := writeAtomic(w.Path, []byte(text)); err != nil {
		return nil, mixerrors.ManifestWriteFailed(w.Path, err)
	}
	result.Written = true
	w.logger.Info("manifest written", "applied", len(result.Applied), "skipped", len(result.Skipped))
	return result, nil
}

// writeAtomic replaces path with data through a temporary file in the same
// directory, keeping the original file mode.
func writeAtomic(path string, data []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
