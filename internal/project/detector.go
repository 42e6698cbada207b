// Package project provides Mix project detection.
package project

import (
	"os"
	"path/filepath"
)

// ProjectInfo contains information about a detected Mix project.
type ProjectInfo struct {
	// Path is the absolute path to the project directory.
	Path string `json:"path"`
	// Name is the project name (the directory name).
	Name string `json:"name"`
	// ManifestPath is the absolute path to the dependency manifest.
	ManifestPath string `json:"manifest_path"`
	// HasLockFile indicates whether dependencies have been resolved before.
	HasLockFile bool `json:"has_lock_file"`
	// IsUmbrella indicates an umbrella project with child apps.
	IsUmbrella bool `json:"is_umbrella"`
	// IsGitRepo indicates whether this is a git repository.
	IsGitRepo bool `json:"is_git_repo"`
	// Markers are the project markers found.
	Markers []string `json:"markers,omitempty"`
}

// ProjectMarker represents a file or directory found in Mix projects.
type ProjectMarker struct {
	// Name is the file or directory name to look for.
	Name string
	// IsDir indicates whether this is a directory marker.
	IsDir bool
}

// DefaultMarkers are the secondary markers recorded during detection.
// The manifest itself is checked separately since its name is configurable.
var DefaultMarkers = []ProjectMarker{
	{Name: "mix.lock", IsDir: false},
	{Name: ".formatter.exs", IsDir: false},
	{Name: "apps", IsDir: true},
	{Name: "deps", IsDir: true},
	{Name: ".git", IsDir: true},
}

// DefaultManifest is the manifest file name of a Mix project.
const DefaultManifest = "mix.exs"

// Detector detects Mix project directories.
type Detector struct {
	// Manifest is the manifest file name, relative to the project directory
	// unless absolute.
	Manifest string
	// Markers are the secondary markers to check.
	Markers []ProjectMarker
}

// NewDetector creates a new Detector for the given manifest file name.
// An empty name uses mix.exs.
func NewDetector(manifest string) *Detector {
	if manifest == "" {
		manifest = DefaultManifest
	}
	return &Detector{
		Manifest: manifest,
		Markers:  DefaultMarkers,
	}
}

// DetectProject checks if a directory holds a Mix project.
// Returns nil without error if the manifest is missing.
func (d *Detector) DetectProject(dir string) (*ProjectInfo, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, os.ErrNotExist
	}

	manifest := d.Manifest
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(absPath, manifest)
	}
	if !d.exists(manifest, false) {
		return nil, nil
	}

	project := &ProjectInfo{
		Path:         absPath,
		Name:         filepath.Base(absPath),
		ManifestPath: manifest,
		Markers:      []string{filepath.Base(manifest)},
	}

	for _, marker := range d.Markers {
		if !d.exists(filepath.Join(absPath, marker.Name), marker.IsDir) {
			continue
		}
		project.Markers = append(project.Markers, marker.Name)
		switch marker.Name {
		case "mix.lock":
			project.HasLockFile = true
		case "apps":
			project.IsUmbrella = true
		case ".git":
			project.IsGitRepo = true
		}
	}

	return project, nil
}

func (d *Detector) exists(path string, isDir bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() == isDir
}
