// Package config provides configuration data structures for mixadd.
package config

import (
	"net/url"
	"path/filepath"
	"time"
)

// Config represents the complete mixadd configuration loaded from .mixadd.yaml.
type Config struct {
	Registry RegistryConfig `yaml:"registry" json:"registry" mapstructure:"registry"`
	Manifest ManifestConfig `yaml:"manifest" json:"manifest" mapstructure:"manifest"`
	Commands CommandsConfig `yaml:"commands" json:"commands" mapstructure:"commands"`
}

// RegistryConfig configures the package registry client.
type RegistryConfig struct {
	// URL is the package search endpoint (default: hex.pm packages API).
	URL string `yaml:"url" json:"url" mapstructure:"url"`
	// Timeout bounds the search request. Zero disables the bound.
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// ManifestConfig configures the dependency manifest location.
type ManifestConfig struct {
	// File is the manifest path relative to the project directory (default: mix.exs).
	File string `yaml:"file" json:"file" mapstructure:"file"`
}

// CommandsConfig configures the external build tool commands.
// Each command runs through "sh -c" in the project directory. An empty
// command skips that step.
type CommandsConfig struct {
	// List prints locked dependency versions (default: mix deps).
	List string `yaml:"list" json:"list" mapstructure:"list"`
	// Fetch downloads dependencies after the manifest is edited (default: mix deps.get).
	Fetch string `yaml:"fetch" json:"fetch" mapstructure:"fetch"`
	// Format formats the project after fetching (default: mix format).
	Format string `yaml:"format" json:"format" mapstructure:"format"`
}

// Default values.
const (
	DefaultRegistryURL     = "https://hex.pm/api/packages"
	DefaultRegistryTimeout = 15 * time.Second
	DefaultManifestFile    = "mix.exs"
	DefaultListCommand     = "mix deps"
	DefaultFetchCommand    = "mix deps.get"
	DefaultFormatCommand   = "mix format"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			URL:     DefaultRegistryURL,
			Timeout: DefaultRegistryTimeout,
		},
		Manifest: ManifestConfig{
			File: DefaultManifestFile,
		},
		Commands: CommandsConfig{
			List:   DefaultListCommand,
			Fetch:  DefaultFetchCommand,
			Format: DefaultFormatCommand,
		},
	}
}

// ApplyDefaults fills in unset registry and manifest fields.
// Commands are left alone so an empty command can disable a step.
func (c *Config) ApplyDefaults() {
	if c.Registry.URL == "" {
		c.Registry.URL = DefaultRegistryURL
	}
	if c.Manifest.File == "" {
		c.Manifest.File = DefaultManifestFile
	}
}

// ManifestPath resolves the manifest file against the project directory.
func (c *Config) ManifestPath(projectDir string) string {
	if filepath.IsAbs(c.Manifest.File) {
		return c.Manifest.File
	}
	return filepath.Join(projectDir, c.Manifest.File)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if u, err := url.Parse(c.Registry.URL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, &ValidationError{Field: "registry.url", Message: "must be an absolute http(s) URL"})
	}
	if c.Registry.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "registry.timeout", Message: "must be non-negative"})
	}
	if c.Manifest.File == "" {
		errs = append(errs, &ValidationError{Field: "manifest.file", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// yamlConfig mirrors Config with durations rendered as strings.
type yamlConfig struct {
	Registry struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"registry"`
	Manifest ManifestConfig `yaml:"manifest"`
	Commands CommandsConfig `yaml:"commands"`
}

// MarshalYAML renders the timeout as a duration string so the output can
// be loaded back.
func (c Config) MarshalYAML() (any, error) {
	var out yamlConfig
	out.Registry.URL = c.Registry.URL
	out.Registry.Timeout = c.Registry.Timeout.String()
	out.Manifest = c.Manifest
	out.Commands = c.Commands
	return out, nil
}
