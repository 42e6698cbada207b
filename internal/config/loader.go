// Package config provides configuration loading and management for mixadd.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	mixerrors "github.com/wexinc/mixadd/internal/errors"
)

const (
	// DefaultConfigFile is the config file name looked up in the project directory.
	DefaultConfigFile = ".mixadd.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MIXADD"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader. Every key is registered
// with its default so MIXADD_* environment variables apply even when no
// config file exists (e.g. MIXADD_REGISTRY_TIMEOUT=30s).
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := NewConfig()
	v.SetDefault("registry.url", defaults.Registry.URL)
	v.SetDefault("registry.timeout", defaults.Registry.Timeout)
	v.SetDefault("manifest.file", defaults.Manifest.File)
	v.SetDefault("commands.list", defaults.Commands.List)
	v.SetDefault("commands.fetch", defaults.Commands.Fetch)
	v.SetDefault("commands.format", defaults.Commands.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from an explicit path, which must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mixerrors.ConfigNotFound(path)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, mixerrors.ConfigParseError(path, err)
	}

	return l.decode(path)
}

// LoadConfigFromDir loads .mixadd.yaml from dir when present and falls back
// to defaults plus environment overrides otherwise.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(path); err == nil {
		return l.LoadConfig(path)
	}
	return l.decode(path)
}

func (l *Loader) decode(path string) (*Config, error) {
	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, mixerrors.ConfigParseError(path, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		if verrs, ok := err.(ValidationErrors); ok && len(verrs) > 0 {
			return nil, mixerrors.ConfigValidationError(verrs[0].Field, err.Error(), nil)
		}
		return nil, mixerrors.ConfigParseError(path, err)
	}

	return cfg, nil
}

// viperDecodeHook lets durations be written as strings like "15s".
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// Load is a convenience function that creates a new Loader. An empty path
// loads from the given project directory instead.
func Load(path, projectDir string) (*Config, error) {
	if path == "" {
		return NewLoader().LoadConfigFromDir(projectDir)
	}
	return NewLoader().LoadConfig(path)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return mixerrors.WithSuggestion(mixerrors.ErrConfig,
			"configuration file already exists: "+path,
			"Use --force to overwrite it.")
	}

	data, err := Marshal(NewConfig())
	if err != nil {
		return err
	}

	header := []byte("# mixadd configuration. Environment variables MIXADD_<SECTION>_<KEY> override these values.\n")
	return os.WriteFile(path, append(header, data...), 0644)
}
