package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name under the XDG config directory.
const DefaultConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the YAML configuration file. Numeric fields are pointers so
// that an explicit zero can be told apart from an absent key.
type File struct {
	Interface      string `yaml:"interface"`
	Backend        string `yaml:"backend"`
	Format         string `yaml:"format"`
	Bars           *int   `yaml:"bars"`
	MinStrength    *int   `yaml:"min_strength"`
	MaxStrength    *int   `yaml:"max_strength"`
	ReferencePower *int   `yaml:"reference_power"`
}

// Settings is the resolved configuration for one run.
type Settings struct {
	Interface      string
	Backend        string
	Format         string
	Bars           int
	MinStrength    int
	MaxStrength    int
	ReferencePower int
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Interface:      DefaultInterface,
		Backend:        DefaultBackend,
		Format:         DefaultFormat,
		Bars:           DefaultBars,
		MinStrength:    MinStrength,
		MaxStrength:    MaxStrength,
		ReferencePower: ReferencePower,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/widar/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// Load reads a configuration file. A missing file yields ErrConfigNotFound.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Resolve loads settings from path, or from DefaultPath when path is empty.
// Only a missing default file is tolerated.
func Resolve(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	f, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && !explicit {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return f.Apply(Defaults()), nil
}

// Apply overlays the values set in f onto s.
func (f *File) Apply(s Settings) Settings {
	if f == nil {
		return s
	}
	if f.Interface != "" {
		s.Interface = f.Interface
	}
	if f.Backend != "" {
		s.Backend = f.Backend
	}
	if f.Format != "" {
		s.Format = f.Format
	}
	if f.Bars != nil {
		s.Bars = *f.Bars
	}
	if f.MinStrength != nil {
		s.MinStrength = *f.MinStrength
	}
	if f.MaxStrength != nil {
		s.MaxStrength = *f.MaxStrength
	}
	if f.ReferencePower != nil {
		s.ReferencePower = *f.ReferencePower
	}
	return s
}
