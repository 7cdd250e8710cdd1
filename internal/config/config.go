// Package config loads the fpwiz configuration file
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config stores persistent settings
type Config struct {
	Output OutputConfig `toml:"output"`
	Text   TextConfig   `toml:"text"`
	View   ViewConfig   `toml:"view"`

	// Defaults holds per-wizard parameter overrides keyed by wizard name,
	// then by "Page.param name".
	Defaults map[string]map[string]any `toml:"defaults,omitempty"`
}

// OutputConfig controls where generated footprints are written
type OutputConfig struct {
	LibraryDir string `toml:"library_dir"`
	Library    string `toml:"library"`
}

// TextConfig is the host text policy handed to wizards
type TextConfig struct {
	SizeMM      float64 `toml:"size_mm"`
	ThicknessMM float64 `toml:"thickness_mm"`
	Reference   string  `toml:"reference"`
}

// ViewConfig controls the preview window
type ViewConfig struct {
	Theme  string `toml:"theme"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Output: OutputConfig{LibraryDir: "."},
		Text:   TextConfig{SizeMM: 1.0, ThicknessMM: 0.15, Reference: "REF**"},
		View:   ViewConfig{Theme: "Classic", Width: 1200, Height: 600},
	}
}

// DefaultPath returns the platform config file location
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "OpenTraceFootprint", "config.toml"), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opentracefootprint", "config.toml"), nil
}

// Load reads the config at path on top of the defaults. An empty path means
// DefaultPath, and a missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of the defaults. Unknown keys are errors.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Text.SizeMM <= 0 {
		errs = append(errs, fmt.Errorf("text.size_mm must be positive, got %g", c.Text.SizeMM))
	}
	if c.Text.ThicknessMM <= 0 {
		errs = append(errs, fmt.Errorf("text.thickness_mm must be positive, got %g", c.Text.ThicknessMM))
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size must be positive, got %dx%d", c.View.Width, c.View.Height))
	}
	return errors.Join(errs...)
}

// Encode writes c as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes c to path, creating the directory if needed
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WizardDefaults returns the overrides configured for a wizard, matching the
// name case-insensitively.
func (c *Config) WizardDefaults(name string) map[string]any {
	for k, v := range c.Defaults {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return nil
}
