// Package config loads the phonetics CLI configuration.
//
// The file is YAML and lives at $PHONETICS_CONFIG, or else under
// os.UserConfigDir():
//
//	~/Library/Application Support/phonetics/config.yaml   (macOS)
//	~/.config/phonetics/config.yaml                       (Linux)
//	%AppData%/phonetics/config.yaml                       (Windows)
//
// Example:
//
//	notation: ipa
//	output_notation: x-sampa
//	format: table
//	normalization: nfc
//	log_level: info
//
// A missing file is not an error; every key has a default. Command-line
// flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/phonetics/internal/logging"
	"github.com/katalvlaran/phonetics/transcription"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "PHONETICS_CONFIG"

	appDir   = "phonetics"
	fileName = "config.yaml"
)

// Output formats accepted by Format.
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds user defaults for the CLI.
type Config struct {
	// Notation is the notation input text is written in.
	Notation string `yaml:"notation,omitempty"`

	// OutputNotation is the target of convert.
	OutputNotation string `yaml:"output_notation,omitempty"`

	// Format is the describe output format: yaml, json or table.
	Format string `yaml:"format,omitempty"`

	// Normalization is the Unicode form of encoded output: nfc or nfd.
	Normalization string `yaml:"normalization,omitempty"`

	// LogLevel is debug, info, warn or error. Empty defers to LOG_LEVEL.
	LogLevel string `yaml:"log_level,omitempty"`

	// path is the file the config was read from, empty for defaults.
	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Notation:       transcription.IPA.String(),
		OutputNotation: transcription.DefaultNotation.String(),
		Format:         FormatYAML,
		Normalization:  "nfc",
	}
}

// Path returns the config file location.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}

	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the file at path, or at Path() when path is empty, over the
// defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Source returns the file the config was loaded from, or "" for defaults.
func (c *Config) Source() string { return c.path }

// Validate checks every key.
func (c *Config) Validate() error {
	if _, err := transcription.ParseNotation(c.Notation); err != nil {
		return fmt.Errorf("notation: %w", err)
	}
	if _, err := transcription.ParseNotation(c.OutputNotation); err != nil {
		return fmt.Errorf("output_notation: %w", err)
	}
	switch c.Format {
	case FormatYAML, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("format: unsupported %q", c.Format)
	}
	switch strings.ToLower(c.Normalization) {
	case "nfc", "nfd":
	default:
		return fmt.Errorf("normalization: unsupported %q", c.Normalization)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// Form returns the configured output normalization form.
func (c *Config) Form() norm.Form {
	if strings.EqualFold(c.Normalization, "nfd") {
		return norm.NFD
	}

	return norm.NFC
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
