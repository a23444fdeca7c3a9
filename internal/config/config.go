// Package config loads site configuration for the mdsite CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultPath is where Load looks when no config flag is given.
const DefaultPath = "mdsite.yaml"

// Config holds all configuration for site generation.
type Config struct {
	Content   string `yaml:"content"`   // Markdown source dir
	Static    string `yaml:"static"`    // static asset dir ("" = none)
	Output    string `yaml:"output"`    // generated site dir
	Template  string `yaml:"template"`  // page template path ("" = embedded default)
	BasePath  string `yaml:"basePath"`  // prefix for root-relative URLs
	Highlight string `yaml:"highlight"` // chroma style name ("" = disabled)
	Workers   int    `yaml:"workers"`   // parallel page workers (0 = auto)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Content:  "content",
		Static:   "static",
		Output:   "public",
		BasePath: "/",
	}
}

// Load reads configuration from path, applying file values over
// defaults. Returns ErrConfigNotFound if the file does not exist
// (no silent fallback: an explicit path must resolve).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// LoadOrDefault loads DefaultPath when it exists, else returns Default.
func LoadOrDefault() (*Config, error) {
	if _, err := os.Stat(DefaultPath); err != nil {
		return Default(), nil
	}
	return Load(DefaultPath)
}
