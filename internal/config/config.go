// Package config loads the optional YAML configuration of the spellcards CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-spellcards/internal/fileutil"
	"github.com/alnah/go-spellcards/internal/render"
	"github.com/alnah/go-spellcards/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength  = 4096
	MaxClassLength = 100
	MaxInputFiles  = 256
)

// AppDirName is the directory under os.UserConfigDir searched for configs.
const AppDirName = "spellcards"

// DefaultSpellFile is the sample record file read when no input is given.
const DefaultSpellFile = "spells_german/spells.json"

// DefaultTimeout bounds PDF printing.
const DefaultTimeout = "30s"

// Formats lists the accepted output.format values.
var Formats = []string{"tex", "html", "pdf"}

// Config holds all configuration for deck generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Filter    FilterConfig    `yaml:"filter"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Layout    LayoutConfig    `yaml:"layout"`
	PDF       PDFConfig       `yaml:"pdf"`
}

// InputConfig defines record sources.
type InputConfig struct {
	Files []string `yaml:"files"` // Merged in order, later files win
}

// FilterConfig defines record selection.
type FilterConfig struct {
	Class string `yaml:"class"` // Empty = all records
}

// OutputConfig defines the output document.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Empty = current directory
	Format string `yaml:"format"` // tex, html or pdf
}

// TemplatesConfig defines template lookup.
type TemplatesConfig struct {
	Dir string `yaml:"dir"` // Empty = embedded templates only
}

// LayoutConfig mirrors render.Layout.
type LayoutConfig struct {
	Padding    int `yaml:"padding"`
	PageStep   int `yaml:"pageStep"`
	SliceWidth int `yaml:"sliceWidth"`
}

// PDFConfig defines PDF printing options.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// RenderLayout converts the layout section.
func (l LayoutConfig) RenderLayout() render.Layout {
	return render.Layout{
		Padding:    l.Padding,
		PageStep:   l.PageStep,
		SliceWidth: l.SliceWidth,
	}
}

// TimeoutDuration parses pdf.timeout. Empty means DefaultTimeout.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	s := p.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, s)
	}
	return d, nil
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers that
// merge flags into a Config.
func (c *Config) Validate() error {
	if len(c.Input.Files) > MaxInputFiles {
		return fmt.Errorf("%w: input.files (%d entries, max %d)", ErrFieldTooLong, len(c.Input.Files), MaxInputFiles)
	}
	for i, f := range c.Input.Files {
		if f == "" {
			return fmt.Errorf("%w: input.files[%d] is empty", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("input.files[%d]", i), f, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("filter.class", c.Filter.Class, MaxClassLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("templates.dir", c.Templates.Dir, MaxPathLength); err != nil {
		return err
	}

	if c.Output.Format != "" && !slices.Contains(Formats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("%w: output.format %q (must be %s)", ErrInvalidValue, c.Output.Format, strings.Join(Formats, ", "))
	}

	if err := c.Layout.RenderLayout().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if _, err := c.PDF.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	layout := render.DefaultLayout()
	return &Config{
		Input:  InputConfig{Files: []string{DefaultSpellFile}},
		Output: OutputConfig{Dir: "", Format: "tex"},
		Layout: LayoutConfig{
			Padding:    layout.Padding,
			PageStep:   layout.PageStep,
			SliceWidth: layout.SliceWidth,
		},
		PDF: PDFConfig{Timeout: DefaultTimeout},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files tried for a config name, in lookup order:
// the current directory, then <user config dir>/spellcards/, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
