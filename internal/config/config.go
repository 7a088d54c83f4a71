package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName names the per-user config directory.
const AppName = "go-chatmd"

// Output modes.
const (
	ModeFragment = "fragment" // formatted message only
	ModePage     = "page"     // standalone HTML document
	ModePDF      = "pdf"      // page printed through a headless browser
)

// Page sizes accepted by pdf.size.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// PDF margin bounds, in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// MaxWorkers caps the worker pool size.
const MaxWorkers = 32

// Field length limits.
const (
	MaxTitleLength     = 200
	MaxStyleLength     = 2048 // style name or path to a CSS file
	MaxStyleNameLength = 50   // chroma style name
	MaxPathLength      = 4096
	MaxTimeoutLength   = 20 // "2m30s"
)

// Config holds all configuration for message conversion.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Page    PageConfig   `yaml:"page"`
	Assets  AssetsConfig `yaml:"assets"`
	PDF     PDFConfig    `yaml:"pdf"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Mode       string `yaml:"mode"`       // "fragment", "page", "pdf" (default: "fragment")
}

// PageConfig defines standalone page options, shared by page and pdf modes.
type PageConfig struct {
	Title          string `yaml:"title"`          // Empty = first heading, then file name
	Style          string `yaml:"style"`          // Style name or CSS file path (empty = "default")
	NoStyle        bool   `yaml:"noStyle"`        // Emit the page without CSS
	Highlight      bool   `yaml:"highlight"`      // Syntax-highlight code blocks
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style name (default: "github")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig defines PDF page settings.
type PDFConfig struct {
	Size    string  `yaml:"size"`    // "letter", "a4", "legal" (default: "letter")
	Margin  float64 `yaml:"margin"`  // inches (default: 0.5)
	Timeout string  `yaml:"timeout"` // Go duration per render (default: 30s)
}

// Validate checks lengths, enum values and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.style", c.Page.Style, MaxStyleLength},
		{"page.highlightStyle", c.Page.HighlightStyle, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Mode != "" && !IsValidMode(c.Output.Mode) {
		return fmt.Errorf("%w: output.mode %q (must be fragment, page, or pdf)", ErrInvalidValue, c.Output.Mode)
	}

	if c.PDF.Size != "" && !IsValidPageSize(c.PDF.Size) {
		return fmt.Errorf("%w: pdf.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.PDF.Size)
	}
	if c.PDF.Margin != 0 && (c.PDF.Margin < MinMargin || c.PDF.Margin > MaxMargin) {
		return fmt.Errorf("%w: pdf.margin must be between %.2f and %.1f, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.PDF.Margin)
	}
	if c.PDF.Timeout != "" {
		if _, err := c.PDF.TimeoutDuration(); err != nil {
			return err
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// TimeoutDuration parses pdf.timeout. An empty value yields zero.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, p.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout must be positive, got %s", ErrInvalidValue, p.Timeout)
	}
	return d, nil
}

// IsValidMode reports whether mode is a known output mode (case-insensitive).
func IsValidMode(mode string) bool {
	switch strings.ToLower(mode) {
	case ModeFragment, ModePage, ModePDF:
		return true
	}
	return false
}

// IsValidPageSize reports whether size is a known page size (case-insensitive).
func IsValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Mode: ModeFragment},
		PDF:    PDFConfig{Size: PageSizeLetter, Margin: DefaultMargin},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s\n%s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists, in lookup order, the files tried for a config name:
// current directory, then {UserConfigDir}/go-chatmd/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, AppName))
	}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	candidates := SearchPaths(name)
	for _, candidate := range candidates {
		if fileutil.FileExists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}
