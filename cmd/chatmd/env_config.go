package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-chatmd/internal/config"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "CHATMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CHATMD_CONFIG: config file name or path
	Mode       string // CHATMD_MODE: fragment, page, pdf
	Style      string // CHATMD_STYLE: CSS style name or path
	Timeout    string // CHATMD_TIMEOUT: PDF generation timeout
	InputDir   string // CHATMD_INPUT_DIR: default input directory
	OutputDir  string // CHATMD_OUTPUT_DIR: default output directory
	PageSize   string // CHATMD_PAGE_SIZE: letter, a4, legal
	AssetPath  string // CHATMD_ASSET_PATH: custom asset directory
	Workers    int    // CHATMD_WORKERS: parallel workers
}

// knownEnvVars lists valid CHATMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHATMD_CONFIG":     true,
	"CHATMD_MODE":       true,
	"CHATMD_STYLE":      true,
	"CHATMD_TIMEOUT":    true,
	"CHATMD_INPUT_DIR":  true,
	"CHATMD_OUTPUT_DIR": true,
	"CHATMD_PAGE_SIZE":  true,
	"CHATMD_ASSET_PATH": true,
	"CHATMD_WORKERS":    true,
	"CHATMD_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CHATMD_CONFIG"),
		Mode:       os.Getenv("CHATMD_MODE"),
		Style:      os.Getenv("CHATMD_STYLE"),
		Timeout:    os.Getenv("CHATMD_TIMEOUT"),
		InputDir:   os.Getenv("CHATMD_INPUT_DIR"),
		OutputDir:  os.Getenv("CHATMD_OUTPUT_DIR"),
		PageSize:   os.Getenv("CHATMD_PAGE_SIZE"),
		AssetPath:  os.Getenv("CHATMD_ASSET_PATH"),
	}

	// Non-numeric or non-positive values are ignored
	if workers := os.Getenv("CHATMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CHATMD_* variables.
// Helps catch typos like CHATMD_STYEL instead of CHATMD_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are merged afterwards
// by mergeFlags and override both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Output.Mode = env.Mode
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.PDF.Size = env.PageSize
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
