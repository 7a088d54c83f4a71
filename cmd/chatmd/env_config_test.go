package main

// Notes:
// - These tests set process environment variables and are not parallel.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-chatmd/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("CHATMD_MODE", "page")
	t.Setenv("CHATMD_STYLE", "compact")
	t.Setenv("CHATMD_TIMEOUT", "45s")
	t.Setenv("CHATMD_PAGE_SIZE", "a4")
	t.Setenv("CHATMD_WORKERS", "3")

	env := loadEnvConfig()
	if env.Mode != "page" || env.Style != "compact" || env.Timeout != "45s" || env.PageSize != "a4" {
		t.Errorf("loadEnvConfig() = %+v", env)
	}
	if env.Workers != 3 {
		t.Errorf("Workers = %d, want 3", env.Workers)
	}
}

func TestLoadEnvConfig_InvalidWorkersIgnored(t *testing.T) {
	for _, v := range []string{"abc", "0", "-2"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("CHATMD_WORKERS", v)
			if got := loadEnvConfig().Workers; got != 0 {
				t.Errorf("Workers = %d, want 0 for %q", got, v)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Page.Style = "from-file"
	cfg.Output.DefaultDir = "file-out"

	applyEnvConfig(&envConfig{Style: "from-env", InputDir: "in", Workers: 4}, cfg)

	if cfg.Page.Style != "from-env" {
		t.Errorf("Style = %q, want from-env", cfg.Page.Style)
	}
	if cfg.Output.DefaultDir != "file-out" {
		t.Errorf("OutputDir = %q, unset env should keep config", cfg.Output.DefaultDir)
	}
	if cfg.Input.DefaultDir != "in" || cfg.Workers != 4 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("CHATMD_MODE", "page")
	t.Setenv("CHATMD_MDOE", "page")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "CHATMD_MDOE") {
		t.Errorf("expected warning for CHATMD_MDOE, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "CHATMD_MODE ") {
		t.Errorf("known variable should not warn: %q", buf.String())
	}
}
