package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel(): they call t.Setenv and
//   replace the package-level IsInContainer.

import (
	"path/filepath"
	"strings"
	"testing"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		t.Setenv(name, "")
	}
}

func stubContainer(t *testing.T, inContainer bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return inContainer }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		ci          string
		container   bool
		noSandbox   string
		browserBin  string
		wantSandbox bool
		wantBin     bool
	}{
		{name: "in CI", ci: "true", wantSandbox: true, wantBin: true},
		{name: "in docker", container: true, wantSandbox: true, wantBin: true},
		{name: "sandbox already disabled", ci: "true", noSandbox: "1", wantBin: true},
		{name: "browser configured", browserBin: "/usr/bin/chromium"},
		{name: "all configured in CI", ci: "true", noSandbox: "1", browserBin: "/usr/bin/chromium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCIEnv(t)
			stubContainer(t, tt.container)
			t.Setenv("CI", tt.ci)
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", hint)
			}
			if got := strings.Contains(hint, "ROD_NO_SANDBOX"); got != tt.wantSandbox {
				t.Errorf("ROD_NO_SANDBOX suggested = %v, want %v (%q)", got, tt.wantSandbox, hint)
			}
			if got := strings.Contains(hint, "ROD_BROWSER_BIN"); got != tt.wantBin {
				t.Errorf("ROD_BROWSER_BIN suggested = %v, want %v (%q)", got, tt.wantBin, hint)
			}
			if !strings.Contains(hint, "--mode page") {
				t.Errorf("hint %q should offer page mode", hint)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "u", ".config", "go-chatmd", "work.yaml")

	tests := []struct {
		name     string
		searched []string
		contains string
		excludes string
	}{
		{name: "no paths", searched: nil, contains: "--config", excludes: "create"},
		{name: "local only", searched: []string{"work.yaml"}, contains: "--config", excludes: "create"},
		{name: "user path suggested", searched: []string{"work.yaml", userPath}, contains: "create " + userPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.searched)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("ForConfigNotFound() = %q, want containing %q", got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("ForConfigNotFound() = %q, should not contain %q", got, tt.excludes)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"compact", "default"})
	if !strings.Contains(got, "available: compact, default") {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
}

func TestForUnsupportedInput(t *testing.T) {
	t.Parallel()

	if got := ForUnsupportedInput(nil); got != "" {
		t.Errorf("ForUnsupportedInput(nil) = %q, want empty", got)
	}

	got := ForUnsupportedInput([]string{".md", ".txt"})
	if !strings.Contains(got, ".md, .txt") || !strings.Contains(got, "stdin") {
		t.Errorf("ForUnsupportedInput() = %q", got)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"timeout":          ForTimeout(),
		"output directory": ForOutputDirectory(),
		"config":           ForConfigNotFound(nil),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint %q missing prefix", name, hint)
		}
		if strings.Count(hint, "hint:") != 1 {
			t.Errorf("%s hint %q should contain exactly one hint marker", name, hint)
		}
	}

	if format("") != "" || formatHints(nil) != "" {
		t.Error("empty hints should format to empty string")
	}
}
