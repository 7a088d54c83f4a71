package yamlutil_test

// Notes:
// - TestInputSizeLimit mutates the package-level MaxInputSize and therefore
//   does not call t.Parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-chatmd/internal/yamlutil"
)

type pageSection struct {
	Title string `yaml:"title"`
	Style string `yaml:"style"`
}

type testConfig struct {
	Workers int         `yaml:"workers"`
	Page    pageSection `yaml:"page"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		dest      any
		wantErr   error
		wantTitle string
	}{
		{name: "nested sections", data: "workers: 2\npage:\n  title: Report\n", dest: &testConfig{}, wantTitle: "Report"},
		{name: "unknown field ignored", data: "extra: 1\npage:\n  title: X\n", dest: &testConfig{}, wantTitle: "X"},
		{name: "unicode", data: "page:\n  title: 交通事故\n", dest: &testConfig{}, wantTitle: "交通事故"},
		{name: "empty data", data: "", dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: "workers: 1", dest: nil, wantErr: yamlutil.ErrNilDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal([]byte(tt.data), tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got := tt.dest.(*testConfig).Page.Title; got != tt.wantTitle {
				t.Errorf("Page.Title = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("workers: 3\npage:\n  style: compact\n"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if cfg.Workers != 3 || cfg.Page.Style != "compact" {
			t.Errorf("UnmarshalStrict() = %+v", cfg)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("page:\n  colour: red\n"), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix yamlutil:", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("page: [unclosed"), &cfg); err == nil {
			t.Fatal("UnmarshalStrict() expected syntax error")
		}
	})
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if got := yamlutil.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}

	plain := errors.New("plain failure")
	if got := yamlutil.FormatError(plain); !strings.Contains(got, "plain failure") {
		t.Errorf("FormatError(plain) = %q", got)
	}

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("workers: 1\nbogus: true\n"), &cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := yamlutil.FormatError(err); !strings.Contains(got, "bogus") {
		t.Errorf("FormatError() = %q, want it to mention the offending key", got)
	}
}

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50

	atLimit := make([]byte, 50)
	copy(atLimit, "workers: 1")
	var cfg testConfig
	if err := yamlutil.Unmarshal(atLimit, &cfg); errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("input at limit rejected: %v", err)
	}

	over := make([]byte, 100)
	for _, fn := range []func([]byte, any) error{yamlutil.Unmarshal, yamlutil.UnmarshalStrict} {
		err := fn(over, &cfg)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
		if err != nil && !strings.Contains(err.Error(), "100 bytes (max 50)") {
			t.Errorf("error %q should report sizes", err)
		}
	}
}
