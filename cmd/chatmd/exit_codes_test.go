package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown", err: errors.New("x"), want: ExitGeneral},
		{name: "browser", err: fmt.Errorf("generating PDF: %w", chatmd.ErrBrowserConnect), want: ExitBrowser},
		{name: "pdf generation", err: chatmd.ErrPDFGeneration, want: ExitBrowser},
		{name: "not exist", err: fmt.Errorf("discovering: %w", os.ErrNotExist), want: ExitIO},
		{name: "write output", err: ErrWriteOutput, want: ExitIO},
		{name: "read style", err: chatmd.ErrReadStyle, want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "config parse", err: fmt.Errorf("loading config: %w", config.ErrConfigParse), want: ExitUsage},
		{name: "invalid value", err: config.ErrInvalidValue, want: ExitUsage},
		{name: "invalid mode", err: chatmd.ErrInvalidMode, want: ExitUsage},
		{name: "margin", err: chatmd.ErrInvalidMargin, want: ExitUsage},
		{name: "style", err: chatmd.ErrStyleNotFound, want: ExitUsage},
		{name: "extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "exclude pattern", err: ErrInvalidExclude, want: ExitUsage},
		{name: "workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "batch wrapping keeps class", err: fmt.Errorf("2 conversion(s) failed: %w", chatmd.ErrPageLoad), want: ExitBrowser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "browser", err: chatmd.ErrBrowserConnect, want: "--mode page"},
		{name: "timeout", err: context.DeadlineExceeded, want: "--timeout"},
		{name: "write", err: ErrWriteOutput, want: "writable"},
		{name: "extension", err: ErrInvalidExtension, want: ".md, .markdown, .txt"},
		{name: "none", err: errors.New("x"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
