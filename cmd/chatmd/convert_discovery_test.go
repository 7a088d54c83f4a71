package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		outExt       string
		want         string
	}{
		{
			name:      "beside input",
			inputPath: filepath.Join("docs", "chat.md"),
			outExt:    ".html",
			want:      filepath.Join("docs", "chat.html"),
		},
		{
			name:      "pdf beside input",
			inputPath: filepath.Join("docs", "chat.txt"),
			outExt:    ".pdf",
			want:      filepath.Join("docs", "chat.pdf"),
		},
		{
			name:      "into output dir",
			inputPath: filepath.Join("docs", "chat.md"),
			outputDir: "out",
			outExt:    ".html",
			want:      filepath.Join("out", "chat.html"),
		},
		{
			name:      "explicit output file",
			inputPath: "chat.md",
			outputDir: filepath.Join("out", "final.PDF"),
			outExt:    ".pdf",
			want:      filepath.Join("out", "final.PDF"),
		},
		{
			name:         "relative dirs preserved",
			inputPath:    filepath.Join("in", "a", "b", "chat.markdown"),
			outputDir:    "out",
			baseInputDir: "in",
			outExt:       ".html",
			want:         filepath.Join("out", "a", "b", "chat.html"),
		},
		{
			name:         "file-like output dir in batch is a dir",
			inputPath:    filepath.Join("in", "chat.md"),
			outputDir:    "site.html",
			baseInputDir: "in",
			outExt:       ".html",
			want:         filepath.Join("site.html", "chat.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir, tt.outExt)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "chat.txt", "x")
		files, err := discoverFiles(path, "", ".html", nil)
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].InputPath != path {
			t.Errorf("discoverFiles() = %+v", files)
		}
	})

	t.Run("unsupported single file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "chat.pdf", "x")
		if _, err := discoverFiles(path, "", ".html", nil); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("discoverFiles() error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "x")
		writeFile(t, dir, "b.MARKDOWN", "x")
		writeFile(t, dir, "nested/c.txt", "x")
		writeFile(t, dir, "d.html", "x")

		files, err := discoverFiles(dir, "", ".pdf", nil)
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("discoverFiles() found %d files, want 3: %+v", len(files), files)
		}
		for _, f := range files {
			if filepath.Ext(f.OutputPath) != ".pdf" {
				t.Errorf("output %q should end in .pdf", f.OutputPath)
			}
		}
	})

	t.Run("exclude patterns", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "keep.md", "x")
		writeFile(t, dir, "drafts/skip.md", "x")
		writeFile(t, dir, "drafts/deep/skip.md", "x")
		writeFile(t, dir, "notes/old.txt", "x")
		writeFile(t, dir, "notes/new.md", "x")

		files, err := discoverFiles(dir, "", ".html", []string{"drafts/**", "**/*.txt"})
		if err != nil {
			t.Fatalf("discoverFiles() unexpected error: %v", err)
		}
		got := make(map[string]bool)
		for _, f := range files {
			rel, _ := filepath.Rel(dir, f.InputPath)
			got[filepath.ToSlash(rel)] = true
		}
		if len(got) != 2 || !got["keep.md"] || !got["notes/new.md"] {
			t.Errorf("discoverFiles() kept %v, want keep.md and notes/new.md", got)
		}
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(t.TempDir(), "", ".html", []string{"[unclosed"})
		if !errors.Is(err, ErrInvalidExclude) {
			t.Errorf("discoverFiles() error = %v, want ErrInvalidExclude", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "nope.md"), "", ".html", nil)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("discoverFiles() error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{n: 0},
		{n: 1},
		{n: 32},
		{n: -1, wantErr: true},
		{n: 33, wantErr: true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr != errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}
