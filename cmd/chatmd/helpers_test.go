package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-chatmd"
)

// mockConverter returns mode-tagged output without touching a browser.
type mockConverter struct {
	mu     sync.Mutex
	err    error
	inputs []chatmd.Input
}

func (m *mockConverter) Convert(_ context.Context, in chatmd.Input) (*chatmd.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &chatmd.ConvertResult{
		Fragment: "fragment:" + in.Message,
		HTML:     []byte("page:" + in.Message),
		PDF:      []byte("%PDF:" + in.Message),
	}, nil
}

// mockPool hands out one shared converter.
type mockPool struct {
	conv       CLIConverter
	acquireErr error
	size       int
	closed     bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int {
	if p.size < 1 {
		return 1
	}
	return p.size
}

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// newTestEnv returns an environment writing to buffers, backed by the real
// converter pool. Fragment and page modes never start a browser.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &stderr,
		NewPool: newConverterPool,
	}
	return env, &stdout, &stderr
}

// withMockPool points env at pool and returns it.
func withMockPool(env *Environment, pool *mockPool) *mockPool {
	env.NewPool = func(int, ...chatmd.Option) Pool { return pool }
	return pool
}

// writeFile creates dir/name with content, including parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
