package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		style    string
		wantErr  error
		contains string
	}{
		{name: "default style", style: DefaultStyleName, contains: ".message"},
		{name: "compact style", style: "compact", contains: "page-break"},
		{name: "unknown style", style: "nope", wantErr: ErrStyleNotFound},
		{name: "traversal rejected", style: "../styles/default", wantErr: ErrInvalidAssetName},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("LoadStyle(%q) missing %q", tt.style, tt.contains)
			}
		})
	}
}

func TestEmbeddedLoader_ListStyles(t *testing.T) {
	t.Parallel()

	names, err := NewEmbeddedLoader().ListStyles()
	if err != nil {
		t.Fatalf("ListStyles() unexpected error: %v", err)
	}

	want := []string{"compact", "default"}
	if !slices.Equal(names, want) {
		t.Errorf("ListStyles() = %v, want %v", names, want)
	}
}
