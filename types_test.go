package chatmd

import (
	"errors"
	"testing"
)

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings *PageSettings
		wantErr  error
	}{
		{name: "nil uses defaults", settings: nil},
		{name: "defaults", settings: DefaultPageSettings()},
		{name: "a4 min margin", settings: &PageSettings{Size: PageSizeA4, Margin: MinMargin}},
		{name: "legal max margin", settings: &PageSettings{Size: PageSizeLegal, Margin: MaxMargin}},
		{name: "unknown size", settings: &PageSettings{Size: "tabloid", Margin: 1}, wantErr: ErrInvalidPageSize},
		{name: "margin too small", settings: &PageSettings{Size: PageSizeLetter, Margin: 0.1}, wantErr: ErrInvalidMargin},
		{name: "margin too large", settings: &PageSettings{Size: PageSizeLetter, Margin: 3.5}, wantErr: ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.settings.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMode_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeFragment, ".html"},
		{ModePage, ".html"},
		{ModePDF, ".pdf"},
	}

	for _, tt := range tests {
		if got := tt.mode.Extension(); got != tt.want {
			t.Errorf("%s.Extension() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestConvertResult_Bytes(t *testing.T) {
	t.Parallel()

	res := &ConvertResult{Fragment: "f", HTML: []byte("h"), PDF: []byte("p")}

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeFragment, "f"},
		{"", "f"},
		{ModePage, "h"},
		{ModePDF, "p"},
	}

	for _, tt := range tests {
		if got := string(res.Bytes(tt.mode)); got != tt.want {
			t.Errorf("Bytes(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
