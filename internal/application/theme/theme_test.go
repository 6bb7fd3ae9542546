package theme_test

import (
	"testing"

	"nexus/internal/application/theme"
)

// TestProvider_Normalize tests defaulting of stored values.
func TestProvider_Normalize(t *testing.T) {
	p := theme.NewProvider(theme.Light)

	tests := []struct {
		in   string
		want string
	}{
		{theme.Light, theme.Light},
		{theme.Dark, theme.Dark},
		{"", theme.Light},
		{"solarized", theme.Light},
	}
	for _, tt := range tests {
		if got := p.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	dark := theme.NewProvider(theme.Dark)
	if got := dark.Normalize(""); got != theme.Dark {
		t.Errorf("dark-default Normalize(\"\") = %q, want dark", got)
	}
}

// TestProvider_Toggle tests that toggling always flips to the other scheme.
func TestProvider_Toggle(t *testing.T) {
	p := theme.NewProvider(theme.Light)

	if got := p.Toggle(theme.Light); got != theme.Dark {
		t.Errorf("Toggle(light) = %q, want dark", got)
	}
	if got := p.Toggle(theme.Dark); got != theme.Light {
		t.Errorf("Toggle(dark) = %q, want light", got)
	}
	// Unknown input normalizes to the default first.
	if got := p.Toggle("banana"); got != theme.Dark {
		t.Errorf("Toggle(banana) = %q, want dark", got)
	}

	bad := theme.NewProvider("banana")
	if got := bad.Normalize(""); got != theme.Light {
		t.Errorf("invalid default should coerce to light, got %q", got)
	}
}
