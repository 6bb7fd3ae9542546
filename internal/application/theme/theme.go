package theme

// Site-wide colour scheme. The provider is created once in main and passed
// to the HTTP adapter; persistence (a cookie) lives with the adapter so the
// provider itself stays a pure value object.
const (
	Light = "light"
	Dark  = "dark"
)

// Provider resolves and flips the process-wide theme preference.
type Provider struct {
	fallback string
}

// NewProvider creates a Provider with the given default scheme.
// An invalid default is coerced to Light.
func NewProvider(fallback string) *Provider {
	if fallback != Dark {
		fallback = Light
	}
	return &Provider{fallback: fallback}
}

// Normalize maps any stored value onto a valid scheme, applying the default
// for unknown or empty input.
func (p *Provider) Normalize(v string) string {
	if v == Light || v == Dark {
		return v
	}
	return p.fallback
}

// Toggle flips between the two schemes. Unknown input is normalized first,
// so toggling always yields a valid scheme.
func (p *Provider) Toggle(current string) string {
	if p.Normalize(current) == Light {
		return Dark
	}
	return Light
}
