package icon

// Icon names form a closed palette. The admin form offers exactly these
// names and the lookup below maps each one through a fixed table; an
// unknown name falls back to the default rather than failing a render.
const (
	Code    = "code"
	Chip    = "chip"
	Robot   = "robot"
	Cloud   = "cloud"
	Shield  = "shield"
	Globe   = "globe"
	Palette = "palette"
	Chart   = "chart"
)

// Names contains every valid icon name, in display order.
var Names = []string{Code, Chip, Robot, Cloud, Shield, Globe, Palette, Chart}

// Entry describes one icon in the palette.
type Entry struct {
	Label string // human-readable label for pickers
	Glyph string // codepoint used by non-graphical presenters
}

var registry = map[string]Entry{
	Code:    {Label: "Code", Glyph: "⌨"},
	Chip:    {Label: "Hardware", Glyph: "⚙"},
	Robot:   {Label: "Robotics", Glyph: "⚗"},
	Cloud:   {Label: "Cloud", Glyph: "☁"},
	Shield:  {Label: "Security", Glyph: "⛨"},
	Globe:   {Label: "Web", Glyph: "⚐"},
	Palette: {Label: "Design", Glyph: "✎"},
	Chart:   {Label: "Analytics", Glyph: "↗"},
}

// Valid reports whether name is part of the palette.
func Valid(name string) bool {
	_, ok := registry[name]
	return ok
}

// Lookup returns the entry for name, falling back to the Code entry for
// unknown names.
// POST: second return is false when the fallback was used
func Lookup(name string) (Entry, bool) {
	if e, ok := registry[name]; ok {
		return e, true
	}
	return registry[Code], false
}
