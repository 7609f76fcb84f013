package render

// Theme is a fixed color palette. The two themes differ only in palette,
// never in geometry.
type Theme struct {
	Name   string
	Text   string
	Muted  string
	Border string
	CardBg string
	Accent string

	// Colors is the accent cycle used for the overview counters.
	Colors []string
}

var (
	// Dark is the default github dark palette.
	Dark = Theme{
		Name:   "dark",
		Text:   "#e6edf3",
		Muted:  "#8b949e",
		Border: "#30363d",
		CardBg: "#161b22",
		Accent: "#58a6ff",
		Colors: []string{"#58a6ff", "#3fb950", "#a371f7", "#f78166", "#e3b341", "#79c0ff"},
	}

	// Light is the github light palette.
	Light = Theme{
		Name:   "light",
		Text:   "#24292f",
		Muted:  "#656d76",
		Border: "#d0d7de",
		CardBg: "#f6f8fa",
		Accent: "#0969da",
		Colors: []string{"#0969da", "#1a7f37", "#8250df", "#d1242f", "#9a6700", "#0550ae"},
	}
)

// Themes returns all palettes a run renders.
func Themes() []Theme {
	return []Theme{Dark, Light}
}
