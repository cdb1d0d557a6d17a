package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the HUD and the viewer overlays. Bodies keep their own
// colours, so Selection and Preview are picked to stand apart from the
// saturated warm tones the presets use.
type Theme struct {
	Name string

	// Title and TitleEnd are the endpoints of the title gradient.
	Title    lipgloss.Color
	TitleEnd lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Running  lipgloss.Color
	Paused   lipgloss.Color
	Chart    lipgloss.Color

	// Selection rings the selected body and labels keys in the help text.
	Selection lipgloss.Color
	// Preview draws the pending body and its launch vector while dragging.
	Preview lipgloss.Color
}

var (
	ThemeVoid = Theme{
		Name:      "void",
		Title:     lipgloss.Color("#9d8cff"),
		TitleEnd:  lipgloss.Color("#5ee7df"),
		Text:      lipgloss.Color("#e6e6f0"),
		Muted:     lipgloss.Color("#5c5c70"),
		Running:   lipgloss.Color("#7ee081"),
		Paused:    lipgloss.Color("#f2b84b"),
		Chart:     lipgloss.Color("#5ee7df"),
		Selection: lipgloss.Color("#ffffff"),
		Preview:   lipgloss.Color("#5ee7df"),
	}

	ThemeAurora = Theme{
		Name:      "aurora",
		Title:     lipgloss.Color("#3ddc97"),
		TitleEnd:  lipgloss.Color("#b388ff"),
		Text:      lipgloss.Color("#e0fff4"),
		Muted:     lipgloss.Color("#3d6b5c"),
		Running:   lipgloss.Color("#3ddc97"),
		Paused:    lipgloss.Color("#ffd97d"),
		Chart:     lipgloss.Color("#b388ff"),
		Selection: lipgloss.Color("#e0fff4"),
		Preview:   lipgloss.Color("#b388ff"),
	}

	// Infrared is warm throughout; the overlays go cold for contrast.
	ThemeInfrared = Theme{
		Name:      "infrared",
		Title:     lipgloss.Color("#ff5e3a"),
		TitleEnd:  lipgloss.Color("#ffd23f"),
		Text:      lipgloss.Color("#ffe8d6"),
		Muted:     lipgloss.Color("#7a4a3a"),
		Running:   lipgloss.Color("#ffd23f"),
		Paused:    lipgloss.Color("#ff5e3a"),
		Chart:     lipgloss.Color("#ff8f3a"),
		Selection: lipgloss.Color("#5ef2ff"),
		Preview:   lipgloss.Color("#5ef2ff"),
	}

	ThemeBlueprint = Theme{
		Name:      "blueprint",
		Title:     lipgloss.Color("#7fb8ff"),
		TitleEnd:  lipgloss.Color("#d0e6ff"),
		Text:      lipgloss.Color("#d0e6ff"),
		Muted:     lipgloss.Color("#3a5a80"),
		Running:   lipgloss.Color("#7fdcb8"),
		Paused:    lipgloss.Color("#ffcf70"),
		Chart:     lipgloss.Color("#7fb8ff"),
		Selection: lipgloss.Color("#ffffff"),
		Preview:   lipgloss.Color("#ffcf70"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Title:     lipgloss.Color("#ffffff"),
		TitleEnd:  lipgloss.Color("#8a8a8a"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#6a6a6a"),
		Running:   lipgloss.Color("#ffffff"),
		Paused:    lipgloss.Color("#aaaaaa"),
		Chart:     lipgloss.Color("#bbbbbb"),
		Selection: lipgloss.Color("#ffffff"),
		Preview:   lipgloss.Color("#8a8a8a"),
	}

	// Themes in cycling order; the first is the default.
	Themes = []Theme{
		ThemeVoid,
		ThemeAurora,
		ThemeInfrared,
		ThemeBlueprint,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, or the first theme when name is unknown.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
