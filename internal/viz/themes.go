package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for menus, bars and the speed slider.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Bar     lipgloss.Color
	Sorted  lipgloss.Color
	Active  lipgloss.Color
	Track   lipgloss.Color
	Knob    lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	// ThemeClassic uses white bars, green for the sorted prefix and red for
	// the compared pair.
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Dim:     lipgloss.Color("#444444"),
		Bar:     lipgloss.Color("#ffffff"),
		Sorted:  lipgloss.Color("#00ff00"),
		Active:  lipgloss.Color("#ff0000"),
		Track:   lipgloss.Color("#646464"),
		Knob:    lipgloss.Color("#c8c8c8"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"), // Magenta
		Accent:  lipgloss.Color("#00ffff"), // Cyan
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Dim:     lipgloss.Color("#444455"),
		Bar:     lipgloss.Color("#00ffff"),
		Sorted:  lipgloss.Color("#ff00ff"),
		Active:  lipgloss.Color("#ffff00"),
		Track:   lipgloss.Color("#444466"),
		Knob:    lipgloss.Color("#ff88ff"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // Green phosphor
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#008800"),
		Dim:     lipgloss.Color("#005500"),
		Bar:     lipgloss.Color("#00aa00"),
		Sorted:  lipgloss.Color("#88ff88"),
		Active:  lipgloss.Color("#ffff00"),
		Track:   lipgloss.Color("#005500"),
		Knob:    lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Dim:     lipgloss.Color("#444444"),
		Bar:     lipgloss.Color("#cccccc"),
		Sorted:  lipgloss.Color("#ffffff"),
		Active:  lipgloss.Color("#0088ff"),
		Track:   lipgloss.Color("#444444"),
		Knob:    lipgloss.Color("#ffffff"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"), // Ocean blue
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Dim:     lipgloss.Color("#224455"),
		Bar:     lipgloss.Color("#00a8cc"),
		Sorted:  lipgloss.Color("#00ff88"),
		Active:  lipgloss.Color("#ff4444"),
		Track:   lipgloss.Color("#224455"),
		Knob:    lipgloss.Color("#ffd700"),
		Error:   lipgloss.Color("#ff4444"),
	}

	// All available themes, in cycle order
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t in cycle order.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
