package viz

import "github.com/charmbracelet/lipgloss"

// Theme maps bar roles and status text to colors.
type Theme struct {
	Name string

	Idle   lipgloss.Color
	Probed lipgloss.Color
	Probe  lipgloss.Color
	Window lipgloss.Color
	Mid    lipgloss.Color
	Found  lipgloss.Color

	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// Available themes
var (
	ThemeLab = Theme{
		Name:    "lab",
		Idle:    lipgloss.Color("#CC0000"), // Red
		Probed:  lipgloss.Color("#F1C232"), // Yellow
		Probe:   lipgloss.Color("#6AA84F"), // Green
		Window:  lipgloss.Color("#4A86E8"), // Blue
		Mid:     lipgloss.Color("#FF9900"), // Orange
		Found:   lipgloss.Color("#8E44AD"), // Purple
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#6AA84F"),
		Error:   lipgloss.Color("#CC0000"),
		Info:    lipgloss.Color("#4A86E8"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Idle:    lipgloss.Color("#444466"),
		Probed:  lipgloss.Color("#ffff00"),
		Probe:   lipgloss.Color("#00ff00"),
		Window:  lipgloss.Color("#00ffff"),
		Mid:     lipgloss.Color("#ff8800"),
		Found:   lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
		Info:    lipgloss.Color("#00ffff"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Idle:    lipgloss.Color("#005500"), // Green phosphor
		Probed:  lipgloss.Color("#00aa00"),
		Probe:   lipgloss.Color("#88ff88"),
		Window:  lipgloss.Color("#00cc00"),
		Mid:     lipgloss.Color("#ffff00"),
		Found:   lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ff0000"),
		Info:    lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Idle:    lipgloss.Color("#444444"),
		Probed:  lipgloss.Color("#888888"),
		Probe:   lipgloss.Color("#cccccc"),
		Window:  lipgloss.Color("#0088ff"),
		Mid:     lipgloss.Color("#ffaa00"),
		Found:   lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
		Info:    lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Idle:    lipgloss.Color("#4488aa"),
		Probed:  lipgloss.Color("#ffd700"),
		Probe:   lipgloss.Color("#00ff88"),
		Window:  lipgloss.Color("#0077be"), // Ocean blue
		Mid:     lipgloss.Color("#ffcc00"),
		Found:   lipgloss.Color("#ff4444"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
		Info:    lipgloss.Color("#00a8cc"),
	}

	// All available themes
	Themes = []Theme{
		ThemeLab,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the lab colors.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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

// Color returns the theme color for a bar role.
func (t Theme) Color(r Role) lipgloss.Color {
	switch r {
	case RoleProbed:
		return t.Probed
	case RoleProbe:
		return t.Probe
	case RoleWindow:
		return t.Window
	case RoleMid:
		return t.Mid
	case RoleFound:
		return t.Found
	default:
		return t.Idle
	}
}
