package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme of the cards.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeRose = Theme{
		Name:       "rose",
		Primary:    lipgloss.Color("#ff6b8b"),
		Secondary:  lipgloss.Color("#ffb3c1"),
		Accent:     lipgloss.Color("#ffd166"),
		Background: lipgloss.Color("#1f0f16"),
		Text:       lipgloss.Color("#fff5f7"),
		Muted:      lipgloss.Color("#8b6b74"),
	}

	ThemeMidnight = Theme{
		Name:       "midnight",
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#bb9af7"),
		Accent:     lipgloss.Color("#e0af68"),
		Background: lipgloss.Color("#0f1020"),
		Text:       lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#b5485d"),
		Secondary:  lipgloss.Color("#6d597a"),
		Accent:     lipgloss.Color("#e56b6f"),
		Background: lipgloss.Color("#fdf6ec"),
		Text:       lipgloss.Color("#2b2118"),
		Muted:      lipgloss.Color("#9a8c7a"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"),
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeRose,
		ThemeMidnight,
		ThemePaper,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to rose.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRose
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// BackgroundRGBA converts the theme background for raster output.
func (t Theme) BackgroundRGBA() color.NRGBA {
	r, g, b := parseHex(string(t.Background))
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
