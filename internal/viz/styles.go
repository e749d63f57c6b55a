package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))

	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// Styles are the lipgloss styles of a theme.
type Styles struct {
	Card       lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	Option     lipgloss.Style
	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	Note       lipgloss.Style
	Disabled   lipgloss.Style
	Reveal     lipgloss.Style
	RevealText lipgloss.Style
	Hint       lipgloss.Style
	Toast      lipgloss.Style
}

// NewStyles builds the styles of t.
func NewStyles(t Theme) Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Body:     lipgloss.NewStyle().Foreground(t.Text),
		Option:   lipgloss.NewStyle().Foreground(t.Muted),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Background).Background(t.Primary).Padding(0, 1),
		Note:     lipgloss.NewStyle().Italic(true).Foreground(t.Secondary).MarginTop(1),
		Disabled: lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		Reveal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Primary).
			Padding(1, 2),
		RevealText: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Hint:       lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Toast:      lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
	}
}

// GradientText colors each rune of text along an RGB blend from start to
// end. Colors that do not parse as hex fall back to plain text.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err := colorful.Hex(string(start))
	if err != nil {
		return text
	}
	to, err := colorful.Hex(string(end))
	if err != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := lipgloss.Color(Blend(from, to, t))
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return b.String()
}

// Blend returns the hex color at t in [0, 1] between from and to.
func Blend(from, to colorful.Color, t float64) string {
	return from.BlendRgb(to, t).Clamped().Hex()
}

// ProgressBar renders a static progress bar for percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return SparkHigh.Render(bar)
	} else if percent > 0.4 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

// Separator renders a decorative rule.
func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
