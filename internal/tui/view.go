package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/storycards/internal/story"
	"github.com/san-kum/storycards/internal/viz"
)

const headerHeight = 2

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.footer())

	view := b.String()
	if m.engine.Active() {
		view = viz.Overlay(view, m.canvas)
	}
	return view
}

func (m Model) header() string {
	sc := m.ctrl.Active()
	step := fmt.Sprintf(" %d/%d", sc.Step, m.ctrl.Story().MaxStep())
	bar := m.bar.ViewAs(float64(m.ctrl.Progress()) / 100)
	line := bar + m.styles.Hint.Render(step)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m Model) footer() string {
	status := m.status
	if fw := m.ctrl.Farewell(); fw != "" {
		status = m.styles.Toast.Render(fw)
	} else if status != "" {
		status = m.styles.Hint.Render(status)
	}
	return status + "\n" + m.help.View(m.keys)
}

func (m Model) footerHeight() int {
	if m.help.ShowAll {
		return 1 + len(m.keys.FullHelp()[0])
	}
	return 2
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if limit := m.opts.Display.MaxCardWidth; limit > 0 && w > limit {
		w = limit
	}
	if w < 20 {
		w = 20
	}
	return w
}

// refresh re-renders the scrollable content and records where the reveal
// panel starts.
func (m *Model) refresh() {
	card := m.renderCard()
	content := card
	m.revealLine = lipgloss.Height(card)
	if r := m.renderReveal(); r != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, card, r)
	}
	m.vp.SetContent(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))
}

func (m Model) renderCard() string {
	sc := m.ctrl.Active()
	inner := m.cardWidth() - m.styles.Card.GetHorizontalFrameSize()

	parts := []string{
		m.styles.Title.Render(viz.GradientText(sc.Title, m.opts.Theme.Primary, m.opts.Theme.Accent)),
		m.styles.Body.Width(inner).Render(strings.TrimSpace(sc.Body)),
	}
	if len(sc.Options) > 0 {
		parts = append(parts, "", m.renderOptions(sc))
	}
	if sc.HasChoices() {
		if note := m.ctrl.Choice(sc.Name).Note; note != "" {
			parts = append(parts, m.styles.Note.Width(inner).Render(note))
		}
	}
	parts = append(parts, "", m.renderHint(sc))

	return m.styles.Card.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderOptions(sc story.Screen) string {
	selected := ""
	if sc.HasChoices() {
		selected = m.ctrl.Choice(sc.Name).Selected
	}
	lines := make([]string, len(sc.Options))
	for i, opt := range sc.Options {
		marker := "  "
		if i == m.cursor {
			marker = m.styles.Cursor.Render("› ")
		}
		label := fmt.Sprintf("%d. %s", i+1, opt.Label)
		switch {
		case opt.ID == selected:
			label = m.styles.Selected.Render(label)
		case i == m.cursor:
			label = m.styles.Cursor.Render(label)
		default:
			label = m.styles.Option.Render(label)
		}
		lines[i] = marker + label
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHint(sc story.Screen) string {
	switch {
	case sc.Name == m.ctrl.Story().Initial:
		return m.styles.Hint.Render("enter to begin")
	case sc.Final:
		if m.ctrl.Reveal().Visible {
			return m.styles.Hint.Render("r to start over")
		}
		return m.styles.Hint.Render("choose your answer")
	case sc.HasChoices() && !m.ctrl.ForwardEnabled(sc.Name):
		return m.styles.Disabled.Render("next →")
	case sc.Next != "":
		return m.styles.Hint.Render("n next →")
	}
	return ""
}

func (m Model) renderReveal() string {
	if !m.revealShown() {
		return ""
	}
	r := m.ctrl.Reveal()
	inner := m.cardWidth() - m.styles.Reveal.GetHorizontalFrameSize()
	parts := []string{m.styles.RevealText.Width(inner).Render(r.Text)}
	if r.AudioVisible {
		parts = append(parts, "", m.styles.Option.Render("[p] "+r.AudioLabel))
	}
	parts = append(parts, m.styles.Option.Render("[c] close"))
	return m.styles.Reveal.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
