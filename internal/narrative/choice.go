package narrative

import "go.uber.org/zap"

// Select records the chosen option on a choice screen, moves the selected
// marker to it, shows its feedback and enables forward navigation.
//
// An option id without feedback is still recorded; the note is cleared.
func (c *Controller) Select(screen, option string) {
	view, ok := c.choices[screen]
	if !ok {
		c.logger.Debug("select on unknown choice screen", zap.String("screen", screen))
		return
	}
	sc, _ := c.story.Lookup(screen)

	c.state.Answers[screen] = option
	view.Selected = option
	view.Note = ""
	if o, ok := sc.Option(option); ok {
		view.Note = o.Feedback
	} else {
		c.logger.Debug("unrecognized option", zap.String("screen", screen), zap.String("option", option))
	}
	view.ForwardEnabled = true
}

// ForwardEnabled reports whether the forward control of a screen is active.
// Screens that do not gate on a choice are always enabled.
func (c *Controller) ForwardEnabled(screen string) bool {
	if view, ok := c.choices[screen]; ok {
		return view.ForwardEnabled
	}
	return true
}
