package narrative

// Reset returns the session to its initial state. It is idempotent.
func (c *Controller) Reset() {
	for _, view := range c.choices {
		*view = ChoiceView{}
	}

	c.reveal = RevealView{AudioLabel: LabelPlay}
	c.farewell = ""
	c.audioFailed = false
	if c.player != nil {
		c.player.Pause()
		c.rewind()
	}

	c.state.History = []string{c.story.Initial}
	c.state.Answers = make(map[string]string)
	c.NavigateTo(c.story.Initial, false)
}
