package narrative

import (
	"math"

	"go.uber.org/zap"
)

// NavigateTo activates the named screen. Unknown names are ignored and
// reported as false. When record is set and the name differs from the
// history top it is pushed onto the history.
func (c *Controller) NavigateTo(name string, record bool) bool {
	sc, ok := c.story.Lookup(name)
	if !ok {
		c.logger.Debug("navigate to unknown screen", zap.String("screen", name))
		return false
	}
	c.active = sc.Name
	c.progress = progressFor(sc.Step, c.state.MaxStep)
	if record && c.state.Top() != name {
		c.state.History = append(c.state.History, name)
	}
	return true
}

// GoBack pops the current screen and shows the previous one.
func (c *Controller) GoBack() {
	if len(c.state.History) > 0 {
		c.state.History = c.state.History[:len(c.state.History)-1]
	}
	if len(c.state.History) == 0 {
		c.state.History = []string{c.story.Initial}
	}
	c.NavigateTo(c.state.Top(), false)
}

// Advance moves to the fixed successor of the current screen. Screens outside
// the linear order stay put.
func (c *Controller) Advance() bool {
	next, ok := c.story.Successor(c.active)
	if !ok {
		return false
	}
	return c.NavigateTo(next, true)
}

// Begin leaves the intro for the story's start screen.
func (c *Controller) Begin() bool {
	if c.story.Start == "" {
		return c.Advance()
	}
	return c.NavigateTo(c.story.Start, true)
}

func progressFor(step, maxStep int) int {
	if maxStep <= 1 {
		return 100
	}
	pct := int(math.Round(float64(step-1) / float64(maxStep-1) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
