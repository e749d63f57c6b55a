package narrative

import (
	"github.com/san-kum/storycards/internal/story"
	"go.uber.org/zap"
)

// Audio control labels.
const (
	LabelPlay  = "▶ Play voice note"
	LabelPause = "⏸ Pause"
)

// Player is a playable audio clip.
type Player interface {
	Play() error
	Pause()
	Rewind() error
	IsPlaying() bool
}

// ProbeFunc prepares the optional audio clip. A non-nil error hides the
// audio control for the rest of the session.
type ProbeFunc func() (Player, error)

// State is the navigation record shared by all handlers.
type State struct {
	History []string
	Answers map[string]string
	MaxStep int
}

// Top returns the current history entry.
func (s State) Top() string {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[len(s.History)-1]
}

// ChoiceView is the visible state of a choice screen.
type ChoiceView struct {
	Selected       string
	Note           string
	ForwardEnabled bool
}

// RevealView is the visible state of the reveal panel.
type RevealView struct {
	Visible      bool
	Text         string
	AudioVisible bool
	AudioLabel   string
}

// Outcome lists the host side effects requested by an operation.
type Outcome struct {
	ScrollTop      bool
	ScrollToReveal bool
	Burst          bool
}

// Controller owns the state of one narrative session.
type Controller struct {
	story    *story.Story
	logger   *zap.Logger
	state    State
	active   string
	progress int
	choices  map[string]*ChoiceView
	reveal   RevealView
	farewell string

	probe       ProbeFunc
	player      Player
	audioFailed bool

	handlers map[IntentKind]handler
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for non-fatal conditions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAudio sets the probe for the optional audio clip.
func WithAudio(p ProbeFunc) Option {
	return func(c *Controller) { c.probe = p }
}

// New creates a controller positioned on the story's initial screen.
func New(s *story.Story, opts ...Option) *Controller {
	c := &Controller{
		story:  s,
		logger: zap.NewNop(),
		state: State{
			History: []string{s.Initial},
			Answers: make(map[string]string),
			MaxStep: s.MaxStep(),
		},
		choices: make(map[string]*ChoiceView),
		reveal:  RevealView{AudioLabel: LabelPlay},
	}
	for _, name := range s.ChoiceScreens() {
		c.choices[name] = &ChoiceView{}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.handlers = defaultHandlers()
	c.NavigateTo(s.Initial, false)
	return c
}

// Story returns the screen registry.
func (c *Controller) Story() *story.Story { return c.story }

// State returns a copy of the navigation record.
func (c *Controller) State() State {
	answers := make(map[string]string, len(c.state.Answers))
	for k, v := range c.state.Answers {
		answers[k] = v
	}
	return State{
		History: append([]string(nil), c.state.History...),
		Answers: answers,
		MaxStep: c.state.MaxStep,
	}
}

// Active returns the displayed screen.
func (c *Controller) Active() story.Screen {
	sc, _ := c.story.Lookup(c.active)
	return sc
}

// Progress returns the progress indicator percentage.
func (c *Controller) Progress() int { return c.progress }

// Choice returns the visible state of a choice screen.
func (c *Controller) Choice(screen string) ChoiceView {
	if v, ok := c.choices[screen]; ok {
		return *v
	}
	return ChoiceView{}
}

// Reveal returns the visible state of the reveal panel.
func (c *Controller) Reveal() RevealView { return c.reveal }

// Farewell returns the closing message, empty until the close intent.
func (c *Controller) Farewell() string { return c.farewell }
