// Package tui hosts a narrative session in the terminal.
//
// Key presses become [narrative.Intent] values; the [narrative.Outcome] of
// each dispatch is turned into viewport scrolling and confetti bursts. The
// burst runs as a chain of frame ticks carrying its generation, so a newer
// burst silently ends the older chain.
package tui

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/storycards/internal/config"
	"github.com/san-kum/storycards/internal/confetti"
	"github.com/san-kum/storycards/internal/narrative"
	"github.com/san-kum/storycards/internal/viz"
	"go.uber.org/zap"
)

const audioPollInterval = 250 * time.Millisecond

// Options configures the terminal host.
type Options struct {
	Theme     viz.Theme
	Display   config.DisplayConfig
	Logger    *zap.Logger
	Rand      *rand.Rand
	Clipboard func(string) error
	Now       func() time.Time
}

type frameMsg struct {
	gen uint64
	t   time.Time
}

type safetyClearMsg struct{ gen uint64 }

type audioTickMsg struct{}

// Model is the Bubble Tea model of a session.
type Model struct {
	ctrl   *narrative.Controller
	opts   Options
	styles viz.Styles
	keys   keyMap
	help   help.Model
	bar    progress.Model
	vp     viewport.Model

	canvas *viz.Canvas
	engine *confetti.Engine

	screen     string
	cursor     int
	revealLine int
	status     string

	width  int
	height int
}

// New creates a model for ctrl.
func New(ctrl *narrative.Controller, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = viz.GetTheme(config.DefaultTheme)
	}
	if opts.Display.FPS <= 0 {
		opts.Display = config.DefaultConfig().Display
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	canvas := viz.NewCanvas(0, 0)
	m := Model{
		ctrl:   ctrl,
		opts:   opts,
		styles: viz.NewStyles(opts.Theme),
		keys:   defaultKeyMap(),
		help:   help.New(),
		bar: progress.New(
			progress.WithGradient(string(opts.Theme.Secondary), string(opts.Theme.Primary)),
			progress.WithoutPercentage(),
		),
		vp:     viewport.New(80, 20),
		canvas: canvas,
		engine: confetti.New(canvas, opts.Rand),
		screen: ctrl.Active().Name,
		width:  80,
		height: 24,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Controller returns the session controller.
func (m Model) Controller() *narrative.Controller { return m.ctrl }

// Engine returns the particle engine.
func (m Model) Engine() *confetti.Engine { return m.engine }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		if m.engine.Frame(msg.gen, msg.t) {
			return m, m.frame(msg.gen)
		}
		return m, nil
	case safetyClearMsg:
		m.engine.SafetyClear(msg.gen)
		return m, nil
	case audioTickMsg:
		m.ctrl.SyncAudio()
		m.refresh()
		if m.ctrl.Playing() {
			return m, audioTick()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	sc := m.ctrl.Active()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(sc.Options)-1 {
			m.cursor++
			m.refresh()
		}
	case key.Matches(msg, m.keys.Pick):
		if len(sc.Options) == 0 {
			return m.forward()
		}
		return m.pick(m.cursor)
	case key.Matches(msg, m.keys.Digit):
		i, _ := strconv.Atoi(msg.String())
		return m.pick(i - 1)
	case key.Matches(msg, m.keys.Advance):
		return m.forward()
	case key.Matches(msg, m.keys.Back):
		return m.dispatch(narrative.Intent{Kind: narrative.IntentBack})
	case key.Matches(msg, m.keys.Audio):
		if m.revealShown() {
			next, cmd := m.dispatch(narrative.Intent{Kind: narrative.IntentToggleAudio})
			if next.ctrl.Playing() {
				return next, tea.Batch(cmd, audioTick())
			}
			return next, cmd
		}
	case key.Matches(msg, m.keys.Close):
		if m.revealShown() {
			return m.dispatch(narrative.Intent{Kind: narrative.IntentClose})
		}
	case key.Matches(msg, m.keys.Restart):
		return m.dispatch(narrative.Intent{Kind: narrative.IntentRestart})
	case key.Matches(msg, m.keys.Copy):
		m.copyReveal()
	}
	return m, nil
}

// forward leaves the intro or follows the successor of the current screen.
func (m Model) forward() (Model, tea.Cmd) {
	if m.ctrl.Active().Name == m.ctrl.Story().Initial {
		return m.dispatch(narrative.Intent{Kind: narrative.IntentBegin})
	}
	return m.dispatch(narrative.Intent{Kind: narrative.IntentAdvance})
}

func (m Model) pick(i int) (Model, tea.Cmd) {
	sc := m.ctrl.Active()
	if i < 0 || i >= len(sc.Options) {
		return m, nil
	}
	m.cursor = i
	opt := sc.Options[i]
	if sc.Final {
		return m.dispatch(narrative.Intent{Kind: narrative.IntentChooseFinal, Option: opt.ID})
	}
	return m.dispatch(narrative.Intent{Kind: narrative.IntentSelect, Screen: sc.Name, Option: opt.ID})
}

func (m Model) dispatch(in narrative.Intent) (Model, tea.Cmd) {
	out := m.ctrl.Dispatch(in)
	if active := m.ctrl.Active().Name; active != m.screen {
		m.screen = active
		m.cursor = 0
	}
	m.status = ""
	m.opts.Logger.Debug("intent",
		zap.Stringer("kind", in.Kind),
		zap.String("option", in.Option),
		zap.String("screen", m.screen),
		zap.Int("progress", m.ctrl.Progress()),
	)
	m.refresh()
	return m.apply(out)
}

func (m Model) apply(out narrative.Outcome) (Model, tea.Cmd) {
	if out.ScrollTop {
		m.vp.GotoTop()
	}
	if out.ScrollToReveal {
		m.vp.SetYOffset(m.revealLine)
	}
	if !out.Burst {
		return m, nil
	}
	w, h := m.viewportPixels()
	gen := m.engine.Burst(m.opts.Now(), w, h, m.opts.Display.DotScale())
	m.opts.Logger.Debug("burst", zap.Uint64("generation", gen))
	return m, tea.Batch(m.frame(gen), safetyClear(gen))
}

// revealShown reports whether the reveal panel is on screen. It only
// belongs to the final screen, even while the reveal stays visible.
func (m Model) revealShown() bool {
	return m.ctrl.Active().Final && m.ctrl.Reveal().Visible
}

func (m *Model) copyReveal() {
	r := m.ctrl.Reveal()
	if !m.revealShown() || r.Text == "" {
		return
	}
	if err := m.opts.Clipboard(r.Text); err != nil {
		m.opts.Logger.Warn("clipboard unavailable", zap.Error(err))
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied"
}

// viewportPixels is the terminal size in logical pixels.
func (m Model) viewportPixels() (float64, float64) {
	return float64(m.width * m.opts.Display.CellWidth), float64(m.height * m.opts.Display.CellHeight)
}

func (m *Model) layout() {
	w, h := m.viewportPixels()
	m.engine.Resize(w, h, m.opts.Display.DotScale())

	m.help.Width = m.width
	m.bar.Width = m.cardWidth() - 12
	if m.bar.Width < 10 {
		m.bar.Width = 10
	}
	m.vp.Width = m.width
	m.vp.Height = m.height - headerHeight - m.footerHeight()
	if m.vp.Height < 1 {
		m.vp.Height = 1
	}
	m.refresh()
}

func (m Model) frame(gen uint64) tea.Cmd {
	return tea.Tick(m.opts.Display.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, t: t}
	})
}

func safetyClear(gen uint64) tea.Cmd {
	return tea.Tick(confetti.Duration+confetti.SafetyDelay, func(time.Time) tea.Msg {
		return safetyClearMsg{gen: gen}
	})
}

func audioTick() tea.Cmd {
	return tea.Tick(audioPollInterval, func(time.Time) tea.Msg { return audioTickMsg{} })
}
