package narrative_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/storycards/internal/narrative"
	"github.com/san-kum/storycards/internal/story"
)

type fakePlayer struct {
	playing  bool
	position int
	closed   bool
	playErr  error
}

func (p *fakePlayer) Play() error {
	if p.playErr != nil {
		return p.playErr
	}
	p.playing = true
	p.position++
	return nil
}

func (p *fakePlayer) Pause()          { p.playing = false }
func (p *fakePlayer) Rewind() error   { p.position = 0; return nil }
func (p *fakePlayer) IsPlaying() bool { return p.playing }
func (p *fakePlayer) Close() error     { p.closed = true; return nil }

func selectIntent(screen, option string) narrative.Intent {
	return narrative.Intent{Kind: narrative.IntentSelect, Screen: screen, Option: option}
}

var _ = Describe("Controller", func() {
	var (
		s *story.Story
		c *narrative.Controller
	)

	BeforeEach(func() {
		s = story.Default()
		c = narrative.New(s)
	})

	Describe("navigation", func() {
		It("starts on the initial screen with zero progress", func() {
			Expect(c.Active().Name).To(Equal("intro"))
			Expect(c.State().History).To(Equal([]string{"intro"}))
			Expect(c.Progress()).To(Equal(0))
		})

		It("begins at the start screen and records it", func() {
			out := c.Dispatch(narrative.Intent{Kind: narrative.IntentBegin})
			Expect(out.ScrollTop).To(BeTrue())
			Expect(c.Active().Name).To(Equal("step1"))
			Expect(c.State().History).To(Equal([]string{"intro", "step1"}))
			Expect(c.Progress()).To(Equal(20))
		})

		It("ignores unknown screens", func() {
			Expect(c.NavigateTo("nowhere", true)).To(BeFalse())
			Expect(c.Active().Name).To(Equal("intro"))
			Expect(c.State().History).To(Equal([]string{"intro"}))
		})

		It("does not push the current screen twice", func() {
			c.NavigateTo("intro", true)
			Expect(c.State().History).To(HaveLen(1))
		})

		It("follows the successor table", func() {
			c.NavigateTo("step1", true)
			for _, want := range []string{"step2", "step3", "step4", "final"} {
				Expect(c.Advance()).To(BeTrue())
				Expect(c.Active().Name).To(Equal(want))
			}
			Expect(c.Advance()).To(BeFalse())
			Expect(c.Active().Name).To(Equal("final"))
			Expect(c.Progress()).To(Equal(100))
		})

		It("does not advance from the intro", func() {
			Expect(c.Advance()).To(BeFalse())
			Expect(c.Active().Name).To(Equal("intro"))
		})

		It("goes back without re-recording", func() {
			c.Dispatch(narrative.Intent{Kind: narrative.IntentBegin})
			c.Dispatch(selectIntent("step1", "date"))
			c.Dispatch(narrative.Intent{Kind: narrative.IntentAdvance})
			Expect(c.Active().Name).To(Equal("step2"))

			c.Dispatch(narrative.Intent{Kind: narrative.IntentBack})
			Expect(c.Active().Name).To(Equal("step1"))
			Expect(c.State().History).To(Equal([]string{"intro", "step1"}))
		})

		It("falls back to the initial screen when history runs out", func() {
			c.GoBack()
			c.GoBack()
			Expect(c.State().History).To(Equal([]string{"intro"}))
			Expect(c.Active().Name).To(Equal("intro"))
		})

		It("gates advance on a selection", func() {
			c.Dispatch(narrative.Intent{Kind: narrative.IntentBegin})
			out := c.Dispatch(narrative.Intent{Kind: narrative.IntentAdvance})
			Expect(out.ScrollTop).To(BeFalse())
			Expect(c.Active().Name).To(Equal("step1"))
		})
	})

	Describe("choices", func() {
		It("keeps only the latest selection", func() {
			c.Select("step1", "ignore")
			c.Select("step1", "date")

			view := c.Choice("step1")
			Expect(view.Selected).To(Equal("date"))
			Expect(view.Note).To(Equal("Best decision of the last eight years. ❤️"))
			Expect(view.ForwardEnabled).To(BeTrue())
			Expect(c.State().Answers).To(HaveKeyWithValue("step1", "date"))
		})

		// Unrecognized ids are accepted with an empty note. This may be an
		// oversight in the content contract; the behavior is kept as is.
		It("accepts an unrecognized option with an empty note", func() {
			c.Select("step2", "stay")
			c.Select("step2", "bogus")

			view := c.Choice("step2")
			Expect(view.Selected).To(Equal("bogus"))
			Expect(view.Note).To(BeEmpty())
			Expect(view.ForwardEnabled).To(BeTrue())
		})

		It("ignores unknown screens", func() {
			c.Select("nowhere", "date")
			Expect(c.State().Answers).To(BeEmpty())
		})
	})

	Describe("final reveal", func() {
		BeforeEach(func() {
			c.NavigateTo("final", true)
		})

		It("reveals the yes1 text and requests a burst", func() {
			out := c.Dispatch(narrative.Intent{Kind: narrative.IntentChooseFinal, Option: "yes1"})
			Expect(out.Burst).To(BeTrue())
			Expect(out.ScrollToReveal).To(BeTrue())

			r := c.Reveal()
			Expect(r.Visible).To(BeTrue())
			Expect(r.Text).To(Equal("And I would always choose you. Thank you for being my wife and the mother of our children. ❤️"))
		})

		It("reveals a different text for yes2", func() {
			c.ChooseFinal("yes2")
			Expect(c.Reveal().Text).To(Equal("And a million times again. With you, with our kids, with this life of ours. I love you. ❤️"))
		})

		It("leaves the text unchanged for unrecognized ids", func() {
			c.ChooseFinal("yes1")
			before := c.Reveal().Text
			c.ChooseFinal("maybe")
			Expect(c.Reveal().Visible).To(BeTrue())
			Expect(c.Reveal().Text).To(Equal(before))
		})

		It("hides audio without a probe", func() {
			c.ChooseFinal("yes1")
			Expect(c.Reveal().AudioVisible).To(BeFalse())
		})

		It("shows the close message", func() {
			c.Dispatch(narrative.Intent{Kind: narrative.IntentClose})
			Expect(c.Farewell()).To(Equal("❤️"))
			c.Dispatch(narrative.Intent{Kind: narrative.IntentBack})
			Expect(c.Farewell()).To(BeEmpty())
		})
	})

	Describe("audio", func() {
		var (
			player *fakePlayer
			probes int
		)

		BeforeEach(func() {
			player = &fakePlayer{}
			probes = 0
		})

		It("toggles playback and the label", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) {
				probes++
				return player, nil
			}))
			c.ChooseFinal("yes1")
			Expect(c.Reveal().AudioVisible).To(BeTrue())
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))

			c.Dispatch(narrative.Intent{Kind: narrative.IntentToggleAudio})
			Expect(player.playing).To(BeTrue())
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPause))

			c.Dispatch(narrative.Intent{Kind: narrative.IntentToggleAudio})
			Expect(player.playing).To(BeFalse())
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))

			c.ChooseFinal("yes2")
			Expect(probes).To(Equal(1))
		})

		It("rewinds and resets the label when the clip ends", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) { return player, nil }))
			c.ChooseFinal("yes1")
			c.ToggleAudio()
			player.playing = false
			c.SyncAudio()
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))
			Expect(player.position).To(Equal(0))

			c.ToggleAudio()
			Expect(player.playing).To(BeTrue())
			Expect(player.position).To(Equal(1))
		})

		It("replays a finished clip from the start before the next poll", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) { return player, nil }))
			c.ChooseFinal("yes1")
			c.ToggleAudio()
			player.playing = false

			c.ToggleAudio()
			Expect(player.playing).To(BeTrue())
			Expect(player.position).To(Equal(1))
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPause))
		})

		It("resumes a paused clip where it stopped", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) { return player, nil }))
			c.ChooseFinal("yes1")
			c.ToggleAudio()
			c.ToggleAudio()
			c.SyncAudio()
			c.ToggleAudio()
			Expect(player.position).To(Equal(2))
		})

		It("releases the clip and probes again on the next reveal", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) {
				probes++
				return player, nil
			}))
			Expect(c.Release()).To(Succeed())
			Expect(player.closed).To(BeFalse())

			c.ChooseFinal("yes1")
			Expect(c.Release()).To(Succeed())
			Expect(player.closed).To(BeTrue())
			Expect(c.Playing()).To(BeFalse())

			c.ChooseFinal("yes2")
			Expect(probes).To(Equal(2))
		})

		It("ignores refused playback", func() {
			player.playErr = errors.New("autoplay blocked")
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) { return player, nil }))
			c.ChooseFinal("yes1")
			c.ToggleAudio()
			Expect(c.Reveal().AudioVisible).To(BeTrue())
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))
		})

		It("hides the control for the session when the probe fails", func() {
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) {
				probes++
				return nil, errors.New("missing")
			}))
			c.ChooseFinal("yes1")
			c.ChooseFinal("yes2")
			Expect(c.Reveal().AudioVisible).To(BeFalse())
			Expect(probes).To(Equal(1))

			c.ToggleAudio()
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))
		})
	})

	Describe("reset", func() {
		var player *fakePlayer

		expectInitial := func() {
			st := c.State()
			Expect(st.History).To(Equal([]string{"intro"}))
			Expect(st.Answers).To(BeEmpty())
			Expect(c.Active().Name).To(Equal("intro"))
			for _, name := range s.ChoiceScreens() {
				Expect(c.Choice(name)).To(Equal(narrative.ChoiceView{}))
				Expect(c.ForwardEnabled(name)).To(BeFalse())
			}
			Expect(c.Reveal().Visible).To(BeFalse())
			Expect(c.Reveal().AudioLabel).To(Equal(narrative.LabelPlay))
			Expect(player.playing).To(BeFalse())
			Expect(player.position).To(Equal(0))
		}

		BeforeEach(func() {
			player = &fakePlayer{}
			c = narrative.New(s, narrative.WithAudio(func() (narrative.Player, error) { return player, nil }))
		})

		It("restores the initial state after a full run", func() {
			c.Dispatch(narrative.Intent{Kind: narrative.IntentBegin})
			for _, step := range []struct{ screen, option string }{
				{"step1", "date"}, {"step2", "stay"}, {"step3", "joy"}, {"step4", "worth"},
			} {
				c.Dispatch(selectIntent(step.screen, step.option))
				c.Dispatch(narrative.Intent{Kind: narrative.IntentAdvance})
			}
			Expect(c.Active().Name).To(Equal("final"))
			c.Dispatch(narrative.Intent{Kind: narrative.IntentChooseFinal, Option: "yes2"})
			c.Dispatch(narrative.Intent{Kind: narrative.IntentToggleAudio})
			Expect(player.playing).To(BeTrue())

			c.Dispatch(narrative.Intent{Kind: narrative.IntentRestart})
			expectInitial()
		})

		It("is idempotent", func() {
			c.Select("step3", "panic")
			c.Reset()
			c.Reset()
			expectInitial()
		})
	})
})
