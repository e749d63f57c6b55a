package narrative

import (
	"math/rand"
	"testing"

	"github.com/onsi/gomega"
	"github.com/san-kum/storycards/internal/story"
)

func TestHistoryNeverEmpty(t *testing.T) {
	g := gomega.NewWithT(t)
	rng := rand.New(rand.NewSource(7))
	s := story.Default()
	c := New(s)

	kinds := []IntentKind{IntentBegin, IntentBack, IntentAdvance, IntentSelect, IntentChooseFinal, IntentRestart}
	for i := 0; i < 5000; i++ {
		in := Intent{Kind: kinds[rng.Intn(len(kinds))]}
		if in.Kind == IntentSelect {
			in.Screen = c.Active().Name
			if opts := c.Active().Options; len(opts) > 0 {
				in.Option = opts[rng.Intn(len(opts))].ID
			}
		}
		c.Dispatch(in)

		st := c.State()
		g.Expect(st.History).NotTo(gomega.BeEmpty())
		g.Expect(st.Top()).To(gomega.Equal(c.Active().Name))
		g.Expect(c.Progress()).To(gomega.BeNumerically(">=", 0))
		g.Expect(c.Progress()).To(gomega.BeNumerically("<=", 100))
	}
}

func TestProgressFor(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(progressFor(1, 6)).To(gomega.Equal(0))
	g.Expect(progressFor(6, 6)).To(gomega.Equal(100))
	g.Expect(progressFor(0, 6)).To(gomega.Equal(0))
	g.Expect(progressFor(9, 6)).To(gomega.Equal(100))
	g.Expect(progressFor(1, 1)).To(gomega.Equal(100))

	prev := -1
	for step := 1; step <= 6; step++ {
		p := progressFor(step, 6)
		g.Expect(p).To(gomega.BeNumerically(">=", prev))
		prev = p
	}
}

func TestIntentKindString(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(IntentChooseFinal.String()).To(gomega.Equal("choose-final"))
	g.Expect(IntentKind(42).String()).To(gomega.Equal("intent(42)"))
}

func TestDispatchUnknownKind(t *testing.T) {
	g := gomega.NewWithT(t)
	c := New(story.Default())
	out := c.Dispatch(Intent{Kind: IntentKind(99)})
	g.Expect(out).To(gomega.Equal(Outcome{}))
	g.Expect(c.Active().Name).To(gomega.Equal("intro"))
}
