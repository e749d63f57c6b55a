// Package story holds the static content of a narrative: its screens, the
// options offered on each of them and the fixed successor order between them.
//
// Stories are immutable once loaded. The default story is embedded in the
// binary; alternative content can be loaded from YAML with [Load].
package story

import "sort"

// Option is a single selectable answer on a screen. Choice screens carry
// Feedback, the final screen carries Reveal.
type Option struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Feedback string `yaml:"feedback,omitempty"`
	Reveal   string `yaml:"reveal,omitempty"`
}

// Screen is one full-view card of the narrative.
type Screen struct {
	Name    string   `yaml:"name"`
	Step    int      `yaml:"step"`
	Title   string   `yaml:"title"`
	Body    string   `yaml:"body"`
	Options []Option `yaml:"options,omitempty"`
	Next    string   `yaml:"next,omitempty"`
	Final   bool     `yaml:"final,omitempty"`
}

// HasChoices reports whether the screen gates forward navigation on a choice.
func (s Screen) HasChoices() bool {
	return !s.Final && len(s.Options) > 0
}

// Option returns the option with the given id.
func (s Screen) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Story is the screen registry.
type Story struct {
	Title    string   `yaml:"title"`
	Initial  string   `yaml:"initial"`
	Start    string   `yaml:"start"`
	Audio    string   `yaml:"audio,omitempty"`
	Farewell string   `yaml:"farewell,omitempty"`
	Screens  []Screen `yaml:"screens"`

	index map[string]int
}

func (s *Story) buildIndex() {
	s.index = make(map[string]int, len(s.Screens))
	for i, sc := range s.Screens {
		if _, dup := s.index[sc.Name]; !dup {
			s.index[sc.Name] = i
		}
	}
}

// Lookup resolves a screen by name.
func (s *Story) Lookup(name string) (Screen, bool) {
	if s.index == nil {
		s.buildIndex()
	}
	i, ok := s.index[name]
	if !ok {
		return Screen{}, false
	}
	return s.Screens[i], true
}

// Successor returns the fixed forward target of a screen. Screens outside
// the linear order have none.
func (s *Story) Successor(name string) (string, bool) {
	sc, ok := s.Lookup(name)
	if !ok || sc.Next == "" {
		return "", false
	}
	return sc.Next, true
}

// Successors returns the successor table keyed by screen name.
func (s *Story) Successors() map[string]string {
	table := make(map[string]string)
	for _, sc := range s.Screens {
		if sc.Next != "" {
			table[sc.Name] = sc.Next
		}
	}
	return table
}

// MaxStep is the highest step ordinal of any screen.
func (s *Story) MaxStep() int {
	max := 0
	for _, sc := range s.Screens {
		if sc.Step > max {
			max = sc.Step
		}
	}
	return max
}

// ChoiceScreens lists the names of screens that gate on a choice, in step order.
func (s *Story) ChoiceScreens() []string {
	screens := make([]Screen, 0, len(s.Screens))
	for _, sc := range s.Screens {
		if sc.HasChoices() {
			screens = append(screens, sc)
		}
	}
	sort.SliceStable(screens, func(i, j int) bool { return screens[i].Step < screens[j].Step })
	names := make([]string, len(screens))
	for i, sc := range screens {
		names[i] = sc.Name
	}
	return names
}

// Final returns the terminal screen.
func (s *Story) Final() (Screen, bool) {
	for _, sc := range s.Screens {
		if sc.Final {
			return sc, true
		}
	}
	return Screen{}, false
}
