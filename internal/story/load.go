package story

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

// Default returns the embedded story.
func Default() *Story {
	s, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("story: embedded content is invalid: %v", err))
	}
	return s
}

// Load reads and validates a story file.
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates story content.
func Parse(data []byte) (*Story, error) {
	s := &Story{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.buildIndex()
	return s, nil
}

// Validate checks the registry invariants: unique names, positive steps,
// resolvable references and exactly one reachable final screen.
func (s *Story) Validate() error {
	if len(s.Screens) == 0 {
		return ErrNoScreens
	}
	seen := make(map[string]bool, len(s.Screens))
	for _, sc := range s.Screens {
		if seen[sc.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateScreen, sc.Name)
		}
		seen[sc.Name] = true
		if sc.Step < 1 {
			return fmt.Errorf("%w: screen %q has step %d", ErrInvalidStep, sc.Name, sc.Step)
		}
		ids := make(map[string]bool, len(sc.Options))
		for _, o := range sc.Options {
			if ids[o.ID] {
				return fmt.Errorf("%w: %q on screen %q", ErrDuplicateOption, o.ID, sc.Name)
			}
			ids[o.ID] = true
		}
	}
	if s.Initial == "" {
		s.Initial = s.Screens[0].Name
	}
	if !seen[s.Initial] {
		return fmt.Errorf("%w: initial %q", ErrUnknownScreen, s.Initial)
	}
	if s.Start != "" && !seen[s.Start] {
		return fmt.Errorf("%w: start %q", ErrUnknownScreen, s.Start)
	}
	next := make(map[string]string, len(s.Screens))
	finals := 0
	for _, sc := range s.Screens {
		if sc.Next != "" && !seen[sc.Next] {
			return fmt.Errorf("%w: %q -> %q", ErrUnknownScreen, sc.Name, sc.Next)
		}
		next[sc.Name] = sc.Next
		if sc.Final {
			finals++
		}
	}
	switch {
	case finals == 0:
		return ErrNoFinal
	case finals > 1:
		return fmt.Errorf("%w: %d screens", ErrMultipleFinal, finals)
	}
	final, _ := s.Final()
	if !reaches(next, final.Name, s.Initial, s.Start) {
		return fmt.Errorf("%w: %q", ErrUnreachableFinal, final.Name)
	}
	return nil
}

// reaches follows successor links from each root and reports whether target
// is on one of the chains.
func reaches(next map[string]string, target string, roots ...string) bool {
	visited := make(map[string]bool, len(next))
	for _, name := range roots {
		for name != "" && !visited[name] {
			if name == target {
				return true
			}
			visited[name] = true
			name = next[name]
		}
	}
	return false
}
