package config

import "sort"

// Profile is a named display preset.
type Profile struct {
	Display DisplayConfig
	Theme   string
}

var Profiles = map[string]Profile{
	"compact": {
		Display: DisplayConfig{FPS: 30, MaxCardWidth: 56},
	},
	"cozy": {
		Display: DisplayConfig{FPS: 60, MaxCardWidth: 72},
		Theme:   "rose",
	},
	"cinema": {
		Display: DisplayConfig{FPS: 60, MaxCardWidth: 110},
		Theme:   "midnight",
	},
}

func GetProfile(name string) *Profile {
	p, ok := Profiles[name]
	if !ok {
		return nil
	}
	return &p
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyProfile merges a named profile into c. Unknown names return false.
func (c *Config) ApplyProfile(name string) bool {
	p := GetProfile(name)
	if p == nil {
		return false
	}
	c.Display.Apply(p.Display)
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	return true
}
