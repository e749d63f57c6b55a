package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS          = 60
	DefaultCellWidth    = 8
	DefaultCellHeight   = 16
	DefaultMaxCardWidth = 72
	DefaultTheme        = "rose"
)

type Config struct {
	Story   string        `yaml:"story"`
	Audio   string        `yaml:"audio"`
	Theme   string        `yaml:"theme"`
	Seed    int64         `yaml:"seed"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig describes the terminal geometry. Cell sizes are in logical
// pixels and set how the particle burst maps onto Braille dots.
type DisplayConfig struct {
	FPS          int `yaml:"fps"`
	CellWidth    int `yaml:"cell_width"`
	CellHeight   int `yaml:"cell_height"`
	MaxCardWidth int `yaml:"max_card_width"`
}

type LogConfig struct {
	Path    string `yaml:"path"`
	Verbose bool   `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Display: DisplayConfig{
			FPS:          DefaultFPS,
			CellWidth:    DefaultCellWidth,
			CellHeight:   DefaultCellHeight,
			MaxCardWidth: DefaultMaxCardWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	d := c.Display
	if d.FPS <= 0 || d.FPS > 240 {
		return fmt.Errorf("display.fps must be in (0, 240], got %d", d.FPS)
	}
	if d.CellWidth <= 0 || d.CellHeight <= 0 {
		return fmt.Errorf("display cell size must be positive, got %dx%d", d.CellWidth, d.CellHeight)
	}
	if d.MaxCardWidth < 20 {
		return fmt.Errorf("display.max_card_width must be at least 20, got %d", d.MaxCardWidth)
	}
	return nil
}

// FrameInterval is the delay between animation frames.
func (d DisplayConfig) FrameInterval() time.Duration {
	if d.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(d.FPS)
}

// DotScale is the number of Braille dots per logical pixel. A cell holds
// 2x4 dots; the smaller ratio keeps squares square.
func (d DisplayConfig) DotScale() float64 {
	cw, ch := d.CellWidth, d.CellHeight
	if cw <= 0 {
		cw = DefaultCellWidth
	}
	if ch <= 0 {
		ch = DefaultCellHeight
	}
	sx := 2.0 / float64(cw)
	sy := 4.0 / float64(ch)
	if sx < sy {
		return sx
	}
	return sy
}

// Apply copies the non-zero fields of a profile.
func (d *DisplayConfig) Apply(p DisplayConfig) {
	if p.FPS > 0 {
		d.FPS = p.FPS
	}
	if p.CellWidth > 0 {
		d.CellWidth = p.CellWidth
	}
	if p.CellHeight > 0 {
		d.CellHeight = p.CellHeight
	}
	if p.MaxCardWidth > 0 {
		d.MaxCardWidth = p.MaxCardWidth
	}
}
