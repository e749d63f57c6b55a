package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "rose" {
		t.Errorf("expected theme rose, got %s", cfg.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Display.FrameInterval() != time.Second/60 {
		t.Errorf("unexpected frame interval %v", cfg.Display.FrameInterval())
	}
	if cfg.Display.DotScale() != 0.25 {
		t.Errorf("expected dot scale 0.25, got %v", cfg.Display.DotScale())
	}
}

func TestDotScaleKeepsAspect(t *testing.T) {
	d := DisplayConfig{CellWidth: 10, CellHeight: 16}
	if got := d.DotScale(); got != 0.2 {
		t.Errorf("expected 0.2, got %v", got)
	}
	d = DisplayConfig{}
	if got := d.DotScale(); got != 0.25 {
		t.Errorf("expected default 0.25, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"huge fps", func(c *Config) { c.Display.FPS = 1000 }},
		{"zero cell", func(c *Config) { c.Display.CellWidth = 0 }},
		{"narrow card", func(c *Config) { c.Display.MaxCardWidth = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if cfg.Validate() == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycards.yaml")
	cfg := DefaultConfig()
	cfg.Story = "custom.yaml"
	cfg.Display.FPS = 30
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Story != "custom.yaml" || loaded.Display.FPS != 30 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycards.yaml")
	if err := os.WriteFile(path, []byte("theme: paper\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "paper" || cfg.Display.FPS != DefaultFPS {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storycards.yaml")
	if err := os.WriteFile(path, []byte("display:\n  fps: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestProfiles(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ApplyProfile("cinema") {
		t.Fatal("expected cinema profile")
	}
	if cfg.Theme != "midnight" || cfg.Display.MaxCardWidth != 110 {
		t.Errorf("profile not applied: %+v", cfg)
	}
	if cfg.Display.CellWidth != DefaultCellWidth {
		t.Error("profile should keep unset fields")
	}

	if cfg.ApplyProfile("nonexistent") {
		t.Error("expected false for unknown profile")
	}
	if GetProfile("nonexistent") != nil {
		t.Error("expected nil for unknown profile")
	}
	if len(ListProfiles()) != 3 {
		t.Errorf("expected 3 profiles, got %v", ListProfiles())
	}
}
