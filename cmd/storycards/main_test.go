package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/storycards/internal/config"
	"github.com/san-kum/storycards/internal/confetti"
	"github.com/san-kum/storycards/internal/sim"
	"github.com/san-kum/storycards/internal/story"
	"github.com/san-kum/storycards/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func testCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int64Var(&seed, "seed", 0, "")
	return cmd
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		configFile, storyFile, audioFile, profile, themeName = "", "", "", "", ""
		seed = 0
	})
}

func TestLoadSettingsOverrides(t *testing.T) {
	resetFlags(t)
	profile = "cinema"
	themeName = "paper"
	storyFile = "custom.yaml"

	cmd := testCmd()
	if err := cmd.Flags().Set("seed", "42"); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadSettings(cmd)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Theme != "paper" {
		t.Errorf("flag should win over profile theme, got %s", cfg.Theme)
	}
	if cfg.Display.MaxCardWidth != 110 {
		t.Errorf("profile not applied: %+v", cfg.Display)
	}
	if cfg.Story != "custom.yaml" || cfg.Seed != 42 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadSettingsUnknownProfile(t *testing.T) {
	resetFlags(t)
	profile = "imax"
	if _, err := loadSettings(testCmd()); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestLoadSettingsMissingConfig(t *testing.T) {
	resetFlags(t)
	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadSettings(testCmd()); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestAudioPath(t *testing.T) {
	s := story.Default()

	cfg := config.DefaultConfig()
	if got := audioPath(cfg, s, "stories"); got != filepath.Join("stories", s.Audio) {
		t.Errorf("relative audio should resolve against the story dir, got %s", got)
	}

	cfg.Audio = "/tmp/other.wav"
	if got := audioPath(cfg, s, "stories"); got != "/tmp/other.wav" {
		t.Errorf("override ignored, got %s", got)
	}

	cfg.Audio = ""
	s.Audio = ""
	if got := audioPath(cfg, s, "stories"); got != "" {
		t.Errorf("expected no audio, got %s", got)
	}
}

func TestLoadStory(t *testing.T) {
	s, dir, err := loadStory("")
	if err != nil || dir != "." || s.Title == "" {
		t.Fatalf("default story: %v %q", err, dir)
	}

	path := filepath.Join(t.TempDir(), "story.yaml")
	if err := os.WriteFile(path, []byte("screens: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadStory(path); err == nil {
		t.Error("expected error for empty story")
	}
}

func TestProbeForMissingFile(t *testing.T) {
	if probeFor("", zap.NewNop()) != nil {
		t.Error("no path should mean no probe")
	}

	probe := probeFor(filepath.Join(t.TempDir(), "voice.mp3"), zap.NewNop())
	p, err := probe()
	if err == nil {
		t.Fatal("expected error for missing clip")
	}
	if p != nil {
		t.Error("failed probe must return a nil player")
	}
}

func TestBurstConfig(t *testing.T) {
	burstWidth, burstHeight = 320, 240
	cfg := config.DefaultConfig()
	cfg.Seed = 3

	bc := burstConfig(cfg)
	if bc.Width != 320 || bc.Height != 240 || bc.Seed != 3 {
		t.Errorf("unexpected burst config %+v", bc)
	}
	if bc.FrameInterval != cfg.Display.FrameInterval() {
		t.Errorf("expected display frame interval, got %v", bc.FrameInterval)
	}

	result, err := sim.New(viz.NewRaster(320, 240, 1, nil)).Run(context.Background(), bc)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	expected := int(confetti.Duration / bc.FrameInterval)
	if result.Frames < expected || result.Frames > expected+1 {
		t.Errorf("expected about %d frames, got %d", expected, result.Frames)
	}
}

func TestBurstMetricsAreFresh(t *testing.T) {
	a, b := burstMetrics(), burstMetrics()
	if len(a) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(a))
	}
	for i := range a {
		if a[i] == b[i] {
			t.Errorf("%s shared between runs", a[i].Name())
		}
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	resetFlags(t)
	profile = "cinema"
	path := filepath.Join(t.TempDir(), "settings.yaml")

	if err := writeConfig(testCmd(), []string{path}); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Display.MaxCardWidth != 110 || cfg.Theme != "midnight" {
		t.Errorf("profile not persisted: %+v", cfg)
	}
}
