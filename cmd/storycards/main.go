package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/storycards/internal/audio"
	"github.com/san-kum/storycards/internal/config"
	"github.com/san-kum/storycards/internal/narrative"
	"github.com/san-kum/storycards/internal/story"
	"github.com/san-kum/storycards/internal/tui"
	"github.com/san-kum/storycards/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	storyFile  string
	audioFile  string
	profile    string
	themeName  string
	seed       int64
	logFile    string
	verbose    bool

	// confetti command
	pngPath     string
	gifPath     string
	svgPath     string
	jsonPath    string
	burstWidth  float64
	burstHeight float64
	runs        int

	logger *zap.Logger
)

// interactive marks commands that own the terminal; they only log to --log.
const interactive = "interactive"

func main() {
	rootCmd := &cobra.Command{
		Use:         "storycards",
		Short:       "a short interactive story told in cards",
		Annotations: map[string]string{interactive: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(cmd)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage: true,
		RunE:         runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml)")
	pf.StringVar(&storyFile, "story", "", "story file (yaml), defaults to the built-in story")
	pf.StringVar(&audioFile, "audio", "", "voice note, overrides the story's audio path")
	pf.StringVar(&profile, "profile", "", "display profile: compact, cozy, cinema")
	pf.StringVar(&themeName, "theme", "", "color theme: rose, midnight, paper, sunset")
	pf.Int64Var(&seed, "seed", 0, "confetti random seed, 0 picks one")
	pf.StringVar(&logFile, "log", "", "write logs to this file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	playCmd := &cobra.Command{
		Use:         "play",
		Short:       "play the story",
		Annotations: map[string]string{interactive: "true"},
		RunE:        runPlay,
	}

	screensCmd := &cobra.Command{
		Use:   "screens",
		Short: "list screens with step and progress",
		RunE:  listScreens,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check story content",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateStory,
	}

	confettiCmd := &cobra.Command{
		Use:   "confetti",
		Short: "run a headless confetti burst",
		RunE:  runConfetti,
	}
	confettiCmd.Flags().StringVar(&pngPath, "png", "", "save a mid-burst frame as png")
	confettiCmd.Flags().StringVar(&gifPath, "gif", "", "save the burst as an animated gif")
	confettiCmd.Flags().StringVar(&svgPath, "svg", "", "save a mid-burst braille frame as svg")
	confettiCmd.Flags().Float64Var(&burstWidth, "width", 480, "viewport width in pixels")
	confettiCmd.Flags().Float64Var(&burstHeight, "height", 360, "viewport height in pixels")
	confettiCmd.Flags().StringVar(&jsonPath, "json", "", "write burst metrics as json")
	confettiCmd.Flags().IntVar(&runs, "runs", 1, "compare this many consecutive seeds")

	configCmd := &cobra.Command{
		Use:   "config [file]",
		Short: "write the effective settings as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(playCmd, screensCmd, validateCmd, confettiCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if logFile == "" && cmd.Annotations[interactive] == "true" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// loadSettings reads the config file and applies the profile and flag
// overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if profile != "" && !cfg.ApplyProfile(profile) {
		return nil, fmt.Errorf("unknown profile %q (available: %v)", profile, config.ListProfiles())
	}
	if storyFile != "" {
		cfg.Story = storyFile
	}
	if audioFile != "" {
		cfg.Audio = audioFile
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

// loadStory returns the configured story and the directory its relative
// asset paths resolve against.
func loadStory(path string) (*story.Story, string, error) {
	if path == "" {
		return story.Default(), ".", nil
	}
	s, err := story.Load(path)
	if err != nil {
		return nil, "", err
	}
	return s, filepath.Dir(path), nil
}

func audioPath(cfg *config.Config, s *story.Story, baseDir string) string {
	if cfg.Audio != "" {
		return cfg.Audio
	}
	if s.Audio == "" || filepath.IsAbs(s.Audio) {
		return s.Audio
	}
	return filepath.Join(baseDir, s.Audio)
}

// probeFor defers decoding the clip until the reveal asks for it.
func probeFor(path string, log *zap.Logger) narrative.ProbeFunc {
	if path == "" {
		return nil
	}
	return func() (narrative.Player, error) {
		clip, err := audio.Probe(path, audio.SampleRate)
		if err != nil {
			return nil, err
		}
		log.Debug("voice note ready", zap.String("path", clip.Path()), zap.Duration("duration", clip.Duration()))
		return clip, nil
	}
}

func newRand(s int64) *rand.Rand {
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s, baseDir, err := loadStory(cfg.Story)
	if err != nil {
		return err
	}

	clip := audioPath(cfg, s, baseDir)
	logger.Info("starting session",
		zap.String("story", s.Title),
		zap.Int("screens", len(s.Screens)),
		zap.String("audio", clip),
		zap.String("theme", cfg.Theme),
	)

	ctrl := narrative.New(s,
		narrative.WithLogger(logger),
		narrative.WithAudio(probeFor(clip, logger)),
	)
	defer func() {
		if err := ctrl.Release(); err != nil {
			logger.Warn("failed to release voice note", zap.Error(err))
		}
	}()
	return tui.Run(ctrl, tui.Options{
		Theme:   viz.GetTheme(cfg.Theme),
		Display: cfg.Display,
		Logger:  logger,
		Rand:    newRand(cfg.Seed),
	})
}
