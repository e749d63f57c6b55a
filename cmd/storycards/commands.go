package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/storycards/internal/config"
	"github.com/san-kum/storycards/internal/confetti"
	"github.com/san-kum/storycards/internal/dynamo"
	"github.com/san-kum/storycards/internal/export"
	"github.com/san-kum/storycards/internal/metrics"
	"github.com/san-kum/storycards/internal/narrative"
	"github.com/san-kum/storycards/internal/sim"
	"github.com/san-kum/storycards/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func listScreens(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	s, _, err := loadStory(cfg.Story)
	if err != nil {
		return err
	}

	ctrl := narrative.New(s, narrative.WithLogger(logger))
	fmt.Println(s.Title)
	fmt.Println(viz.Separator(60))

	successors := s.Successors()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTEP\tPROGRESS\tNEXT\tOPTIONS")
	for _, sc := range s.Screens {
		ctrl.NavigateTo(sc.Name, false)
		ids := make([]string, len(sc.Options))
		for i, o := range sc.Options {
			ids[i] = o.ID
		}
		next := successors[sc.Name]
		if sc.Final {
			next = "(final)"
		}
		fmt.Fprintf(w, "%s\t%d\t%s %3d%%\t%s\t%s\n",
			sc.Name, sc.Step,
			viz.ProgressBar(float64(ctrl.Progress())/100, 20), ctrl.Progress(),
			next, strings.Join(ids, ","))
	}
	return w.Flush()
}

func validateStory(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := cfg.Story
	if len(args) == 1 {
		path = args[0]
	}

	s, baseDir, err := loadStory(path)
	if err != nil {
		return fmt.Errorf("invalid story: %w", err)
	}
	final, _ := s.Final()
	fmt.Printf("ok: %q, %d screens, %d steps, final %q\n", s.Title, len(s.Screens), s.MaxStep(), final.Name)

	if clip := audioPath(cfg, s, baseDir); clip != "" {
		if _, err := os.Stat(clip); err != nil {
			logger.Warn("voice note not found, the reveal will hide it", zap.String("audio", clip))
		}
	}
	return nil
}

// writeConfig saves the settings after profile and flag overrides.
func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	path := "storycards.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("settings written to %s\n", path)
	return nil
}

func burstConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Width:         burstWidth,
		Height:        burstHeight,
		Scale:         1,
		FrameInterval: cfg.Display.FrameInterval(),
		Seed:          cfg.Seed,
	}
}

func burstMetrics() []metrics.Metric {
	return []metrics.Metric{
		metrics.NewMeanHeight(),
		metrics.NewCoverage(burstWidth, burstHeight),
		metrics.NewDrift(),
	}
}

func runConfetti(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if runs > 1 {
		return runEnsemble(cmd.Context(), cfg)
	}

	theme := viz.GetTheme(cfg.Theme)
	raster := viz.NewRaster(burstWidth, burstHeight, 1, theme.BackgroundRGBA())
	expected := int(confetti.Duration / cfg.Display.FrameInterval())

	s := sim.New(raster)
	ms := burstMetrics()
	for _, m := range ms {
		s.AddMetric(m)
	}
	height := ms[0].(*metrics.MeanHeight)

	var rec *viz.Recorder
	if gifPath != "" {
		rec = viz.NewRecorder(int(cfg.Display.FrameInterval() * 2 / (10 * time.Millisecond)))
	}
	var pngErr error
	s.AddObserver(sim.ObserverFunc(func(i int, _ dynamo.State) {
		if rec != nil && i%2 == 0 {
			rec.Capture(raster.Image())
		}
		if pngPath != "" && i == expected/3 {
			pngErr = raster.SavePNG(pngPath)
		}
	}))

	bc := burstConfig(cfg)
	result, err := s.Run(cmd.Context(), bc)
	if err != nil {
		return err
	}
	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, bc, []*sim.Result{result}); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}
	if pngErr != nil {
		return fmt.Errorf("save png: %w", pngErr)
	}
	logger.Debug("burst finished", zap.Int("frames", result.Frames), zap.Int64("seed", cfg.Seed))

	graph := asciigraph.Plot(height.Series(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("mean particle height (px) per frame"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("%d particles, %d frames, %v, seed %d\n", confetti.Count, result.Frames, confetti.Duration, cfg.Seed)
	for _, name := range []string{"mean_height", "coverage", "drift"} {
		fmt.Printf("  %-12s %8.2f\n", name, result.Metrics[name])
	}

	if pngPath != "" {
		fmt.Printf("frame %d saved to %s\n", expected/3, pngPath)
	}
	if svgPath != "" {
		if err := saveBrailleSVG(cmd.Context(), cfg, theme, expected/3); err != nil {
			return fmt.Errorf("save svg: %w", err)
		}
		fmt.Printf("braille frame %d saved to %s\n", expected/3, svgPath)
	}
	if rec != nil {
		f, err := os.Create(gifPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rec.Encode(f); err != nil {
			return fmt.Errorf("encode gif: %w", err)
		}
		fmt.Printf("%d frames saved to %s\n", rec.Len(), gifPath)
	}
	return nil
}

// runEnsemble compares bursts over consecutive seeds.
func runEnsemble(ctx context.Context, cfg *config.Config) error {
	e := sim.NewEnsemble(
		func() confetti.Surface { return viz.NewRaster(burstWidth, burstHeight, 1, nil) },
		burstMetrics,
		runs, cfg.Seed,
	)
	bc := burstConfig(cfg)
	results, err := e.Run(ctx, bc)
	if err != nil {
		return err
	}
	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, bc, results); err != nil {
			return fmt.Errorf("export json: %w", err)
		}
	}

	names := []string{"mean_height", "coverage", "drift"}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tMEAN_HEIGHT\tCOVERAGE\tDRIFT")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.3f\t%.2f\n",
			r.Seed, r.Frames, r.Metrics[names[0]], r.Metrics[names[1]], r.Metrics[names[2]])
	}
	fmt.Fprintf(w, "mean\t\t%.2f\t%.3f\t%.2f\n",
		sim.Mean(results, names[0]), sim.Mean(results, names[1]), sim.Mean(results, names[2]))
	return w.Flush()
}

// saveBrailleSVG replays the burst on a terminal-sized Braille canvas and
// writes frame n as SVG.
func saveBrailleSVG(ctx context.Context, cfg *config.Config, theme viz.Theme, n int) error {
	canvas := viz.NewCanvas(0, 0)
	var snapshot string
	s := sim.New(canvas)
	s.AddObserver(sim.ObserverFunc(func(i int, _ dynamo.State) {
		if i == n {
			snapshot = export.CanvasToSVG(canvas, 4, string(theme.Background))
		}
	}))
	if _, err := s.Run(ctx, burstConfig(cfg)); err != nil {
		return err
	}
	if snapshot == "" {
		return fmt.Errorf("burst ended before frame %d", n)
	}
	return os.WriteFile(svgPath, []byte(snapshot), 0644)
}
