package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/storycards/internal/sim"
)

type BurstData struct {
	Width         float64            `json:"width"`
	Height        float64            `json:"height"`
	FrameInterval string             `json:"frame_interval"`
	Seed          int64              `json:"seed"`
	Frames        int                `json:"frames"`
	Metrics       map[string]float64 `json:"metrics"`
}

func burstData(cfg sim.Config, results []*sim.Result) []BurstData {
	data := make([]BurstData, len(results))
	for i, r := range results {
		data[i] = BurstData{
			Width:         cfg.Width,
			Height:        cfg.Height,
			FrameInterval: cfg.FrameInterval.String(),
			Seed:          r.Seed,
			Frames:        r.Frames,
			Metrics:       r.Metrics,
		}
	}
	return data
}

// WriteJSON writes one record per burst result.
func WriteJSON(w io.Writer, cfg sim.Config, results []*sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(burstData(cfg, results))
}

func ExportJSON(path string, cfg sim.Config, results []*sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, cfg, results)
}
