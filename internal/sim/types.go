package sim

import (
	"time"

	"github.com/san-kum/storycards/internal/dynamo"
)

// Observer is notified after every drawn frame with the packed particle
// state.
type Observer interface {
	OnFrame(frame int, x dynamo.State)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(frame int, x dynamo.State)

func (f ObserverFunc) OnFrame(frame int, x dynamo.State) { f(frame, x) }

type Config struct {
	Width         float64
	Height        float64
	Scale         float64
	FrameInterval time.Duration
	Seed          int64
}

type Result struct {
	Seed       int64
	Frames     int
	Generation uint64
	Metrics    map[string]float64
}
