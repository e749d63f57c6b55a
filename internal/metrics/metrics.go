// Package metrics accumulates statistics over the frames of a particle
// burst. Observed states pack (x, y, rot) per particle.
package metrics

import "github.com/san-kum/storycards/internal/dynamo"

type Metric interface {
	Name() string
	Observe(x dynamo.State, u dynamo.Control, t float64)
	Value() float64
	Reset()
}

const stride = 3

func particles(x dynamo.State) int { return len(x) / stride }
