package metrics

import (
	"math"

	"github.com/san-kum/storycards/internal/dynamo"
)

// Drift is the mean absolute horizontal displacement since the first
// observed frame.
type Drift struct {
	name  string
	start dynamo.State
	last  float64
}

func NewDrift() *Drift {
	return &Drift{
		name: "drift",
	}
}

func (d *Drift) Name() string {
	return d.name
}

func (d *Drift) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if d.start == nil || len(d.start) != len(x) {
		d.start = x.Clone()
	}
	n := particles(x)
	if n == 0 {
		return
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(x[stride*i] - d.start[stride*i])
	}
	d.last = sum / float64(n)
}

func (d *Drift) Value() float64 {
	return d.last
}

func (d *Drift) Reset() {
	d.start = nil
	d.last = 0
}
