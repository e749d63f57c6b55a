package metrics

import "github.com/san-kum/storycards/internal/dynamo"

type Coverage struct {
	name    string
	w, h    float64
	inside  int
	samples int
}

// NewCoverage measures the share of particle observations that fall inside
// a w x h viewport.
func NewCoverage(w, h float64) *Coverage {
	return &Coverage{
		name: "coverage",
		w:    w,
		h:    h,
	}
}

func (c *Coverage) Name() string {
	return c.name
}

func (c *Coverage) Observe(x dynamo.State, u dynamo.Control, t float64) {
	for i := 0; i < particles(x); i++ {
		px, py := x[stride*i], x[stride*i+1]
		if px >= 0 && px < c.w && py >= 0 && py < c.h {
			c.inside++
		}
		c.samples++
	}
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.inside) / float64(c.samples)
}

func (c *Coverage) Reset() {
	c.inside = 0
	c.samples = 0
}
