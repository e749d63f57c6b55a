// Package confetti implements a fixed-duration particle burst of falling,
// rotating squares.
//
// Each [Engine.Burst] replaces the particle set and returns a generation
// token. Hosts drive frames with [Engine.Frame] from their own frame
// callback, passing the token back; a chain whose token has been superseded
// by a newer burst stops on its next frame without drawing.
package confetti

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/storycards/internal/dynamo"
	"github.com/san-kum/storycards/internal/integrators"
)

const (
	Count       = 120
	Duration    = 2200 * time.Millisecond
	SafetyDelay = 200 * time.Millisecond
)

// Surface is a resizable drawing target measured in logical pixels.
type Surface interface {
	// Resize sets the logical size and the number of device dots per
	// logical pixel.
	Resize(w, h, scale float64)
	Size() (w, h float64)
	Clear()
	// FillSquare draws a square of half-size half centered on (x, y),
	// rotated by rot radians.
	FillSquare(x, y, half, rot float64, c color.Color)
}

// Particle is one piece of confetti.
type Particle struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Rot    float64
	VR     float64
}

// Engine runs bursts on a surface.
type Engine struct {
	surface Surface
	rng     *rand.Rand
	integ   dynamo.Integrator

	pieces []Particle
	pos    dynamo.State
	motion *motion
	gen    uint64
	start  time.Time
	frames int
}

// New creates an engine drawing on surface. A nil rng uses a time seed.
func New(surface Surface, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{surface: surface, rng: rng, integ: integrators.NewEuler()}
}

// Surface returns the drawing target.
func (e *Engine) Surface() Surface { return e.surface }

// Resize tracks a viewport change without touching the particle set.
func (e *Engine) Resize(w, h, scale float64) {
	e.surface.Resize(w, h, scale)
}

// Burst resizes the surface, generates a fresh particle set and returns its
// generation.
func (e *Engine) Burst(now time.Time, w, h, scale float64) uint64 {
	e.surface.Resize(w, h, scale)
	w, _ = e.surface.Size()

	e.pieces = make([]Particle, Count)
	for i := range e.pieces {
		e.pieces[i] = Particle{
			X:   e.rng.Float64() * w,
			Y:   -10 - e.rng.Float64()*200,
			R:   3 + e.rng.Float64()*4,
			VY:  2 + e.rng.Float64()*4,
			VX:  -1.5 + e.rng.Float64()*3,
			Rot: e.rng.Float64() * math.Pi,
			VR:  -0.2 + e.rng.Float64()*0.4,
		}
	}
	e.pos, e.motion = pack(e.pieces)

	e.gen++
	e.start = now
	e.frames = 0
	return e.gen
}

// Frame advances the burst of generation gen by one frame and draws it.
// It reports whether another frame should be scheduled.
func (e *Engine) Frame(gen uint64, now time.Time) bool {
	if gen != e.gen || e.pieces == nil {
		return false
	}
	if now.Sub(e.start) >= Duration {
		e.finish()
		return false
	}

	e.pos = e.integ.Step(e.motion, e.pos, nil, float64(e.frames), 1)
	e.frames++
	unpack(e.pos, e.pieces)

	e.surface.Clear()
	for _, p := range e.pieces {
		e.surface.FillSquare(p.X, p.Y, p.R, p.Rot, Color(p.X, p.Y))
	}
	return true
}

// SafetyClear clears the surface if gen is still the latest burst. Clears
// scheduled by superseded bursts do nothing.
func (e *Engine) SafetyClear(gen uint64) {
	if gen != e.gen {
		return
	}
	e.finish()
}

func (e *Engine) finish() {
	e.surface.Clear()
	e.pieces = nil
	e.pos = nil
}

// Active reports whether a burst is in flight.
func (e *Engine) Active() bool { return e.pieces != nil }

// Generation returns the token of the latest burst.
func (e *Engine) Generation() uint64 { return e.gen }

// Frames returns the number of frames drawn by the current burst.
func (e *Engine) Frames() int { return e.frames }

// Particles returns a copy of the current particle set.
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.pieces...)
}

// Positions returns the packed (x, y, rot) state of the current burst.
func (e *Engine) Positions() dynamo.State {
	if e.pos == nil {
		return nil
	}
	return e.pos.Clone()
}

// Hue maps a position to a hue in [0, 360).
func Hue(x, y float64) float64 {
	h := math.Mod(x+y, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Color returns the fill of a particle at (x, y): hsla(hue, 90%, 60%, .85).
func Color(x, y float64) color.NRGBA {
	r, g, b := colorful.Hsl(Hue(x, y), 0.9, 0.6).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 217}
}
