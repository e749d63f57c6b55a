package dynamo

import "math"

// State is a packed vector of continuous variables.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Control is an external input vector. The particle systems take none.
type Control []float64

// System describes dX/dt = f(X, u, t).
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Integrator advances a System by one step.
type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}
