// Package integrators provides fixed-step integrators for dynamo systems.
package integrators

import "github.com/san-kum/storycards/internal/dynamo"

// Euler is the explicit first-order integrator. With constant derivatives it
// is exact, which is all the particle motion needs.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
