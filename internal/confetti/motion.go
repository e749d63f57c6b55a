package confetti

import "github.com/san-kum/storycards/internal/dynamo"

// motion is the particle set as a dynamo system. The state packs
// (x, y, rot) per particle; derivatives are the constant velocities.
type motion struct {
	vel dynamo.State
}

func (m *motion) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return m.vel
}

func (m *motion) StateDim() int   { return len(m.vel) }
func (m *motion) ControlDim() int { return 0 }

func pack(pieces []Particle) (dynamo.State, *motion) {
	pos := make(dynamo.State, 3*len(pieces))
	vel := make(dynamo.State, 3*len(pieces))
	for i, p := range pieces {
		pos[3*i], pos[3*i+1], pos[3*i+2] = p.X, p.Y, p.Rot
		vel[3*i], vel[3*i+1], vel[3*i+2] = p.VX, p.VY, p.VR
	}
	return pos, &motion{vel: vel}
}

func unpack(pos dynamo.State, pieces []Particle) {
	for i := range pieces {
		pieces[i].X, pieces[i].Y, pieces[i].Rot = pos[3*i], pos[3*i+1], pos[3*i+2]
	}
}
