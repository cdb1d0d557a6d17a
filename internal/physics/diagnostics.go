package physics

import "github.com/san-kum/gravsim/internal/dynamo"

// Diagnostics are scalar summaries of the live bodies in a scene.
type Diagnostics struct {
	Bodies        int
	TotalMass     float64
	KineticEnergy float64
	Momentum      dynamo.Vec2
	CenterOfMass  dynamo.Vec2
}

func (s *Scene) Diagnostics() Diagnostics {
	var d Diagnostics
	weighted := dynamo.Zero()

	for _, b := range s.bodies {
		if !b.alive {
			continue
		}
		d.Bodies++
		d.TotalMass += b.mass
		d.KineticEnergy += 0.5 * b.mass * b.velocity.Dot(b.velocity)
		d.Momentum = d.Momentum.Add(b.velocity.Mul(b.mass))
		weighted = weighted.Add(b.position.Mul(b.mass))
	}

	if d.TotalMass > 0 {
		d.CenterOfMass = weighted.Div(d.TotalMass)
	}
	return d
}
