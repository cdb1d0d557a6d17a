package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	// DefaultG is a unitless tuning constant, not the physical G.
	DefaultG = 6.67

	// DefaultMergeRatio scales a body's mass into its capture radius.
	DefaultMergeRatio = 0.05
)

// Integrator advances a scene by one explicit Euler tick. It keeps no state
// between ticks and never retains bodies after Tick returns.
type Integrator struct {
	G          float64
	MergeRatio float64

	// ConserveMomentum blends an absorbed body's velocity into the survivor.
	// Off by default: the survivor keeps its own velocity.
	ConserveMomentum bool
}

func NewIntegrator() *Integrator {
	return &Integrator{G: DefaultG, MergeRatio: DefaultMergeRatio}
}

func (in *Integrator) Validate() error {
	if math.IsNaN(in.G) || math.IsInf(in.G, 0) {
		return fmt.Errorf("gravity %v: %w", in.G, dynamo.ErrInvalidConfig)
	}
	if !(in.MergeRatio >= 0) || math.IsInf(in.MergeRatio, 0) {
		return fmt.Errorf("merge ratio %v: %w", in.MergeRatio, dynamo.ErrInvalidConfig)
	}
	return nil
}

// TickStats summarizes one tick.
type TickStats struct {
	Merges  int
	Removed int
	Skipped int // degenerate pairs that contributed no force
}

// Tick runs the force-and-merge pass, then the position pass, then compacts
// the scene. Both passes see every live body; positions only change in the
// second pass, so every force uses pre-tick positions.
func (in *Integrator) Tick(s *Scene, timeScale float64) TickStats {
	st := in.accumulate(s.bodies, timeScale)
	in.advance(s.bodies, timeScale)
	st.Removed = s.Compact()
	return st
}

func (in *Integrator) accumulate(bodies []*Body, timeScale float64) TickStats {
	var st TickStats

	for _, a := range bodies {
		if !a.alive {
			continue
		}
		for _, b := range bodies {
			if a == b || !b.alive {
				continue
			}

			diff := dynamo.Difference(a.position, b.position)
			dist := dynamo.Distance(diff)

			if !a.pinned {
				if dist == 0 {
					st.Skipped++
				} else {
					force := b.mass / a.mass / (dist * dist) * in.G
					dv := diff.Mul(force * timeScale)
					if dv.IsFinite() {
						a.velocity = a.velocity.Add(dv)
					} else {
						st.Skipped++
					}
				}
			}

			if a.mass >= b.mass && dist < a.mass*in.MergeRatio {
				in.merge(a, b)
				st.Merges++
			}
		}
	}

	return st
}

func (in *Integrator) merge(survivor, absorbed *Body) {
	absorbed.alive = false
	absorbed.selected = false

	total := survivor.mass + absorbed.mass
	if in.ConserveMomentum && !survivor.pinned {
		p := survivor.velocity.Mul(survivor.mass).Add(absorbed.velocity.Mul(absorbed.mass))
		survivor.velocity = p.Div(total)
	}
	survivor.mass = total
}

func (in *Integrator) advance(bodies []*Body, timeScale float64) {
	for _, b := range bodies {
		if !b.alive || b.pinned {
			continue
		}
		b.position = b.position.Add(b.velocity.Mul(timeScale))
	}
}
