package physics

import (
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// Scene is the ordered set of bodies. Insertion order is iteration order
// and decides who absorbs whom when two equal masses merge.
type Scene struct {
	bodies []*Body
}

func NewScene(bodies ...*Body) *Scene {
	s := &Scene{bodies: make([]*Body, 0, len(bodies))}
	for _, b := range bodies {
		s.Add(b)
	}
	return s
}

func (s *Scene) Add(b *Body) { s.bodies = append(s.bodies, b) }

// Bodies returns the scene's ordered view. Callers must not modify the slice.
func (s *Scene) Bodies() []*Body { return s.bodies }

func (s *Scene) Len() int { return len(s.bodies) }

// Compact drops dead bodies, keeping the survivors in order, and reports
// how many were removed. It must only run between ticks.
func (s *Scene) Compact() int {
	live := s.bodies[:0]
	for _, b := range s.bodies {
		if b.alive {
			live = append(live, b)
		}
	}
	removed := len(s.bodies) - len(live)
	for i := len(live); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = live
	return removed
}

func (s *Scene) Clear() {
	for i := range s.bodies {
		s.bodies[i] = nil
	}
	s.bodies = s.bodies[:0]
}

func (s *Scene) Snapshot() []BodyView {
	views := make([]BodyView, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.alive {
			views = append(views, b.View())
		}
	}
	return views
}

// Select marks body i as selected and clears every other selection.
// An out-of-range index clears the selection.
func (s *Scene) Select(i int) {
	for j, b := range s.bodies {
		b.selected = j == i
	}
}

// Selected returns the selected body and its index, or nil and -1.
func (s *Scene) Selected() (*Body, int) {
	for i, b := range s.bodies {
		if b.selected {
			return b, i
		}
	}
	return nil, -1
}

// CycleSelection moves the selection to the next body, wrapping around.
func (s *Scene) CycleSelection() {
	if len(s.bodies) == 0 {
		return
	}
	_, i := s.Selected()
	s.Select((i + 1) % len(s.bodies))
}

// Nearest returns the index of the live body closest to p within the given
// radius, or -1.
func (s *Scene) Nearest(p dynamo.Vec2, within float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, b := range s.bodies {
		if !b.alive {
			continue
		}
		d := dynamo.Distance(dynamo.Difference(p, b.position))
		if d <= within && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
