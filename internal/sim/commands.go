package sim

import (
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

// Command is a scene or clock mutation applied at a tick boundary.
type Command interface {
	apply(c *Clock)
}

type Spawn struct {
	Body *physics.Body
}

func (cmd Spawn) apply(c *Clock) {
	if cmd.Body != nil && cmd.Body.Alive() {
		c.scene.Add(cmd.Body)
	}
}

// SelectNearest selects the body closest to At within Within world units,
// clearing the selection when there is none.
type SelectNearest struct {
	At     dynamo.Vec2
	Within float64
}

func (cmd SelectNearest) apply(c *Clock) {
	c.scene.Select(c.scene.Nearest(cmd.At, cmd.Within))
}

type CycleSelection struct{}

func (CycleSelection) apply(c *Clock) { c.scene.CycleSelection() }

type Clear struct{}

func (Clear) apply(c *Clock) { c.scene.Clear() }

// Reset replaces every body in the scene.
type Reset struct {
	Bodies []*physics.Body
}

func (cmd Reset) apply(c *Clock) {
	c.scene.Clear()
	for _, b := range cmd.Bodies {
		if b != nil {
			c.scene.Add(b)
		}
	}
}

type SetPaused struct {
	Paused bool
}

func (cmd SetPaused) apply(c *Clock) { c.paused = cmd.Paused }

type SetTimeScale struct {
	Scale float64
}

func (cmd SetTimeScale) apply(c *Clock) { c.timeScale = ClampTimeScale(cmd.Scale) }
