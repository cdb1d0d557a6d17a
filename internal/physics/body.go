package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// Body is a point mass in the scene. Fields are only mutated by the
// physics package; everything else goes through the read accessors.
type Body struct {
	name     string
	color    string
	mass     float64
	position dynamo.Vec2
	velocity dynamo.Vec2
	pinned   bool
	alive    bool
	selected bool
}

type BodyOption func(*Body)

func Named(name string) BodyOption { return func(b *Body) { b.name = name } }

func Colored(color string) BodyOption { return func(b *Body) { b.color = color } }

// Pinned bodies attract and absorb others but are never accelerated or moved.
func Pinned() BodyOption { return func(b *Body) { b.pinned = true } }

// NewBody validates and returns a live body. Mass must be positive and
// finite; position and velocity must be finite.
func NewBody(mass float64, position, velocity dynamo.Vec2, opts ...BodyOption) (*Body, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("mass %v: %w", mass, dynamo.ErrNonPositiveMass)
	}
	if !position.IsFinite() {
		return nil, fmt.Errorf("position %v: %w", position, dynamo.ErrNonFinite)
	}
	if !velocity.IsFinite() {
		return nil, fmt.Errorf("velocity %v: %w", velocity, dynamo.ErrNonFinite)
	}

	b := &Body{
		color:    "#ffffff",
		mass:     mass,
		position: position,
		velocity: velocity,
		alive:    true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MustBody is NewBody for literals known to be valid. It panics on error.
func MustBody(mass float64, position, velocity dynamo.Vec2, opts ...BodyOption) *Body {
	b, err := NewBody(mass, position, velocity, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Body) Name() string          { return b.name }
func (b *Body) Color() string         { return b.color }
func (b *Body) Mass() float64         { return b.mass }
func (b *Body) Position() dynamo.Vec2 { return b.position }
func (b *Body) Velocity() dynamo.Vec2 { return b.velocity }
func (b *Body) Pinned() bool          { return b.pinned }
func (b *Body) Alive() bool           { return b.alive }
func (b *Body) Selected() bool        { return b.selected }

// BodyView is an immutable copy of a body, safe to hand to renderers.
type BodyView struct {
	Name     string
	Color    string
	Mass     float64
	Position dynamo.Vec2
	Velocity dynamo.Vec2
	Pinned   bool
	Selected bool
}

func (b *Body) View() BodyView {
	return BodyView{
		Name:     b.name,
		Color:    b.color,
		Mass:     b.mass,
		Position: b.position,
		Velocity: b.velocity,
		Pinned:   b.pinned,
		Selected: b.selected,
	}
}
