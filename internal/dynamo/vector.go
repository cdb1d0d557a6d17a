package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. All methods return new values; a Vec2 is never
// mutated in place.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func Zero() Vec2 { return Vec2{} }

func (v Vec2) Copy() Vec2 { return v }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// MulVec multiplies component-wise.
func (v Vec2) MulVec(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides by a scalar. Division by zero follows IEEE 754 and yields
// ±Inf or NaN components.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// DivVec divides component-wise.
func (v Vec2) DivVec(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Difference returns the vector pointing from a to b.
func Difference(a, b Vec2) Vec2 { return b.Sub(a) }

// Distance returns the length of a difference vector.
func Distance(diff Vec2) float64 { return diff.Len() }
