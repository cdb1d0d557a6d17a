package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/gravsim/internal/dynamo"
)

const (
	MinScale       = 0.1
	MaxScale       = 1000.0
	ZoomStep       = 0.05
	CoarseZoomStep = 0.2

	zoomFrequency = 6.0
	zoomDamping   = 1.0
)

// Viewport maps world coordinates onto canvas sub-pixels:
//
//	screen = center + (world + offset) * scale
//
// Zoom requests move a target scale; Update eases the live scale towards it
// with a critically damped spring.
type Viewport struct {
	Offset        dynamo.Vec2
	Width, Height int

	scale    float64
	target   float64
	velocity float64
	spring   harmonica.Spring
}

func NewViewport(width, height int, scale float64, fps int) *Viewport {
	if fps <= 0 {
		fps = 30
	}
	scale = clampScale(scale)
	return &Viewport{
		Width:  width,
		Height: height,
		scale:  scale,
		target: scale,
		spring: harmonica.NewSpring(harmonica.FPS(fps), zoomFrequency, zoomDamping),
	}
}

func clampScale(s float64) float64 {
	if math.IsNaN(s) {
		return MinScale
	}
	return math.Max(MinScale, math.Min(MaxScale, s))
}

func (v *Viewport) Scale() float64       { return v.scale }
func (v *Viewport) TargetScale() float64 { return v.target }

func (v *Viewport) Resize(width, height int) {
	v.Width, v.Height = width, height
}

func (v *Viewport) Center() dynamo.Vec2 {
	return dynamo.V(float64(v.Width)/2, float64(v.Height)/2)
}

// Pan moves the camera by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.Offset = v.Offset.Add(dynamo.V(dx, dy).Div(v.scale))
}

// Zoom changes the target scale by steps notches; positive zooms in. Notches
// are multiplicative, so zooming in and back out returns to the same scale
// unless a limit was hit.
func (v *Viewport) Zoom(steps float64, coarse bool) {
	step := ZoomStep
	if coarse {
		step = CoarseZoomStep
	}
	v.target = clampScale(v.target * math.Pow(1+step, steps))
}

// SetScale jumps straight to s with no easing.
func (v *Viewport) SetScale(s float64) {
	v.scale = clampScale(s)
	v.target = v.scale
	v.velocity = 0
}

// Update advances the zoom spring by one frame and reports whether it is
// still moving.
func (v *Viewport) Update() bool {
	if v.scale == v.target {
		return false
	}
	v.scale, v.velocity = v.spring.Update(v.scale, v.velocity, v.target)
	if math.Abs(v.scale-v.target) < v.target*1e-3 && math.Abs(v.velocity) < v.target*1e-3 {
		v.scale, v.velocity = v.target, 0
		return false
	}
	v.scale = clampScale(v.scale)
	return true
}

func (v *Viewport) Reset(scale float64) {
	v.Offset = dynamo.Zero()
	v.SetScale(scale)
}

func (v *Viewport) WorldToScreen(p dynamo.Vec2) dynamo.Vec2 {
	return v.Center().Add(p.Add(v.Offset).Mul(v.scale))
}

func (v *Viewport) ScreenToWorld(p dynamo.Vec2) dynamo.Vec2 {
	return p.Sub(v.Center()).Div(v.scale).Sub(v.Offset)
}

// HaloRadius is the outer ring drawn around a body, in screen units.
func HaloRadius(mass, scale float64) float64 {
	return 2 + (7+mass/10)*scale
}

// CoreRadius is the filled disc of a body, in screen units.
func CoreRadius(mass, scale float64) float64 {
	return (7 + mass/25) * scale
}
