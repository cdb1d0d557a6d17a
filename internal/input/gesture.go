package input

import "github.com/san-kum/gravsim/internal/dynamo"

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

type Action int

const (
	Press Action = iota
	Release
	Motion
)

// Pointer is a mouse event in canvas sub-pixel coordinates.
type Pointer struct {
	X, Y   int
	Button Button
	Action Action
	Shift  bool
}

func (p Pointer) at() dynamo.Vec2 { return dynamo.V(float64(p.X), float64(p.Y)) }

// Tracker turns raw pointer events into commands:
//
//   - left drag pans the camera; a left click without movement picks a body
//   - right drag spawns a body at the press point, moving along the drag
//   - the wheel zooms, shift makes it coarse
type Tracker struct {
	panning  bool
	moved    bool
	spawning bool
	origin   dynamo.Vec2
	last     dynamo.Vec2
}

func NewTracker() *Tracker { return &Tracker{} }

// Dragging reports whether a spawn drag is in progress and where it started.
func (t *Tracker) Dragging() (from, to dynamo.Vec2, ok bool) {
	return t.origin, t.last, t.spawning
}

func (t *Tracker) Handle(p Pointer) []Command {
	pos := p.at()

	switch p.Button {
	case ButtonWheelUp:
		return []Command{Zoom{Steps: 1, Coarse: p.Shift}}
	case ButtonWheelDown:
		return []Command{Zoom{Steps: -1, Coarse: p.Shift}}
	}

	switch p.Action {
	case Press:
		switch p.Button {
		case ButtonLeft:
			t.panning, t.moved = true, false
			t.origin, t.last = pos, pos
		case ButtonRight:
			t.spawning = true
			t.origin, t.last = pos, pos
		}
		return nil

	case Motion:
		switch {
		case t.panning:
			delta := pos.Sub(t.last)
			t.last = pos
			if delta == dynamo.Zero() {
				return nil
			}
			t.moved = true
			return []Command{Pan{DX: delta.X, DY: delta.Y}}
		case t.spawning:
			t.last = pos
		}
		return nil

	case Release:
		switch {
		case t.panning:
			t.panning = false
			if !t.moved {
				return []Command{Pick{At: t.origin}}
			}
		case t.spawning:
			t.spawning = false
			return []Command{Spawn{From: t.origin, To: pos}}
		}
	}
	return nil
}
