package input

import "github.com/san-kum/gravsim/internal/dynamo"

// Command is a discrete input event. Screen coordinates are braille
// sub-pixels on the viewer canvas.
type Command interface {
	command()
}

// Pan moves the camera by a screen-space delta.
type Pan struct {
	DX, DY float64
}

// Zoom changes the camera scale by one wheel notch per step; positive steps
// zoom in. Coarse notches are four times larger.
type Zoom struct {
	Steps  float64
	Coarse bool
}

// Spawn creates a body at From with a velocity along the drag From→To.
type Spawn struct {
	From, To dynamo.Vec2
}

// Pick selects the body under a screen point.
type Pick struct {
	At dynamo.Vec2
}

type TogglePause struct{}

// ScaleTime multiplies the time scale.
type ScaleTime struct {
	Factor float64
}

type ResetTime struct{}

type CycleSelection struct{}

type ResetScene struct{}

type ClearScene struct{}

type CycleTheme struct{}

type ToggleHelp struct{}

type Quit struct{}

func (Pan) command()            {}
func (Zoom) command()           {}
func (Spawn) command()          {}
func (Pick) command()           {}
func (TogglePause) command()    {}
func (ScaleTime) command()      {}
func (ResetTime) command()      {}
func (CycleSelection) command() {}
func (ResetScene) command()     {}
func (ClearScene) command()     {}
func (CycleTheme) command()     {}
func (ToggleHelp) command()     {}
func (Quit) command()           {}
