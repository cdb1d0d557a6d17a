// Package viz draws a running gravity scene in the terminal.
//
// The live viewer is a Bubble Tea program built from a few pieces:
//
//   - [Viewport]: camera offset and eased zoom, world to sub-pixel mapping
//   - [Canvas]: braille pixel grid with per-cell colour
//   - [Model]: steps the clock, renders snapshots and the HUD, routes keys
//     and mouse gestures through the input package
//
// # Key Bindings
//
//	Space  - Pause/Resume
//	+ / -  - Scale time up or down
//	0      - Reset time scale
//	[ ]    - Zoom ({ } for coarse steps)
//	Arrows - Pan
//	Tab    - Cycle selected body
//	R      - Reset scene
//	C      - Clear scene
//	T      - Cycle themes
//	?      - Show help
//
// Left drag pans and a left click selects. Right drag spawns a body whose
// velocity follows the drag. The wheel zooms, with shift for coarse steps.
package viz
