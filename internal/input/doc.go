// Package input turns keyboard and pointer events into discrete commands.
//
// Nothing here touches the camera or the scene. The viewer applies camera
// commands between frames and forwards scene commands to the clock, which
// applies them at the next tick boundary.
package input
