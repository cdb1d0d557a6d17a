// Package sim schedules the physics integrator.
//
// A [Clock] owns a scene and fires one tick per interval, either driven
// externally through [Clock.Step] (the live viewer does this from its
// update loop) or by [Clock.Run] on a ticker. Input never touches the scene
// directly: it queues a [Command] with [Clock.Submit] and the clock applies
// it before the next tick. Renderers read [Clock.Snapshot].
//
// # Thread Safety
//
// Clock methods are safe for concurrent use. Ticks never overlap.
package sim
