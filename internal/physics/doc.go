// Package physics holds the gravity toy's scene and integrator.
//
//   - [Body]: a point mass with read accessors; constructed through
//     [NewBody], which rejects non-positive mass
//   - [Scene]: ordered bodies with [Scene.Add] and [Scene.Compact]
//   - [Integrator]: one explicit Euler tick, O(n²) force pass with merging
//     followed by a position pass
//
// # Merging
//
// A body absorbs another when it is at least as heavy and the distance
// between them is below its mass times [Integrator.MergeRatio]. The lighter
// body is marked dead for the rest of the tick and evicted by
// [Scene.Compact]. Mass is conserved; velocity is kept unless
// [Integrator.ConserveMomentum] is set.
//
//	scene := physics.NewScene(
//	    physics.MustBody(1, dynamo.V(30, 0), dynamo.V(1, -1)),
//	    physics.MustBody(1, dynamo.V(-30, 0), dynamo.V(-1, 1)),
//	)
//	stats := physics.NewIntegrator().Tick(scene, 1)
package physics
