// Package dynamo provides the primitives shared by every gravsim package.
//
//   - [Vec2]: immutable 2D vector with the arithmetic the integrator needs
//   - sentinel errors ([ErrNonPositiveMass], [ErrNonFinite], ...) matched
//     with errors.Is
//   - [BodyError]: wraps a validation error with the body it came from
//
// # Example
//
//	a := dynamo.V(30, 0)
//	b := dynamo.V(-30, 0)
//	diff := dynamo.Difference(a, b) // (-60, 0)
//	dist := dynamo.Distance(diff)   // 60
package dynamo
