// Package spacing generates inclusive point sets between two bounds.
//
// Three interpolation laws are available:
//
//   - [Linear]:      evenly spaced values, first + i*(last-first)/(n-1)
//   - [Inverse]:     evenly spaced in reciprocal space, 1/linspace(1/first, 1/last, n)
//   - [Logarithmic]: evenly spaced in decade space, 10^linspace(log10 first, log10 last, n)
//
// All generators include both bounds. The final linear point is pinned to
// the requested bound so that floating-point drift in the step never moves
// the end of a sweep.
//
// # Usage
//
//	wavelengths, _ := spacing.Logarithmic(0.4, 0.8, 5)
//	radii, _ := spacing.Linear(0.1, 0.3, 3)
package spacing
