// Package puzzle defines the two-part solver contract, a registry keyed by
// day number, and a runner that times each part.
//
// Registered solvers (Default):
//
//   - Day 1:  calorie counting over blank-line separated groups.
//   - Day 12: hill climbing over a heightmap (see package heightmap).
package puzzle
