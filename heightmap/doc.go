// Package heightmap parses a letter-elevation terrain grid into a
// digraph.Graph and answers fewest-step climbing queries over it.
//
// What:
//
//   - Each cell holds a letter 'a'..'z' giving its elevation, or one of the
//     markers 'S' (start, elevation 'a') and 'E' (end, elevation 'z').
//   - Cells become graph nodes in row-major order, so node y*Width+x is (x,y).
//   - A step from a cell to one of its four orthogonal neighbors is an edge
//     when the neighbor is at most one level higher. Descending any amount
//     is allowed.
//
// Queries:
//
//   - ShortestFromStart: fewest steps from S to E.
//   - ShortestFromLowest: fewest steps to E from any elevation-'a' cell.
//
// Complexity:
//
//   - Parse:              O(W×H) time and memory.
//   - ShortestFromStart:  O(W×H).
//   - ShortestFromLowest: O(W×H) per candidate start.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell: malformed input.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateMarker: bad S/E markers.
//   - ErrNoPath: E cannot be reached.
package heightmap
