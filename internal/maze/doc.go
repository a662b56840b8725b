// Package maze decodes mazes drawn as images and solves them.
//
// A maze image uses a fixed four-color palette, one pixel per cell:
//   - black   (0,0,0)       wall
//   - white   (255,255,255) open path
//   - red     (255,0,0)     start (exactly one)
//   - green   (0,255,0)     end (exactly one)
//
// Any other color makes the image invalid. Blue (0,0,255) is reserved for
// cells walked by the solver and only ever appears in debug output.
//
// # Coordinate System
//
// Cells are addressed with image.Point: X is the column and Y the row, both
// 0-based from the top-left corner of the image bounds.
//
// # Solving
//
// PathFinder performs an exhaustive depth-first search with backtracking,
// trying neighbours in the fixed order left, right, up, down. It returns the
// first route it finds, which is not necessarily the shortest. The search runs
// on an explicit stack, so very long corridors cannot exhaust the goroutine
// stack.
//
// # Error Handling
//
// Decoding is all-or-nothing and reports one of the sentinel errors
// (ErrInvalidPixelColor, ErrMissingEndpoints, ErrTooManyEndpoints,
// ErrIncompatibleDimensions) wrapped with detail; match them with errors.Is.
// An unsolvable maze is not an error from the search itself: the Solution
// simply reports Solved == false with an empty path.
package maze
