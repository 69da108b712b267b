// Package grid holds the contribution-calendar matrix that pixelcal renders
// into: a fixed Width×Height block of per-day intensities addressed
// column-first, grid.At(column, row).
//
// What:
//
//   - Grid dimensions are fixed at construction.
//   - Writes outside the grid are dropped silently (clipping, not an error).
//   - Intensities are clamped into [Empty, MaxIntensity]; renderers emit only
//     Empty or On, the full 0–4 range mirrors the 5-level calendar palette.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Sum, Lit, Clone, Equal, String: O(W×H).
//
// Errors:
//
//   - ErrBadSize: non-positive width or height.
//   - ErrEmptyGrid: FromColumns got no columns or no rows.
//   - ErrNonRectangular: FromColumns got columns of differing lengths.
package grid
