// Package glyph is the pixel font behind pixelcal: a static atlas that maps
// supported characters to fixed-height binary bitmaps, plus a handful of
// multi-column icon tokens.
//
// What:
//
//   - Bitmap: immutable rows×columns of on/off cells (rows top to bottom).
//   - Font:   Pixel (fully populated 3×5 font), Slim (narrow overrides with
//     Pixel fallback) and Bold (Pixel dilated by one column).
//   - Lookup: case-insensitive character → Bitmap resolution.
//   - MatchIcon: multi-character tokens such as ":NODE:" that render as one
//     wide bitmap.
//
// Supported set:
//
//	A–Z  0–9  space  ! ? . , : - + = ( )
//
// Space is part of the supported set but has no bitmap: renderers advance
// past it without emitting cells. Anything else is absent; deciding whether
// absent characters are acceptable input is the validator's job, not the
// atlas's.
//
// Complexity:
//
//   - Lookup, Supported, Width: O(1).
//   - MatchIcon: O(T·L) for T tokens of length L (both tiny).
//   - Bitmap.Scale(k): O(W·H·k²).
package glyph
