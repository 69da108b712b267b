// Package compose draws a contribution-calendar grid as a self-contained,
// animated SVG document.
//
// Layout:
//
//   - A canonical 53×7 background of empty cells, always, whatever the
//     width of the input grid.
//   - Lit cells on top, coloured by intensity from the selected palette,
//     each fading in with a per-cell delay picked by the AnimationType.
//   - When content is wider than 53 columns the lit layer slides left and
//     back on a loop so the whole message becomes readable. The layer is
//     clipped to the grid area.
//   - Title, "Contribution Graph" subtitle, month ticks, Mon/Wed/Fri labels,
//     an optional stats line and the message caption.
//
// Determinism:
//
//	Compose is pure: the same grid and options yield byte-identical output.
//	Random delays come from a seeded source (WithSeed, WithRand), never from
//	the global one, so the random mode is reproducible as well.
//
// All caller text (title, message, stats) is XML-escaped by the svgo writer.
package compose
