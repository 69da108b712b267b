// Package schedule maps a rendered grid onto real calendar dates.
//
// Every grid column is one week and every row one day of that week. The
// window ends today: by default the start date is today − Width×7 days, so a
// 52-column grid covers the last 364 days.
//
// Representation:
//
//	FromGrid emits exactly ONE Event per lit cell, carrying the cell's
//	intensity. Consumers that want one real-world action per unit of
//	intensity call ExpandUnits. Either way, summing intensity (or counting
//	expanded events) per date equals the grid's per-date cell sum.
//
// Ordering is column-major ascending; it only matters for deterministic tests.
//
// Encoders: JSON (encoding/json), YAML (gopkg.in/yaml.v3), CBOR
// (github.com/fxamacker/cbor/v2). Dates are serialized as YYYY-MM-DD.
package schedule
