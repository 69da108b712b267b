// SPDX-License-Identifier: MIT
// Package: pixelcal/compose
//
// rng.go: deterministic randomness for the Random animation.
//
// Policy:
//   - seed==0 ⇒ defaultRNGSeed, otherwise the seed verbatim.
//   - No time-based source anywhere; same seed ⇒ same document.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A *rand.Rand given through WithRand
//     must not be shared by concurrent Compose calls.

package compose

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
