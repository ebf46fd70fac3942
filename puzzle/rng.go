// SPDX-License-Identifier: MIT
//
// RNG policy for the generator.
//
//   - Determinism: same seed ⇒ identical puzzle sequence on the same graph.
//   - No time-based sources hidden anywhere; callers wanting variety pass a
//     seed derived from the clock themselves.
//   - math/rand.Rand is NOT goroutine-safe; a Generator owns its Source.

package puzzle

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
