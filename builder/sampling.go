// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// sampling.go - seeded draws shared by the construction steps.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/abasp/core"
)

// intBetween draws uniformly from the closed interval [lo, hi].
// Complexity: O(1) time, O(1) space.
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// sampleAtoms draws min(k, len(pop)) distinct atoms without replacement,
// in draw order. pop is not modified.
// Complexity: O(len(pop)) copy + O(k) swaps.
func sampleAtoms(rng *rand.Rand, pop []core.Atom, k int) []core.Atom {
	if k > len(pop) {
		k = len(pop)
	}
	if k <= 0 {
		return nil
	}
	work := append([]core.Atom(nil), pop...)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k:k]
}

// pickLiteral draws one literal uniformly from pool (len(pool) > 0).
// Complexity: O(1) time, O(1) space.
func pickLiteral(rng *rand.Rand, pool []core.Literal) core.Literal {
	return pool[rng.Intn(len(pool))]
}
