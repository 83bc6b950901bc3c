// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// config.go - internal generator configuration and deterministic defaults.

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/abasp/core"
)

// generatorConfig aggregates all knobs used by Generate.
// It is passed by value to the construction steps.
type generatorConfig struct {
	// RNG for every stochastic choice; nil means none was configured.
	rng *rand.Rand
	// Probability of each optional edge between non-universal standpoints.
	orderProb float64
	// Naming schemes, 1-based index -> name.
	atomFn       func(int) core.Atom
	standpointFn func(int) core.Standpoint
}

// newGeneratorConfig applies opts in order over the defaults (last wins).
// Complexity: applying N options costs O(N) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:          nil,
		orderProb:    DefaultOrderProbability,
		atomFn:       indexedAtom,
		standpointFn: indexedStandpoint,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// indexedAtom renders "a1", "a2", ...
// Complexity: O(digits(i)) time.
func indexedAtom(i int) core.Atom {
	return core.Atom(AtomPrefix + strconv.Itoa(i))
}

// indexedStandpoint renders "s1", "s2", ...
// Complexity: O(digits(i)) time.
func indexedStandpoint(i int) core.Standpoint {
	return core.Standpoint(StandpointPrefix + strconv.Itoa(i))
}
