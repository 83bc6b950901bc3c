// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// options.go - functional options for Generate.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/abasp/core"
)

// Option customizes Generate by mutating the generatorConfig before the
// build starts.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithRand provides an explicit RNG. Panics on nil.
// The generator advances r; share it only with calls that run afterwards on
// the same goroutine.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand seeded with seed.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrderProbability sets the inclusion probability of optional order
// edges. Panics if p is outside [0,1].
// Complexity: O(1) time, O(1) space.
func WithOrderProbability(p float64) Option {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic("builder: WithOrderProbability(p outside [0,1])")
	}
	return func(c *generatorConfig) {
		c.orderProb = p
	}
}

// WithAtomScheme overrides base-atom naming (1-based index). Names must be
// distinct and must not start with core.ContraryPrefix. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithAtomScheme(fn func(int) core.Atom) Option {
	if fn == nil {
		panic("builder: WithAtomScheme(nil)")
	}
	return func(c *generatorConfig) {
		c.atomFn = fn
	}
}

// WithStandpointScheme overrides standpoint naming (1-based index). Names
// must be distinct and differ from core.Universal. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithStandpointScheme(fn func(int) core.Standpoint) Option {
	if fn == nil {
		panic("builder: WithStandpointScheme(nil)")
	}
	return func(c *generatorConfig) {
		c.standpointFn = fn
	}
}
