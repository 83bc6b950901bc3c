// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// constants.go - method names, size floors, probability bounds and naming prefixes.

package builder

// MethodGenerate prefixes errors returned by Generate.
const MethodGenerate = "Generate"

// MinAtoms is the smallest atom count that leaves room for one assumption
// and one non-assumption.
const MinAtoms = 2

// DefaultOrderProbability is the inclusion probability of each optional
// edge between non-universal standpoints.
const DefaultOrderProbability = 0.3

// Probability bounds accepted by WithOrderProbability, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Default naming prefixes for atoms and standpoints.
const (
	AtomPrefix       = "a"
	StandpointPrefix = "s"
)
