// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// api.go - Params, Range and the Generate orchestrator with its construction steps.

package builder

import (
	"math"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/logger"
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// Fixed returns the degenerate range [n, n].
// Complexity: O(1) time, O(1) space.
func Fixed(n int) Range { return Range{Min: n, Max: n} }

// Params are the numeric shape parameters of one framework.
type Params struct {
	// Atoms is the number of base atoms (≥ MinAtoms).
	Atoms int
	// AssumptionRatio is the requested share of assumptions in [0,1].
	// The effective count is always clamped to [1, Atoms-1].
	AssumptionRatio float64
	// Standpoints is the number of non-universal standpoints.
	Standpoints int
	// RulesPerStandpoint bounds the rule count of each non-universal standpoint.
	RulesPerStandpoint Range
	// MaxBodyNonAsm and MaxBodyAsm bound each body part; sizes are drawn from [0, max].
	MaxBodyNonAsm int
	MaxBodyAsm    int
	// FactsPerUniversal bounds the number of universal facts (at least one is made).
	FactsPerUniversal Range
}

// DefaultParams mirrors the shape of the smallest stock configuration.
// Complexity: O(1) time, O(1) space.
func DefaultParams() Params {
	return Params{
		Atoms:              8,
		AssumptionRatio:    0.25,
		Standpoints:        1,
		RulesPerStandpoint: Range{Min: 1, Max: 5},
		MaxBodyNonAsm:      2,
		MaxBodyAsm:         2,
		FactsPerUniversal:  Range{Min: 1, Max: 3},
	}
}

// AssumptionCount returns clamp(round(ratio·atoms), 1, atoms−1), rounding
// half to even.
// Complexity: O(1) time, O(1) space.
func AssumptionCount(atoms int, ratio float64) int {
	n := int(math.RoundToEven(ratio * float64(atoms)))
	if n > atoms-1 {
		n = atoms - 1
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Generate builds one framework from p. The RNG must be supplied with
// WithSeed or WithRand; the same p and seed always yield the same framework.
//
// Complexity: O(A + K² + F + K·R·(A)) where A = atoms, K = standpoints,
// F = facts and R = rules per standpoint (body sampling copies its population).
func Generate(p Params, opts ...Option) (*core.Framework, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	cfg := newGeneratorConfig(opts...)
	if cfg.rng == nil {
		return nil, errors.WithHint(
			errors.Wrapf(ErrNeedRandSource, "%s", MethodGenerate),
			"pass builder.WithSeed(n) or builder.WithRand(r)")
	}

	f := &core.Framework{}
	buildAtoms(f, p, cfg)
	buildStandpoints(f, p, cfg)
	buildOrder(f, cfg)
	pool := f.HeadPool()
	buildFacts(f, p, cfg, pool)
	buildRules(f, p, cfg, pool)

	logger.Debugw("generated framework",
		logger.FieldAtoms, len(f.Atoms),
		logger.FieldAssumptions, len(f.Assumptions),
		logger.FieldStandpoints, len(f.Standpoints),
		logger.FieldEdges, len(f.Order),
		logger.FieldFacts, len(f.Facts),
		logger.FieldRules, len(f.Rules))

	return f, nil
}

// buildAtoms covers steps 1 and 2: atoms, the assumption split and contraries.
// Complexity: O(A) time, O(A) space.
func buildAtoms(f *core.Framework, p Params, cfg generatorConfig) {
	f.Atoms = make([]core.Atom, p.Atoms)
	for i := range f.Atoms {
		f.Atoms[i] = cfg.atomFn(i + 1)
	}

	chosen := make(map[core.Atom]bool, p.Atoms)
	for _, a := range sampleAtoms(cfg.rng, f.Atoms, AssumptionCount(p.Atoms, p.AssumptionRatio)) {
		chosen[a] = true
	}

	f.Contrary = make(map[core.Atom]core.Literal, len(chosen))
	for _, a := range f.Atoms {
		if chosen[a] {
			f.Assumptions = append(f.Assumptions, a)
			f.Contrary[a] = core.Neg(a)
		} else {
			f.NonAssumptions = append(f.NonAssumptions, a)
		}
	}
}

// buildStandpoints covers step 3.
// Complexity: O(K) time, O(K) space.
func buildStandpoints(f *core.Framework, p Params, cfg generatorConfig) {
	f.Standpoints = make([]core.Standpoint, 0, p.Standpoints+1)
	f.Standpoints = append(f.Standpoints, core.Universal)
	for i := 1; i <= p.Standpoints; i++ {
		f.Standpoints = append(f.Standpoints, cfg.standpointFn(i))
	}
}

// buildOrder covers step 4. Trials run for i asc, j asc with j < i, so the
// outcome is stable for a fixed seed.
// Complexity: O(K²) trials; O(E log E) to normalize.
func buildOrder(f *core.Framework, cfg generatorConfig) {
	sps := f.Standpoints
	edges := make([]core.Edge, 0, len(sps))
	for _, s := range sps[1:] {
		edges = append(edges, core.Edge{Lower: s, Upper: core.Universal})
	}
	for i := 1; i < len(sps); i++ {
		for j := 1; j < i; j++ {
			if cfg.rng.Float64() < cfg.orderProb {
				edges = append(edges, core.Edge{Lower: sps[i], Upper: sps[j]})
			}
		}
	}
	f.Order = core.NormalizeOrder(edges)
}

// buildFacts covers step 6.
// Complexity: O(F) time, O(F) space.
func buildFacts(f *core.Framework, p Params, cfg generatorConfig, pool []core.Literal) {
	n := intBetween(cfg.rng, p.FactsPerUniversal.Min, p.FactsPerUniversal.Max)
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		fact := core.Rule{Head: pickLiteral(cfg.rng, pool), Standpoint: core.Universal}
		f.Facts = append(f.Facts, fact)
		f.Rules = append(f.Rules, fact)
	}
}

// buildRules covers step 7. Zero-size bodies are kept as rules and are not
// added to Facts.
// Complexity: O(K·R·A) time; each body draw copies its population.
func buildRules(f *core.Framework, p Params, cfg generatorConfig, pool []core.Literal) {
	for _, s := range f.Standpoints[1:] {
		n := intBetween(cfg.rng, p.RulesPerStandpoint.Min, p.RulesPerStandpoint.Max)
		for i := 0; i < n; i++ {
			head := pickLiteral(cfg.rng, pool)
			kNonAsm := cfg.rng.Intn(p.MaxBodyNonAsm + 1)
			kAsm := cfg.rng.Intn(p.MaxBodyAsm + 1)
			f.Rules = append(f.Rules, core.Rule{
				Head:       head,
				BodyNonAsm: sampleAtoms(cfg.rng, f.NonAssumptions, kNonAsm),
				BodyAsm:    sampleAtoms(cfg.rng, f.Assumptions, kAsm),
				Standpoint: s,
			})
		}
	}
}
