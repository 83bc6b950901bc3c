// Package builder generates random ABA-with-standpoints frameworks.
//
// Generate resolves functional options into an immutable generatorConfig and
// runs the construction steps in a fixed order, so the same Params and seed
// always produce the same core.Framework:
//
//  1. base atoms a1..aN; clamp(round(ratio·N), 1, N−1) of them sampled
//     without replacement as assumptions, the rest non-assumptions;
//  2. one fresh contrary core.Neg(a) per assumption;
//  3. standpoints: core.Universal, then s1..sK;
//  4. order: (s, Universal) for every s, plus (s_i, s_j) for i > j ≥ 1 with
//     independent probability p (default DefaultOrderProbability);
//  5. head pool: non-assumptions followed by contraries;
//  6. at least one fact at Universal, heads drawn uniformly;
//  7. per non-universal standpoint, a uniform number of rules with uniform
//     heads and distinct body atoms drawn without replacement.
//
// Randomness is explicit: a stochastic build needs WithSeed or WithRand, and
// the *rand.Rand is threaded through every sampling helper. No package-level
// random state is touched, so builds can run concurrently as long as they do
// not share a *rand.Rand.
//
// Errors:
//
//   - ErrTooFewAtoms     Atoms < MinAtoms.
//   - ErrInvalidRatio    AssumptionRatio outside [0,1] or NaN.
//   - ErrNegativeSize    negative standpoint count or body maximum.
//   - ErrInvalidRange    a Range with Min < 0 or Min > Max.
//   - ErrNeedRandSource  neither WithSeed nor WithRand supplied.
//
// Option constructors panic on meaningless values (WithRand(nil),
// WithOrderProbability outside [0,1], nil naming schemes); Generate itself
// never panics.
package builder
