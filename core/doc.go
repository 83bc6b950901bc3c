// Package core defines the value types of an Assumption-Based Argumentation
// framework with standpoints: atoms, tagged literals, standpoints, order
// edges, rules and the Framework aggregate that ties them together.
//
// Everything here is a plain value. A Framework is produced once by the
// builder package and is read-only afterwards; encoders and the goal selector
// only read it.
//
// Invariants of a well-formed Framework (see Framework.Validate):
//
//   - Assumptions and NonAssumptions partition Atoms.
//   - Every assumption a has exactly one contrary, Neg(a); contraries are
//     injective and never base atoms.
//   - Rule heads are non-assumptions or contraries, never bare assumptions.
//   - Declared Facts live at Universal with empty bodies.
//   - Order holds (s, Universal) for every other standpoint s, and Universal
//     never appears as the lower end of an edge. Order is NOT transitively
//     closed; see package hierarchy for the closure.
//   - Standpoints[0] is Universal, followed by s1..sN.
//
// Rules with both bodies empty are facts semantically, but only the ones
// generated at Universal are listed in Facts. ZeroBodyRules returns the wider
// set.
package core
