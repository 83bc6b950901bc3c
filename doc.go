// Package abasp generates random assumption-based argumentation frameworks
// with standpoints and compiles them into two answer-set programs.
//
// A framework has base atoms split into assumptions and non-assumptions,
// one contrary per assumption, a set of standpoints ("all" is the universal
// one) with a "more specific than" order, and rules indexed by standpoint.
//
// Packages:
//
//	core/        Atom, Literal, Standpoint, Rule, Framework and their invariants
//	term/        ASP term builders: and{n}, nested and, neg, box, known, form
//	builder/     seeded random framework generation
//	hierarchy/   the standpoint order as a graph: closure, cycles, topological order
//	atomenc/     standpoint-atom encoding (head/body records plus inheritance)
//	defaultenc/  standpoint-default encoding (boxed facts, succ chains, rules)
//	goal/        goal selection and goal-file naming
//	config/      TOML/env configuration of a batch run
//	batch/       runs a configuration table and writes paired instance files
//	cmd/abagen   command line front end
//
// Quick start:
//
//	f, _ := builder.Generate(builder.DefaultParams(), builder.WithSeed(1))
//	pass1, _ := atomenc.Encode(f)
//	pass2, _ := defaultenc.Encode(f, defaultenc.UniversalFactHeads(f))
//
// Both encodings are deterministic for a given framework, and the generator
// is deterministic for a given seed.
package abasp
