// Package batch runs the instance-generation pipeline over a table of
// configurations.
//
// For the i-th configuration (1-based) Run generates one framework, encodes
// it once in each encoding, selects goals, and writes one file per goal into
// each output directory:
//
//	<atom_dir>/instance_{i}_goal-{S}-{head}.lp     atom encoding + "% goal" + g(head_S).
//	<default_dir>/instance_{i}_goal-{S}-{head}.lp  default encoding + ":- not known(box(S,R))."
//
// A metadata CSV lists every goal file with the header
// instance,instance_raw,goal,standpoint, and an optional YAML manifest
// records the run id, the parameters and per-configuration counts.
//
// Every configuration is generated and encoded in memory before either
// output directory is cleared, so a cancelled or failed run leaves earlier
// output in place. Configurations may run concurrently; each owns its RNG,
// and rows are gathered in configuration order, so the output does not
// depend on the parallelism.
package batch
