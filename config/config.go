// Package config loads the batch configuration: output locations, encoding
// options and the table of instance configurations.
//
// Values come from built-in defaults, an optional TOML file and ABAGEN_*
// environment variables (e.g. ABAGEN_PARALLEL, ABAGEN_OUTPUT_ATOM_DIR), in
// increasing precedence. The default table reproduces the stock four
// configurations.
package config

import (
	"math/rand"

	"github.com/katalvlaran/abasp/builder"
)

// Config is the full batch configuration.
type Config struct {
	// Parallel bounds how many configurations run at once; 0 and 1 both mean sequential.
	Parallel  int              `mapstructure:"parallel" toml:"parallel" yaml:"parallel" json:"parallel"`
	Output    OutputConfig     `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Encoding  EncodingConfig   `mapstructure:"encoding" toml:"encoding" yaml:"encoding" json:"encoding"`
	Instances []InstanceConfig `mapstructure:"instances" toml:"instances" yaml:"instances" json:"instances"`
}

// OutputConfig names the output directories and files.
type OutputConfig struct {
	AtomDir    string `mapstructure:"atom_dir" toml:"atom_dir" yaml:"atom_dir" json:"atom_dir"`
	DefaultDir string `mapstructure:"default_dir" toml:"default_dir" yaml:"default_dir" json:"default_dir"`
	Metadata   string `mapstructure:"metadata" toml:"metadata" yaml:"metadata" json:"metadata"`
	// Manifest is the run manifest path; empty disables it.
	Manifest string `mapstructure:"manifest" toml:"manifest" yaml:"manifest" json:"manifest"`
}

// EncodingConfig selects encoder variants.
type EncodingConfig struct {
	// Style is the default-logic rule style: "formula" or "schema".
	Style string `mapstructure:"style" toml:"style" yaml:"style" json:"style"`
	// ClosedOrder makes the atom encoding inherit along the transitive closure of the order.
	ClosedOrder bool `mapstructure:"closed_order" toml:"closed_order" yaml:"closed_order" json:"closed_order"`
}

// InstanceConfig shapes one generated framework and its goals.
type InstanceConfig struct {
	Atoms           int     `mapstructure:"atoms" toml:"atoms" yaml:"atoms" json:"atoms"`
	AssumptionRatio float64 `mapstructure:"assumption_ratio" toml:"assumption_ratio" yaml:"assumption_ratio" json:"assumption_ratio"`
	Standpoints     int     `mapstructure:"standpoints" toml:"standpoints" yaml:"standpoints" json:"standpoints"`
	// Facts is the exact number of universal facts.
	Facts int `mapstructure:"facts" toml:"facts" yaml:"facts" json:"facts"`
	Goals int `mapstructure:"goals" toml:"goals" yaml:"goals" json:"goals"`
	// RulesMin and RulesMax bound rules per standpoint. Both zero means
	// [1+i, 2+i] for the i-th configuration (1-based).
	RulesMin int `mapstructure:"rules_min" toml:"rules_min" yaml:"rules_min" json:"rules_min"`
	RulesMax int `mapstructure:"rules_max" toml:"rules_max" yaml:"rules_max" json:"rules_max"`
	// MaxBodyNonAsm and MaxBodyAsm bound each body part; nil means DefaultMaxBody.
	MaxBodyNonAsm *int `mapstructure:"max_body_nonasm" toml:"max_body_nonasm,omitempty" yaml:"max_body_nonasm,omitempty" json:"max_body_nonasm,omitempty"`
	MaxBodyAsm    *int `mapstructure:"max_body_asm" toml:"max_body_asm,omitempty" yaml:"max_body_asm,omitempty" json:"max_body_asm,omitempty"`
	// OrderProbability overrides builder.DefaultOrderProbability when set.
	OrderProbability *float64 `mapstructure:"order_probability" toml:"order_probability,omitempty" yaml:"order_probability,omitempty" json:"order_probability,omitempty"`
	// Seed overrides the default seed, which is the 1-based configuration index.
	Seed *int64 `mapstructure:"seed" toml:"seed,omitempty" yaml:"seed,omitempty" json:"seed,omitempty"`
}

// RulesRange returns the rules-per-standpoint range for the index-th
// configuration (1-based).
func (c InstanceConfig) RulesRange(index int) builder.Range {
	if c.RulesMin == 0 && c.RulesMax == 0 {
		return builder.Range{Min: 1 + index, Max: 2 + index}
	}
	return builder.Range{Min: c.RulesMin, Max: c.RulesMax}
}

// BodyNonAsm returns the non-assumption body bound, DefaultMaxBody when unset.
func (c InstanceConfig) BodyNonAsm() int { return intOr(c.MaxBodyNonAsm, DefaultMaxBody) }

// BodyAsm returns the assumption body bound, DefaultMaxBody when unset.
func (c InstanceConfig) BodyAsm() int { return intOr(c.MaxBodyAsm, DefaultMaxBody) }

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

// Params converts c into generator parameters for the index-th configuration.
func (c InstanceConfig) Params(index int) builder.Params {
	return builder.Params{
		Atoms:              c.Atoms,
		AssumptionRatio:    c.AssumptionRatio,
		Standpoints:        c.Standpoints,
		RulesPerStandpoint: c.RulesRange(index),
		MaxBodyNonAsm:      c.BodyNonAsm(),
		MaxBodyAsm:         c.BodyAsm(),
		FactsPerUniversal:  builder.Fixed(c.Facts),
	}
}

// SeedFor returns the configured seed, or index when none is set.
func (c InstanceConfig) SeedFor(index int) int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return int64(index)
}

// Rand returns a fresh RNG seeded with SeedFor(index). One RNG drives both
// generation and goal selection of a configuration.
func (c InstanceConfig) Rand(index int) *rand.Rand {
	return rand.New(rand.NewSource(c.SeedFor(index)))
}

// BuilderOptions returns the generator options for c drawing from rng.
func (c InstanceConfig) BuilderOptions(rng *rand.Rand) []builder.Option {
	opts := []builder.Option{builder.WithRand(rng)}
	if c.OrderProbability != nil {
		opts = append(opts, builder.WithOrderProbability(*c.OrderProbability))
	}
	return opts
}
