package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/abasp/defaultenc"
)

const (
	// DefaultFileName is the configuration file looked up in the working directory.
	DefaultFileName = "abagen.toml"
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "ABAGEN"

	DefaultAtomDir    = "instances_aba"
	DefaultDefaultDir = "instances_sd"
	DefaultMetadata   = "instances_metadata.csv"
	DefaultManifest   = "manifest.yaml"
	DefaultParallel   = 1
	DefaultMaxBody    = 2
)

// stock is the built-in table: atoms, assumption ratio, standpoints, facts, goals.
var stock = []struct {
	atoms       int
	ratio       float64
	standpoints int
	facts       int
	goals       int
}{
	{8, 0.25, 1, 1, 5},
	{12, 0.3, 2, 2, 5},
	{16, 0.35, 3, 3, 5},
	{20, 0.4, 4, 4, 5},
}

// DefaultInstances returns the stock configurations. Rule ranges are left
// zero so they derive from the configuration index; seeds are unset so they
// default to the index.
func DefaultInstances() []InstanceConfig {
	out := make([]InstanceConfig, len(stock))
	for i, s := range stock {
		out[i] = InstanceConfig{
			Atoms:           s.atoms,
			AssumptionRatio: s.ratio,
			Standpoints:     s.standpoints,
			Facts:           s.facts,
			Goals:           s.goals,
			MaxBodyNonAsm:   intPtr(DefaultMaxBody),
			MaxBodyAsm:      intPtr(DefaultMaxBody),
		}
	}
	return out
}

func intPtr(n int) *int { return &n }

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Parallel: DefaultParallel,
		Output: OutputConfig{
			AtomDir:    DefaultAtomDir,
			DefaultDir: DefaultDefaultDir,
			Metadata:   DefaultMetadata,
			Manifest:   DefaultManifest,
		},
		Encoding:  EncodingConfig{Style: string(defaultenc.StyleFormula)},
		Instances: DefaultInstances(),
	}
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("parallel", DefaultParallel)

	v.SetDefault("output.atom_dir", DefaultAtomDir)
	v.SetDefault("output.default_dir", DefaultDefaultDir)
	v.SetDefault("output.metadata", DefaultMetadata)
	v.SetDefault("output.manifest", DefaultManifest)

	v.SetDefault("encoding.style", string(defaultenc.StyleFormula))
	v.SetDefault("encoding.closed_order", false)

	instances := make([]map[string]interface{}, 0, len(stock))
	for _, c := range DefaultInstances() {
		instances = append(instances, map[string]interface{}{
			"atoms":            c.Atoms,
			"assumption_ratio": c.AssumptionRatio,
			"standpoints":      c.Standpoints,
			"facts":            c.Facts,
			"goals":            c.Goals,
			"max_body_nonasm":  c.BodyNonAsm(),
			"max_body_asm":     c.BodyAsm(),
		})
	}
	v.SetDefault("instances", instances)
}
