package batch

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abasp/errors"
)

// Manifest summarises one run.
type Manifest struct {
	RunID       string             `yaml:"run_id"`
	CreatedAt   time.Time          `yaml:"created_at"`
	Style       string             `yaml:"style"`
	ClosedOrder bool               `yaml:"closed_order"`
	Instances   []ManifestInstance `yaml:"instances"`
}

// ManifestInstance records the parameters and outcome of one configuration.
type ManifestInstance struct {
	Name            string  `yaml:"name"`
	Seed            int64   `yaml:"seed"`
	Atoms           int     `yaml:"atoms"`
	AssumptionRatio float64 `yaml:"assumption_ratio"`
	Assumptions     int     `yaml:"assumptions"`
	Standpoints     int     `yaml:"standpoints"`
	RulesMin        int     `yaml:"rules_min"`
	RulesMax        int     `yaml:"rules_max"`
	Edges           int     `yaml:"edges"`
	Facts           int     `yaml:"facts"`
	Rules           int     `yaml:"rules"`
	Goals           int     `yaml:"goals"`
}

// WriteManifest writes m to path as YAML.
func WriteManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal manifest")
	}
	return writeText(path, string(data))
}
