package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/abasp/builder"
	"github.com/katalvlaran/abasp/defaultenc"
	"github.com/katalvlaran/abasp/errors"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Parallel < 0 {
		return errors.NewInvalidConfigError("parallel must be >= 0, got %d", c.Parallel)
	}

	if c.Output.AtomDir == "" {
		return errors.NewInvalidConfigError("output.atom_dir cannot be empty")
	}
	if c.Output.DefaultDir == "" {
		return errors.NewInvalidConfigError("output.default_dir cannot be empty")
	}
	for _, d := range []struct{ key, dir string }{
		{"output.atom_dir", c.Output.AtomDir},
		{"output.default_dir", c.Output.DefaultDir},
	} {
		if clean := filepath.Clean(d.dir); clean == "." || clean == filepath.Dir(clean) {
			return errors.NewInvalidConfigError("%s cannot be %q, it is emptied before every run", d.key, d.dir)
		}
	}
	if nested(c.Output.AtomDir, c.Output.DefaultDir) || nested(c.Output.DefaultDir, c.Output.AtomDir) {
		return errors.NewInvalidConfigError("output.atom_dir %q and output.default_dir %q must be separate directories",
			c.Output.AtomDir, c.Output.DefaultDir)
	}
	if c.Output.Metadata == "" {
		return errors.NewInvalidConfigError("output.metadata cannot be empty")
	}

	if _, err := defaultenc.ParseStyle(c.Encoding.Style); err != nil {
		return errors.NewInvalidConfigError("encoding.style: %v", err)
	}

	for i, inst := range c.Instances {
		if err := inst.validate(i + 1); err != nil {
			return err
		}
	}
	return nil
}

// nested reports whether dir is parent itself or lies inside it.
func nested(parent, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(dir))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// validate checks one instance; index is 1-based.
func (c InstanceConfig) validate(index int) error {
	key := func(name string) string { return "instances[" + strconv.Itoa(index) + "]." + name }

	if c.Atoms < builder.MinAtoms {
		return errors.NewInvalidConfigError("%s must be >= %d, got %d", key("atoms"), builder.MinAtoms, c.Atoms)
	}
	if c.AssumptionRatio < builder.MinProbability || c.AssumptionRatio > builder.MaxProbability {
		return errors.NewInvalidConfigError("%s must be in [0,1], got %g", key("assumption_ratio"), c.AssumptionRatio)
	}
	if c.Standpoints < 0 {
		return errors.NewInvalidConfigError("%s must be >= 0, got %d", key("standpoints"), c.Standpoints)
	}
	if c.Facts < 0 {
		return errors.NewInvalidConfigError("%s must be >= 0, got %d", key("facts"), c.Facts)
	}
	if c.Goals < 0 {
		return errors.NewInvalidConfigError("%s must be >= 0, got %d", key("goals"), c.Goals)
	}
	if r := c.RulesRange(index); r.Min < 0 || r.Min > r.Max {
		return errors.NewInvalidConfigError("%s/%s must satisfy 0 <= min <= max, got [%d,%d]",
			key("rules_min"), key("rules_max"), r.Min, r.Max)
	}
	if c.BodyNonAsm() < 0 || c.BodyAsm() < 0 {
		return errors.NewInvalidConfigError("%s and %s must be >= 0, got %d and %d",
			key("max_body_nonasm"), key("max_body_asm"), c.BodyNonAsm(), c.BodyAsm())
	}
	if p := c.OrderProbability; p != nil && (*p < builder.MinProbability || *p > builder.MaxProbability) {
		return errors.NewInvalidConfigError("%s must be in [0,1], got %g", key("order_probability"), *p)
	}
	return nil
}
