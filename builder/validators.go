// SPDX-License-Identifier: MIT
// Package: abasp/builder
//
// validators.go - Params validation in a fixed priority order.

package builder

import (
	"math"

	"github.com/katalvlaran/abasp/errors"
)

// validateParams checks p in the documented priority order: sizes first,
// then the ratio, then ranges.
// Complexity: O(1) time, O(1) space.
func validateParams(p Params) error {
	if p.Atoms < MinAtoms {
		return errors.Wrapf(ErrTooFewAtoms, "%s: atoms=%d < min=%d", MethodGenerate, p.Atoms, MinAtoms)
	}
	if err := validateNonNegative("standpoints", p.Standpoints); err != nil {
		return err
	}
	if err := validateNonNegative("max_body_nonasm", p.MaxBodyNonAsm); err != nil {
		return err
	}
	if err := validateNonNegative("max_body_asm", p.MaxBodyAsm); err != nil {
		return err
	}
	if math.IsNaN(p.AssumptionRatio) || p.AssumptionRatio < 0 || p.AssumptionRatio > 1 {
		return errors.Wrapf(ErrInvalidRatio, "%s: assumption_ratio=%v not in [0,1]", MethodGenerate, p.AssumptionRatio)
	}
	if err := validateRange("rules_per_standpoint", p.RulesPerStandpoint); err != nil {
		return err
	}
	return validateRange("facts_per_universal", p.FactsPerUniversal)
}

// validateNonNegative rejects got < 0 with ErrNegativeSize.
// Complexity: O(1).
func validateNonNegative(name string, got int) error {
	if got < 0 {
		return errors.Wrapf(ErrNegativeSize, "%s: %s=%d < 0", MethodGenerate, name, got)
	}
	return nil
}

// validateRange rejects r unless 0 <= Min <= Max, with ErrInvalidRange.
// Complexity: O(1).
func validateRange(name string, r Range) error {
	if r.Min < 0 || r.Min > r.Max {
		return errors.Wrapf(ErrInvalidRange, "%s: %s=[%d,%d]", MethodGenerate, name, r.Min, r.Max)
	}
	return nil
}
