package core

import (
	"github.com/katalvlaran/abasp/errors"
)

// Sentinel errors reported by Validate. Callers branch with errors.Is.
var (
	// ErrPartition indicates Assumptions/NonAssumptions do not partition Atoms.
	ErrPartition = errors.New("core: assumptions and non-assumptions do not partition atoms")

	// ErrContrary indicates a missing, shared or clashing contrary.
	ErrContrary = errors.New("core: bad contrary mapping")

	// ErrAssumptionHead indicates a rule concluding a bare assumption or an unknown literal.
	ErrAssumptionHead = errors.New("core: illegal rule head")

	// ErrBody indicates a body atom in the wrong partition.
	ErrBody = errors.New("core: illegal rule body")

	// ErrFactShape indicates a declared fact with a body or off Universal.
	ErrFactShape = errors.New("core: malformed fact")

	// ErrStandpoints indicates a standpoint list not starting with Universal or with duplicates.
	ErrStandpoints = errors.New("core: malformed standpoint list")

	// ErrOrder indicates a missing mandatory edge or an edge out of Universal.
	ErrOrder = errors.New("core: malformed standpoint order")
)

// Validate checks the structural invariants documented in the package doc.
// It returns the first violation found.
func (f *Framework) Validate() error {
	if err := f.validateAtoms(); err != nil {
		return err
	}
	if err := f.validateStandpoints(); err != nil {
		return err
	}
	return f.validateRules()
}

func (f *Framework) validateAtoms() error {
	base := make(map[Atom]bool, len(f.Atoms))
	for _, a := range f.Atoms {
		base[a] = true
	}

	seen := make(map[Atom]bool, len(f.Atoms))
	for _, a := range f.Assumptions {
		if !base[a] || seen[a] {
			return errors.Wrapf(ErrPartition, "Validate: assumption %s", a)
		}
		seen[a] = true
	}
	for _, a := range f.NonAssumptions {
		if !base[a] || seen[a] {
			return errors.Wrapf(ErrPartition, "Validate: non-assumption %s", a)
		}
		seen[a] = true
	}
	if len(seen) != len(base) {
		return errors.Wrapf(ErrPartition, "Validate: %d of %d atoms classified", len(seen), len(base))
	}

	if len(f.Contrary) != len(f.Assumptions) {
		return errors.Wrapf(ErrContrary, "Validate: %d contraries for %d assumptions", len(f.Contrary), len(f.Assumptions))
	}
	used := make(map[Literal]Atom, len(f.Contrary))
	for _, a := range f.Assumptions {
		c, ok := f.Contrary[a]
		if !ok {
			return errors.Wrapf(ErrContrary, "Validate: assumption %s has no contrary", a)
		}
		if other, dup := used[c]; dup {
			return errors.Wrapf(ErrContrary, "Validate: %s shared by %s and %s", c, other, a)
		}
		if !c.Negated && base[c.Atom] {
			return errors.Wrapf(ErrContrary, "Validate: contrary %s is a base atom", c)
		}
		if base[Atom(c.Name())] {
			return errors.Wrapf(ErrContrary, "Validate: contrary %s clashes with a base atom name", c)
		}
		used[c] = a
	}
	return nil
}

func (f *Framework) validateStandpoints() error {
	if len(f.Standpoints) == 0 || f.Standpoints[0] != Universal {
		return errors.Wrap(ErrStandpoints, "Validate: universal standpoint must come first")
	}
	known := make(map[Standpoint]bool, len(f.Standpoints))
	for _, s := range f.Standpoints {
		if known[s] {
			return errors.Wrapf(ErrStandpoints, "Validate: duplicate standpoint %s", s)
		}
		known[s] = true
	}

	edges := make(map[Edge]bool, len(f.Order))
	for _, e := range f.Order {
		edges[e] = true
		if !known[e.Lower] || !known[e.Upper] {
			return errors.Wrapf(ErrOrder, "Validate: edge (%s,%s) names an unknown standpoint", e.Lower, e.Upper)
		}
		if e.Lower == Universal {
			return errors.Wrapf(ErrOrder, "Validate: universal has outgoing edge to %s", e.Upper)
		}
	}
	for _, s := range f.NonUniversal() {
		if !edges[Edge{Lower: s, Upper: Universal}] {
			return errors.Wrapf(ErrOrder, "Validate: missing edge (%s,%s)", s, Universal)
		}
	}
	return nil
}

func (f *Framework) validateRules() error {
	heads := make(map[Literal]bool)
	for _, l := range f.HeadPool() {
		heads[l] = true
	}
	nonAsm := make(map[Atom]bool, len(f.NonAssumptions))
	for _, a := range f.NonAssumptions {
		nonAsm[a] = true
	}

	for i, r := range f.Rules {
		if !heads[r.Head] {
			return errors.Wrapf(ErrAssumptionHead, "Validate: rule %d head %s", i, r.Head)
		}
		for _, b := range r.BodyNonAsm {
			if !nonAsm[b] {
				return errors.Wrapf(ErrBody, "Validate: rule %d non-assumption body atom %s", i, b)
			}
		}
		for _, b := range r.BodyAsm {
			if !f.IsAssumption(b) {
				return errors.Wrapf(ErrBody, "Validate: rule %d assumption body atom %s", i, b)
			}
		}
	}
	for i, r := range f.Facts {
		if !r.IsFact() || r.Standpoint != Universal {
			return errors.Wrapf(ErrFactShape, "Validate: fact %d (%s at %s)", i, r, r.Standpoint)
		}
	}
	return nil
}
