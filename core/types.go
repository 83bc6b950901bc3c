package core

import (
	"strings"
)

// Atom is an opaque propositional name.
type Atom string

// Standpoint names a viewpoint under which rules hold.
type Standpoint string

// Universal is the distinguished standpoint that holds under every other one.
const Universal Standpoint = "all"

// ContraryPrefix is the flat-name marker of a negated literal ("not_a1").
const ContraryPrefix = "not_"

// Literal is an atom tagged with its polarity. Contrary atoms are negated
// literals of the assumption they defeat.
type Literal struct {
	Atom    Atom
	Negated bool
}

// Pos returns the positive literal of a.
func Pos(a Atom) Literal { return Literal{Atom: a} }

// Neg returns the negated literal of a.
func Neg(a Atom) Literal { return Literal{Atom: a, Negated: true} }

// Name renders the flat name used in atom-indexed encodings and file names:
// "a1" for Pos(a1), "not_a1" for Neg(a1).
func (l Literal) Name() string {
	if l.Negated {
		return ContraryPrefix + string(l.Atom)
	}
	return string(l.Atom)
}

// String implements fmt.Stringer.
func (l Literal) String() string { return l.Name() }

// Edge is one order pair: facts valid at Upper are inherited at Lower.
type Edge struct {
	Lower Standpoint
	Upper Standpoint
}

// Less orders edges by (Lower, Upper).
func (e Edge) Less(o Edge) bool {
	if e.Lower != o.Lower {
		return e.Lower < o.Lower
	}
	return e.Upper < o.Upper
}

// Rule is head <- body_nonasm, body_asm under a standpoint.
type Rule struct {
	Head       Literal
	BodyNonAsm []Atom
	BodyAsm    []Atom
	Standpoint Standpoint
}

// IsFact reports whether both bodies are empty.
func (r Rule) IsFact() bool {
	return len(r.BodyNonAsm) == 0 && len(r.BodyAsm) == 0
}

// Body returns the non-assumption atoms followed by the assumption atoms.
func (r Rule) Body() []Atom {
	body := make([]Atom, 0, len(r.BodyNonAsm)+len(r.BodyAsm))
	body = append(body, r.BodyNonAsm...)
	return append(body, r.BodyAsm...)
}

// String renders "head <- b1, b2" or "head." for facts.
func (r Rule) String() string {
	if r.IsFact() {
		return r.Head.Name() + "."
	}
	parts := make([]string, 0, len(r.BodyNonAsm)+len(r.BodyAsm))
	for _, a := range r.Body() {
		parts = append(parts, string(a))
	}
	return r.Head.Name() + " <- " + strings.Join(parts, ", ")
}
