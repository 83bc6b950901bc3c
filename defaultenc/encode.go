package defaultenc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/term"
)

// MethodEncode prefixes errors returned by Encode.
const MethodEncode = "defaultenc.Encode"

// FactHeads lists fact heads per standpoint.
type FactHeads map[core.Standpoint][]core.Literal

// UniversalFactHeads returns the heads of f's declared facts at Universal.
func UniversalFactHeads(f *core.Framework) FactHeads {
	heads := make([]core.Literal, 0, len(f.Facts))
	for _, r := range f.Facts {
		heads = append(heads, r.Head)
	}
	return FactHeads{core.Universal: heads}
}

// factKey is the deduplication key of a boxed fact.
type factKey struct {
	standpoint core.Standpoint
	head       string
}

// encoder accumulates output for one Encode call.
type encoder struct {
	style Style
	lines []string
	seen  map[factKey]bool
}

// Encode renders f in the standpoint-default encoding. facts supplies the
// boxed fact heads, usually UniversalFactHeads(f).
func Encode(f *core.Framework, facts FactHeads, opts ...Option) (string, error) {
	o := options{style: StyleFormula}
	for _, opt := range opts {
		opt(&o)
	}

	e := &encoder{style: o.style, seen: make(map[factKey]bool)}
	e.successors(f)

	for _, s := range factOrder(f, facts) {
		heads := append([]core.Literal(nil), facts[s]...)
		sort.Slice(heads, func(i, j int) bool { return heads[i].Name() < heads[j].Name() })
		for _, h := range heads {
			e.fact(s, h)
		}
	}

	for i, r := range f.Rules {
		if err := e.rule(f, r); err != nil {
			return "", errors.Wrapf(err, "%s: rule %d (%s at %s)", MethodEncode, i, r, r.Standpoint)
		}
	}

	return strings.Join(e.lines, "\n"), nil
}

// successors emits the total-order chains over literals and standpoints.
func (e *encoder) successors(f *core.Framework) {
	lits := f.AllLiterals()
	for i := 1; i < len(lits); i++ {
		e.lines = append(e.lines, "succ("+term.Negate(lits[i-1])+","+term.Negate(lits[i])+").")
	}
	for i := 1; i < len(f.Standpoints); i++ {
		e.lines = append(e.lines, "succ("+string(f.Standpoints[i-1])+","+string(f.Standpoints[i])+").")
	}
}

// fact emits form(box(S,R)). unless (S, R) was already emitted.
func (e *encoder) fact(s core.Standpoint, head core.Literal) {
	r := term.Negate(head)
	key := factKey{standpoint: s, head: r}
	if e.seen[key] {
		return
	}
	e.seen[key] = true
	e.lines = append(e.lines, term.Form(term.Box(s, r))+".")
}

func (e *encoder) rule(f *core.Framework, r core.Rule) error {
	if r.IsFact() {
		e.fact(r.Standpoint, r.Head)
		return nil
	}
	if e.style == StyleSchema {
		return e.schemaRule(r)
	}
	return e.formulaRule(f, r)
}

// formulaRule emits form(neg(and(BODY,neg(known(box(S,R)))))).
func (e *encoder) formulaRule(f *core.Framework, r core.Rule) error {
	s := r.Standpoint
	lits := make([]string, 0, len(r.BodyNonAsm)+len(r.BodyAsm))
	for _, p := range r.BodyNonAsm {
		lits = append(lits, term.Box(s, term.Negate(core.Pos(p))))
	}
	for _, q := range r.BodyAsm {
		lits = append(lits, term.Not(term.Known(term.Box(s, contraryTerm(f, q)))))
	}
	body, err := term.NestedAnd(lits...)
	if err != nil {
		return err
	}
	formula, err := term.NestedAnd(body, term.Not(term.Known(term.Box(s, term.Negate(r.Head)))))
	if err != nil {
		return err
	}
	e.lines = append(e.lines,
		"% "+string(s)+": "+r.String(),
		term.Form(term.Not(formula))+".")
	return nil
}

// schemaRule emits strictRule/3, default{n}/n+3 or default{n}NoPrem/n+2.
func (e *encoder) schemaRule(r core.Rule) error {
	s := string(r.Standpoint)
	head := term.Negate(r.Head)

	var premise string
	if len(r.BodyNonAsm) > 0 {
		prem := make([]string, len(r.BodyNonAsm))
		for i, p := range r.BodyNonAsm {
			prem[i] = term.Negate(core.Pos(p))
		}
		var err error
		if premise, err = term.And(prem...); err != nil {
			return err
		}
	}

	if len(r.BodyAsm) == 0 {
		e.lines = append(e.lines, "strictRule("+s+","+premise+","+head+").")
		return nil
	}

	qs := make([]string, len(r.BodyAsm))
	for i, q := range r.BodyAsm {
		qs[i] = term.Negate(core.Pos(q))
	}
	n := strconv.Itoa(len(qs))
	if premise != "" {
		e.lines = append(e.lines, "default"+n+"("+s+","+premise+","+strings.Join(qs, ",")+","+head+").")
	} else {
		e.lines = append(e.lines, "default"+n+"NoPrem("+s+","+strings.Join(qs, ",")+","+head+").")
	}
	return nil
}

// contraryTerm renders the negation of assumption q through its contrary.
func contraryTerm(f *core.Framework, q core.Atom) string {
	if c, ok := f.ContraryOf(q); ok {
		return term.Negate(c)
	}
	return term.Negate(core.Neg(q))
}

// factOrder lists the standpoints of facts: framework order first, then any
// other keys sorted by name.
func factOrder(f *core.Framework, facts FactHeads) []core.Standpoint {
	out := make([]core.Standpoint, 0, len(facts))
	known := make(map[core.Standpoint]bool, len(f.Standpoints))
	for _, s := range f.Standpoints {
		known[s] = true
		if _, ok := facts[s]; ok {
			out = append(out, s)
		}
	}
	var extra []core.Standpoint
	for s := range facts {
		if !known[s] {
			extra = append(extra, s)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// GoalConstraint returns the integrity constraint a goal instance appends:
// ":- not known(box(S,R))."
func GoalConstraint(s core.Standpoint, head core.Literal) string {
	return ":- not " + term.Known(term.Box(s, term.Negate(head))) + "."
}
