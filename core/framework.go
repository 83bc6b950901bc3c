package core

import (
	"sort"
)

// Framework is the generated ABA-with-standpoints instance.
// Callers must treat it as immutable once built.
type Framework struct {
	// Atoms lists the base atoms in index order. Contraries are not included.
	Atoms []Atom
	// Assumptions and NonAssumptions partition Atoms (index order).
	Assumptions    []Atom
	NonAssumptions []Atom
	// Contrary maps each assumption a to Neg(a).
	Contrary map[Atom]Literal
	// Standpoints lists Universal first, then s1..sN.
	Standpoints []Standpoint
	// Order is the deduplicated, (Lower, Upper)-sorted edge set.
	Order []Edge
	// Facts are the declared facts at Universal.
	Facts []Rule
	// Rules holds every rule in generation order, Facts included.
	Rules []Rule
}

// IsAssumption reports whether a is an assumption atom.
func (f *Framework) IsAssumption(a Atom) bool {
	_, ok := f.Contrary[a]
	return ok
}

// IsContrary reports whether l is the contrary of some assumption.
func (f *Framework) IsContrary(l Literal) bool {
	if !l.Negated {
		return false
	}
	c, ok := f.Contrary[l.Atom]
	return ok && c == l
}

// ContraryOf returns the contrary of assumption a.
func (f *Framework) ContraryOf(a Atom) (Literal, bool) {
	c, ok := f.Contrary[a]
	return c, ok
}

// Contraries returns the contrary literals in assumption order.
func (f *Framework) Contraries() []Literal {
	out := make([]Literal, 0, len(f.Assumptions))
	for _, a := range f.Assumptions {
		if c, ok := f.Contrary[a]; ok {
			out = append(out, c)
		}
	}
	return out
}

// HeadPool returns the legal rule heads: non-assumptions in index order,
// then contraries in assumption order.
func (f *Framework) HeadPool() []Literal {
	pool := make([]Literal, 0, len(f.NonAssumptions)+len(f.Assumptions))
	for _, a := range f.NonAssumptions {
		pool = append(pool, Pos(a))
	}
	return append(pool, f.Contraries()...)
}

// AllLiterals returns base atoms and contraries sorted by flat name.
func (f *Framework) AllLiterals() []Literal {
	out := make([]Literal, 0, len(f.Atoms)+len(f.Contrary))
	for _, a := range f.Atoms {
		out = append(out, Pos(a))
	}
	out = append(out, f.Contraries()...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// SortedAssumptions returns the assumptions sorted by name.
func (f *Framework) SortedAssumptions() []Atom {
	out := append([]Atom(nil), f.Assumptions...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NonUniversal returns the standpoints other than Universal, in list order.
func (f *Framework) NonUniversal() []Standpoint {
	out := make([]Standpoint, 0, len(f.Standpoints))
	for _, s := range f.Standpoints {
		if s != Universal {
			out = append(out, s)
		}
	}
	return out
}

// HasEdge reports whether (lower, upper) is a direct order edge. Order must
// be sorted, as NormalizeOrder returns it.
func (f *Framework) HasEdge(lower, upper Standpoint) bool {
	want := Edge{Lower: lower, Upper: upper}
	i := sort.Search(len(f.Order), func(i int) bool { return !f.Order[i].Less(want) })
	return i < len(f.Order) && f.Order[i] == want
}

// ProperEdges returns the order edges with Lower != Upper.
func (f *Framework) ProperEdges() []Edge {
	out := make([]Edge, 0, len(f.Order))
	for _, e := range f.Order {
		if e.Lower != e.Upper {
			out = append(out, e)
		}
	}
	return out
}

// ZeroBodyRules returns every rule with both bodies empty, wherever it was
// generated. It is a superset of Facts.
func (f *Framework) ZeroBodyRules() []Rule {
	var out []Rule
	for _, r := range f.Rules {
		if r.IsFact() {
			out = append(out, r)
		}
	}
	return out
}

// RulesAt returns the rules generated under standpoint s.
func (f *Framework) RulesAt(s Standpoint) []Rule {
	var out []Rule
	for _, r := range f.Rules {
		if r.Standpoint == s {
			out = append(out, r)
		}
	}
	return out
}

// NormalizeOrder returns a sorted copy of edges without duplicates.
func NormalizeOrder(edges []Edge) []Edge {
	sorted := append([]Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	out := make([]Edge, 0, len(sorted))
	for i, e := range sorted {
		if i > 0 && e == sorted[i-1] {
			continue
		}
		out = append(out, e)
	}
	return out
}
