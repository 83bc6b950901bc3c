// Package defaultenc compiles a framework into the standpoint-default
// encoding: a modal-style program over boxed literals box(S,X), read as
// "X holds under standpoint S".
//
// Output, in order:
//
//   - succ/2 chains: one over all literals (base atoms and contraries,
//     sorted by flat name), one over the standpoints in list order;
//   - form(box(S,R)). for every supplied fact head, deduplicated on (S, R);
//   - one entry per rule. Zero-body rules become boxed facts at their own
//     standpoint, sharing the deduplication keys above. Other rules depend
//     on the Style.
//
// StyleFormula (default) emits the rule as a negated conjunction,
// "it is not the case that the body holds while box(S,R) is not known":
//
//	% s1: not_a2 <- a3, a4
//	form(neg(and(and(box(s1,a3),neg(known(box(s1,neg(a4))))),neg(known(box(s1,neg(a2))))))).
//
// Premises become box(S,p); an assumption q becomes
// neg(known(box(S,neg(q)))), usable unless its contrary is committed.
// Literals are joined with term.NestedAnd.
//
// StyleSchema emits the rule schemas strictRule(S,P,R),
// default{n}(S,P,Q1,..,Qn,R) and default{n}NoPrem(S,Q1,..,Qn,R), with
// premises P combined by term.And.
//
// Negated literals are rendered neg(X) throughout (term.Negate). Term
// construction errors (term.ErrArity, term.ErrEmptyBody) abort the encoding
// and are returned wrapped.
package defaultenc
