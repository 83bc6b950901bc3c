// Package term builds the symbolic terms of the standpoint-default encoding.
//
// What:
//
//   - And:         bounded-arity conjunction term and{n}(x1,...,xn), 2 ≤ n ≤ 11;
//     a single argument is returned verbatim.
//   - NestedAnd:   right-associative binary conjunction and(x1,and(x2,...)).
//   - Negate:      renders a tagged literal, Neg(a) → neg(a), Pos(a) → a.
//   - NormalizeName: the same mapping over legacy flat names ("not_a" → "neg(a)").
//   - Box, Known, Not, Form: modal wrappers used by the encoders.
//
// Errors:
//
//   - ErrArity      And called with 0 or more than MaxAndArity arguments.
//   - ErrEmptyBody  NestedAnd called with no terms.
//
// Both are caller-contract violations; they are returned, never retried.
package term
