package term

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
)

// MaxAndArity is the largest n for which an and{n} term is named.
const MaxAndArity = 11

const (
	methodAnd       = "And"
	methodNestedAnd = "NestedAnd"
	andPrefix       = "and"
	negFunctor      = "neg"
)

var (
	// ErrArity indicates And was called with 0 or more than MaxAndArity arguments.
	ErrArity = errors.New("term: unsupported conjunction arity")

	// ErrEmptyBody indicates NestedAnd was called with no terms.
	ErrEmptyBody = errors.New("term: empty conjunction body")
)

// And returns the n-ary conjunction term over args.
// One argument is returned as is; 2..MaxAndArity yield "and{n}(x1,...,xn)".
func And(args ...string) (string, error) {
	switch n := len(args); {
	case n == 1:
		return args[0], nil
	case n < 1 || n > MaxAndArity:
		return "", errors.Wrapf(ErrArity, "%s: got %d arguments, want 1..%d", methodAnd, n, MaxAndArity)
	default:
		return andPrefix + strconv.Itoa(n) + "(" + strings.Join(args, ",") + ")", nil
	}
}

// Arity returns the declared arity of an and{n}(...) term, or 1 for any
// other term.
func Arity(t string) int {
	rest, ok := strings.CutPrefix(t, andPrefix)
	if !ok {
		return 1
	}
	open := strings.IndexByte(rest, '(')
	if open <= 0 {
		return 1
	}
	n, err := strconv.Atoi(rest[:open])
	if err != nil {
		return 1
	}
	return n
}

// NestedAnd folds terms into a right-associative binary conjunction:
// the last term is the base case and each earlier term wraps the
// accumulator as and(term, acc). Term order is preserved.
func NestedAnd(terms ...string) (string, error) {
	if len(terms) == 0 {
		return "", errors.Wrapf(ErrEmptyBody, "%s: no terms", methodNestedAnd)
	}
	acc := terms[len(terms)-1]
	for i := len(terms) - 2; i >= 0; i-- {
		acc = "and(" + terms[i] + "," + acc + ")"
	}
	return acc, nil
}

// Negate renders a literal in the default encoding: the semantic negation
// term neg(a) for a negated literal, the bare atom otherwise.
func Negate(l core.Literal) string {
	if l.Negated {
		return Not(string(l.Atom))
	}
	return string(l.Atom)
}

// NormalizeName maps a flat name to its encoding form: "not_X" becomes
// "neg(X)", everything else is unchanged. Applying it twice equals applying
// it once.
func NormalizeName(name string) string {
	if rest, ok := strings.CutPrefix(name, core.ContraryPrefix); ok {
		return Not(rest)
	}
	return name
}

// Not wraps x as neg(x).
func Not(x string) string { return negFunctor + "(" + x + ")" }

// Box renders box(S,x): x holds under standpoint S.
func Box(s core.Standpoint, x string) string { return "box(" + string(s) + "," + x + ")" }

// Known renders known(x).
func Known(x string) string { return "known(" + x + ")" }

// Form renders form(x).
func Form(x string) string { return "form(" + x + ")" }
