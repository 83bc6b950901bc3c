package atomenc

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
	"github.com/katalvlaran/abasp/hierarchy"
)

// MethodEncode prefixes errors returned by Encode.
const MethodEncode = "atomenc.Encode"

// InheritanceHeader is the comment block opening the inheritance section.
var InheritanceHeader = []string{"%", "%%% Standpoint Inheritance Rules", "%"}

// Option configures Encode.
type Option func(*options)

type options struct {
	closedOrder bool
}

// WithClosedOrder expands inheritance over the transitive closure of the
// order instead of the direct edges.
func WithClosedOrder() Option {
	return func(o *options) { o.closedOrder = true }
}

// Indexed renders the standpoint-suffixed form of a flat name: a1 at s1 is
// "a1_s1".
func Indexed(name string, s core.Standpoint) string {
	return name + "_" + string(s)
}

// encoder accumulates output lines and the shared record counter.
type encoder struct {
	lines []string
	next  int
}

// record emits one numbered head/body block preceded by a comment.
func (e *encoder) record(head string, body []string) {
	if len(body) > 0 {
		e.lines = append(e.lines, "% "+head+" <- "+strings.Join(body, ", "))
	} else {
		e.lines = append(e.lines, "% "+head+".")
	}
	id := strconv.Itoa(e.next)
	e.lines = append(e.lines, "head("+id+","+head+").")
	for _, b := range body {
		e.lines = append(e.lines, "body("+id+","+b+").")
	}
	e.lines = append(e.lines, "")
	e.next++
}

// Encode renders f in the standpoint-atom encoding.
func Encode(f *core.Framework, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	edges := f.ProperEdges()
	if o.closedOrder {
		closed, err := hierarchy.Closure(f)
		if err != nil {
			return "", errors.Wrapf(err, "%s: order closure", MethodEncode)
		}
		edges = closed
	}

	e := &encoder{next: 1}

	assumptions := f.SortedAssumptions()
	if len(assumptions) > 0 {
		names := make([]string, len(assumptions))
		for i, a := range assumptions {
			names[i] = string(a)
		}
		e.lines = append(e.lines, "assumption("+strings.Join(names, ";")+").", "")
	}

	for _, a := range assumptions {
		if c, ok := f.ContraryOf(a); ok {
			e.lines = append(e.lines, "contrary("+string(a)+","+c.Name()+").")
		}
	}
	e.lines = append(e.lines, "")

	for _, r := range f.Rules {
		body := make([]string, 0, len(r.BodyNonAsm)+len(r.BodyAsm))
		for _, b := range r.Body() {
			body = append(body, Indexed(string(b), r.Standpoint))
		}
		e.record(Indexed(r.Head.Name(), r.Standpoint), body)
	}

	e.lines = append(e.lines, InheritanceHeader...)
	literals := f.AllLiterals()
	for _, edge := range edges {
		if edge.Lower == edge.Upper {
			continue
		}
		for _, l := range literals {
			e.record(Indexed(l.Name(), edge.Lower), []string{Indexed(l.Name(), edge.Upper)})
		}
	}

	return strings.Join(e.lines, "\n"), nil
}

// GoalLines returns the lines a goal instance appends to the encoding:
// a comment and the g/1 fact over the indexed head.
func GoalLines(s core.Standpoint, head core.Literal) []string {
	return []string{"% goal", "g(" + Indexed(head.Name(), s) + ")."}
}
