package term_test

import (
	"fmt"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/term"
)

// ExampleNestedAnd builds the body of a rule with one premise and one
// assumption under standpoint s1.
func ExampleNestedAnd() {
	premise := term.Box("s1", "a3")
	assumption := term.Not(term.Known(term.Box("s1", term.Negate(core.Neg("a2")))))

	body, _ := term.NestedAnd(premise, assumption)
	fmt.Println(body)
	// Output: and(box(s1,a3),neg(known(box(s1,neg(a2)))))
}

func ExampleAnd() {
	p, _ := term.And("a1", "a3")
	fmt.Println(p)
	// Output: and2(a1,a3)
}
