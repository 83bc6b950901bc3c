package core_test

import (
	"github.com/katalvlaran/abasp/core"
)

// fixture builds a small hand-written framework:
//
//	atoms a1..a4, assumptions a2 and a4, standpoints all, s1, s2,
//	order (s1,all) (s2,all) (s2,s1).
func fixture() *core.Framework {
	return &core.Framework{
		Atoms:          []core.Atom{"a1", "a2", "a3", "a4"},
		Assumptions:    []core.Atom{"a2", "a4"},
		NonAssumptions: []core.Atom{"a1", "a3"},
		Contrary: map[core.Atom]core.Literal{
			"a2": core.Neg("a2"),
			"a4": core.Neg("a4"),
		},
		Standpoints: []core.Standpoint{core.Universal, "s1", "s2"},
		Order: core.NormalizeOrder([]core.Edge{
			{Lower: "s1", Upper: core.Universal},
			{Lower: "s2", Upper: core.Universal},
			{Lower: "s2", Upper: "s1"},
		}),
		Facts: []core.Rule{
			{Head: core.Pos("a1"), Standpoint: core.Universal},
		},
		Rules: []core.Rule{
			{Head: core.Pos("a1"), Standpoint: core.Universal},
			{Head: core.Neg("a2"), BodyNonAsm: []core.Atom{"a3"}, BodyAsm: []core.Atom{"a4"}, Standpoint: "s1"},
			{Head: core.Pos("a3"), Standpoint: "s2"},
		},
	}
}
