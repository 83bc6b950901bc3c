package goal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abasp/builder"
	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/goal"
)

func base() *core.Framework {
	return &core.Framework{
		Atoms:          []core.Atom{"a1", "a2", "a3"},
		Assumptions:    []core.Atom{"a2"},
		NonAssumptions: []core.Atom{"a1", "a3"},
		Contrary:       map[core.Atom]core.Literal{"a2": core.Neg("a2")},
		Standpoints:    []core.Standpoint{core.Universal, "s1"},
		Order:          []core.Edge{{Lower: "s1", Upper: core.Universal}},
		Facts:          []core.Rule{{Head: core.Neg("a2"), Standpoint: core.Universal}},
	}
}

func TestCandidates_Priority(t *testing.T) {
	f := base()
	f.Rules = []core.Rule{
		{Head: core.Neg("a2"), Standpoint: core.Universal},
		{Head: core.Pos("a1"), Standpoint: core.Universal, BodyNonAsm: []core.Atom{"a3"}},
		{Head: core.Neg("a2"), Standpoint: "s1", BodyNonAsm: []core.Atom{"a3"}},
		{Head: core.Pos("a3"), Standpoint: "s1", BodyAsm: []core.Atom{"a2"}},
	}
	// (a) non-universal, non-contrary heads only
	assert.Equal(t, []goal.Goal{{Standpoint: "s1", Head: core.Pos("a3")}}, goal.Candidates(f))

	// (b) falls back to every standpoint
	f.Rules = f.Rules[:3]
	assert.Equal(t, []goal.Goal{{Standpoint: core.Universal, Head: core.Pos("a1")}}, goal.Candidates(f))

	// (c) falls back to facts at universal, contraries included
	f.Rules = []core.Rule{f.Rules[0], f.Rules[2]}
	assert.Equal(t, []goal.Goal{{Standpoint: core.Universal, Head: core.Neg("a2")}}, goal.Candidates(f))
}

func TestSelect_TruncatesAndKeepsDuplicates(t *testing.T) {
	f := base()
	dup := core.Rule{Head: core.Pos("a1"), Standpoint: "s1", BodyNonAsm: []core.Atom{"a3"}}
	f.Rules = []core.Rule{dup, dup, dup}

	got := goal.Select(f, 5, rand.New(rand.NewSource(1)))
	require.Len(t, got, 3)
	for _, g := range got {
		assert.Equal(t, goal.Goal{Standpoint: "s1", Head: core.Pos("a1")}, g)
	}

	assert.Len(t, goal.Select(f, 2, rand.New(rand.NewSource(1))), 2)
	assert.Empty(t, goal.Select(f, 0, rand.New(rand.NewSource(1))))
	assert.Empty(t, goal.Select(f, -3, rand.New(rand.NewSource(1))))
	assert.Panics(t, func() { goal.Select(f, 1, nil) })
}

func TestSelect_Deterministic(t *testing.T) {
	p := builder.DefaultParams()
	p.Standpoints = 3
	f, err := builder.Generate(p, builder.WithSeed(7))
	require.NoError(t, err)

	a := goal.Select(f, 5, rand.New(rand.NewSource(42)))
	b := goal.Select(f, 5, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	pool := goal.Candidates(f)
	for _, g := range a {
		assert.Contains(t, pool, g)
	}
}

func TestGoal_Rendering(t *testing.T) {
	g := goal.Goal{Standpoint: "s2", Head: core.Neg("a4")}
	assert.Equal(t, "goal-s2-not-a4", g.Suffix())
	assert.Equal(t, "neg(a4)", g.Label())
	assert.Equal(t, "s2:not_a4", g.String())

	g = goal.Goal{Standpoint: core.Universal, Head: core.Pos("a1")}
	assert.Equal(t, "goal-all-a1", g.Suffix())
	assert.Equal(t, "a1", g.Label())
}
