package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
)

func TestFramework_Accessors(t *testing.T) {
	f := fixture()

	assert.True(t, f.IsAssumption("a2"))
	assert.False(t, f.IsAssumption("a1"))

	assert.True(t, f.IsContrary(core.Neg("a2")))
	assert.False(t, f.IsContrary(core.Neg("a1")))
	assert.False(t, f.IsContrary(core.Pos("a2")))

	c, ok := f.ContraryOf("a4")
	assert.True(t, ok)
	assert.Equal(t, core.Neg("a4"), c)

	assert.Equal(t, []core.Literal{core.Pos("a1"), core.Pos("a3"), core.Neg("a2"), core.Neg("a4")}, f.HeadPool())
	assert.Equal(t, []core.Literal{
		core.Pos("a1"), core.Pos("a2"), core.Pos("a3"), core.Pos("a4"),
		core.Neg("a2"), core.Neg("a4"),
	}, f.AllLiterals())

	assert.Equal(t, []core.Standpoint{"s1", "s2"}, f.NonUniversal())
	assert.True(t, f.HasEdge("s2", "s1"))
	assert.False(t, f.HasEdge("s1", "s2"))
	assert.Len(t, f.ProperEdges(), 3)
}

// TestFramework_ZeroBodyRules shows the fact list and zero-body rules differ.
func TestFramework_ZeroBodyRules(t *testing.T) {
	f := fixture()

	zero := f.ZeroBodyRules()
	require.Len(t, zero, 2)
	assert.Equal(t, core.Standpoint("s2"), zero[1].Standpoint)
	assert.Len(t, f.Facts, 1)
	assert.Len(t, f.RulesAt("s1"), 1)
}

func TestFramework_ValidateOK(t *testing.T) {
	assert.NoError(t, fixture().Validate())
}

func TestFramework_ValidateUnsortedOrder(t *testing.T) {
	f := fixture()
	f.Order = []core.Edge{
		{Lower: "s2", Upper: "s1"},
		{Lower: "s2", Upper: core.Universal},
		{Lower: "s1", Upper: core.Universal},
	}
	assert.NoError(t, f.Validate())

	f.Order = f.Order[:2]
	assert.ErrorIs(t, f.Validate(), core.ErrOrder)
}

func TestFramework_ValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *core.Framework)
		want   error
	}{
		{
			name:   "overlapping partition",
			mutate: func(f *core.Framework) { f.NonAssumptions = append(f.NonAssumptions, "a2") },
			want:   core.ErrPartition,
		},
		{
			name:   "unclassified atom",
			mutate: func(f *core.Framework) { f.NonAssumptions = []core.Atom{"a1"} },
			want:   core.ErrPartition,
		},
		{
			name:   "shared contrary",
			mutate: func(f *core.Framework) { f.Contrary["a4"] = core.Neg("a2") },
			want:   core.ErrContrary,
		},
		{
			name:   "contrary is a base atom",
			mutate: func(f *core.Framework) { f.Contrary["a4"] = core.Pos("a1") },
			want:   core.ErrContrary,
		},
		{
			name: "assumption head",
			mutate: func(f *core.Framework) {
				f.Rules = append(f.Rules, core.Rule{Head: core.Pos("a2"), Standpoint: "s1"})
			},
			want: core.ErrAssumptionHead,
		},
		{
			name: "assumption in non-assumption body",
			mutate: func(f *core.Framework) {
				f.Rules = append(f.Rules, core.Rule{Head: core.Pos("a1"), BodyNonAsm: []core.Atom{"a2"}, Standpoint: "s1"})
			},
			want: core.ErrBody,
		},
		{
			name: "fact off universal",
			mutate: func(f *core.Framework) {
				f.Facts[0].Standpoint = "s1"
			},
			want: core.ErrFactShape,
		},
		{
			name:   "universal not first",
			mutate: func(f *core.Framework) { f.Standpoints = []core.Standpoint{"s1", core.Universal, "s2"} },
			want:   core.ErrStandpoints,
		},
		{
			name: "missing mandatory edge",
			mutate: func(f *core.Framework) {
				f.Order = core.NormalizeOrder([]core.Edge{{Lower: "s1", Upper: core.Universal}, {Lower: "s2", Upper: "s1"}})
			},
			want: core.ErrOrder,
		},
		{
			name: "edge out of universal",
			mutate: func(f *core.Framework) {
				f.Order = core.NormalizeOrder(append(f.Order, core.Edge{Lower: core.Universal, Upper: "s1"}))
			},
			want: core.ErrOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixture()
			tt.mutate(f)
			err := f.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
