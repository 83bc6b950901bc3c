// Package goal picks (standpoint, head) pairs that serve as query goals for
// generated frameworks.
//
// Candidates come from the first non-empty pool, in priority order:
//
//  1. rules at non-universal standpoints whose head is not a contrary;
//  2. rules at any standpoint whose head is not a contrary;
//  3. every declared fact, at the universal standpoint.
//
// The chosen pool is shuffled with the caller's RNG and truncated. Repeated
// rules yield repeated goals.
package goal

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/term"
)

// Goal is a head literal queried under a standpoint.
type Goal struct {
	Standpoint core.Standpoint
	Head       core.Literal
}

// Suffix returns the file-name fragment "goal-S-head", with the contrary
// prefix "not_" rewritten to "not-".
func (g Goal) Suffix() string {
	head := strings.ReplaceAll(g.Head.Name(), core.ContraryPrefix, "not-")
	return "goal-" + string(g.Standpoint) + "-" + head
}

// Label returns the head in encoding form, e.g. neg(a1).
func (g Goal) Label() string { return term.Negate(g.Head) }

func (g Goal) String() string { return string(g.Standpoint) + ":" + g.Head.Name() }

// Select returns up to count goals drawn from f with rng. count ≤ 0 yields
// an empty slice. Panics if rng is nil.
func Select(f *core.Framework, count int, rng *rand.Rand) []Goal {
	if rng == nil {
		panic("goal: Select(nil rng)")
	}
	if count <= 0 {
		return []Goal{}
	}

	pool := Candidates(f)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// Candidates returns the unshuffled pool Select draws from.
func Candidates(f *core.Framework) []Goal {
	var pool []Goal
	for _, r := range f.Rules {
		if r.Standpoint != core.Universal && !f.IsContrary(r.Head) {
			pool = append(pool, Goal{Standpoint: r.Standpoint, Head: r.Head})
		}
	}
	if len(pool) > 0 {
		return pool
	}
	for _, r := range f.Rules {
		if !f.IsContrary(r.Head) {
			pool = append(pool, Goal{Standpoint: r.Standpoint, Head: r.Head})
		}
	}
	if len(pool) > 0 {
		return pool
	}
	for _, r := range f.Facts {
		pool = append(pool, Goal{Standpoint: core.Universal, Head: r.Head})
	}
	return pool
}
