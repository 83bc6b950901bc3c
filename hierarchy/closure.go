// SPDX-License-Identifier: MIT
// Package: abasp/hierarchy
//
// closure.go - reachability and transitive closure of the order.

package hierarchy

import (
	"sort"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
)

// Ancestors returns every standpoint reachable from s through one or more
// edges, sorted by name. s itself is included only if it lies on a cycle.
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) Ancestors(s core.Standpoint) ([]core.Standpoint, error) {
	if _, ok := g.index[s]; !ok {
		return nil, errors.Wrapf(ErrUnknownStandpoint, "Ancestors: %s", s)
	}
	seen := make(map[core.Standpoint]bool, len(g.nodes))
	stack := append([]core.Standpoint(nil), g.up[s]...)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[top] {
			continue
		}
		seen[top] = true
		stack = append(stack, g.up[top]...)
	}
	out := make([]core.Standpoint, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Closure returns the transitive closure of g as a sorted edge set without
// self edges.
// Complexity: O(V·(V+E)) time, O(V²) space.
func (g *Graph) Closure() []core.Edge {
	var edges []core.Edge
	for _, s := range g.nodes {
		ups, _ := g.Ancestors(s)
		for _, u := range ups {
			if u != s {
				edges = append(edges, core.Edge{Lower: s, Upper: u})
			}
		}
	}
	return core.NormalizeOrder(edges)
}

// Closure returns the transitive closure of f's order.
// Complexity: O(V·(V+E)).
func Closure(f *core.Framework) ([]core.Edge, error) {
	g, err := New(f)
	if err != nil {
		return nil, err
	}
	return g.Closure(), nil
}

// IsClosed reports whether edges equals its own transitive closure over nodes,
// ignoring self edges.
// Complexity: O(V·(V+E)).
func IsClosed(nodes []core.Standpoint, edges []core.Edge) (bool, error) {
	g, err := FromEdges(nodes, edges)
	if err != nil {
		return false, err
	}
	var proper []core.Edge
	for _, e := range core.NormalizeOrder(edges) {
		if e.Lower != e.Upper {
			proper = append(proper, e)
		}
	}
	closed := g.Closure()
	if len(closed) != len(proper) {
		return false, nil
	}
	for i := range closed {
		if closed[i] != proper[i] {
			return false, nil
		}
	}
	return true, nil
}
