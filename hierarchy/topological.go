// SPDX-License-Identifier: MIT
// Package: abasp/hierarchy
//
// topological.go - DFS topological sort and cycle detection.

package hierarchy

import (
	"github.com/katalvlaran/abasp/core"
)

// topoSorter carries the state of one topological traversal.
type topoSorter struct {
	graph *Graph
	state map[core.Standpoint]int
	order []core.Standpoint
}

// TopologicalOrder lists the standpoints so that every lower comes before
// each of its uppers: most specific first, Universal last in a well-formed
// framework. The result is deterministic for a given graph. A cycle yields
// ErrCycleDetected.
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) TopologicalOrder() ([]core.Standpoint, error) {
	t := &topoSorter{
		graph: g,
		state: make(map[core.Standpoint]int, len(g.nodes)),
		order: make([]core.Standpoint, 0, len(g.nodes)),
	}
	// Reverse node order here and the final reversal put unrelated
	// standpoints in node order.
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if t.state[g.nodes[i]] == White {
			if err := t.visit(g.nodes[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

// visit explores the uppers of s depth-first and appends s in post-order.
func (t *topoSorter) visit(s core.Standpoint) error {
	switch t.state[s] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[s] = Gray
	for _, u := range t.graph.up[s] {
		if err := t.visit(u); err != nil {
			return err
		}
	}
	t.state[s] = Black
	t.order = append(t.order, s)
	return nil
}

// CheckAcyclic returns ErrCycleDetected if f's order has a cycle.
// Complexity: O(V+E).
func CheckAcyclic(f *core.Framework) error {
	g, err := New(f)
	if err != nil {
		return err
	}
	_, err = g.TopologicalOrder()
	return err
}
