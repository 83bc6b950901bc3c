// SPDX-License-Identifier: MIT
// Package: abasp/hierarchy
//
// types.go - the order graph, its constructors and sentinel errors.

package hierarchy

import (
	"sort"

	"github.com/katalvlaran/abasp/core"
	"github.com/katalvlaran/abasp/errors"
)

// Visitation states for depth-first traversals.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates the order contains a cycle.
	ErrCycleDetected = errors.New("hierarchy: cycle detected")

	// ErrUnknownStandpoint indicates a standpoint missing from the graph.
	ErrUnknownStandpoint = errors.New("hierarchy: unknown standpoint")
)

// Graph is the order as a directed graph: an edge lower → upper says lower
// inherits from upper. Nodes keep the framework's standpoint order; each
// adjacency list is sorted.
type Graph struct {
	nodes []core.Standpoint
	index map[core.Standpoint]int
	up    map[core.Standpoint][]core.Standpoint
}

// New builds the order graph of f.
// Complexity: O(V + E log E).
func New(f *core.Framework) (*Graph, error) {
	return FromEdges(f.Standpoints, f.Order)
}

// FromEdges builds a graph over nodes with the given edges. Duplicate edges
// are collapsed. An edge naming an unknown node yields ErrUnknownStandpoint.
// Complexity: O(V + E log E) time, O(V+E) space.
func FromEdges(nodes []core.Standpoint, edges []core.Edge) (*Graph, error) {
	g := &Graph{
		nodes: append([]core.Standpoint(nil), nodes...),
		index: make(map[core.Standpoint]int, len(nodes)),
		up:    make(map[core.Standpoint][]core.Standpoint, len(nodes)),
	}
	for i, s := range g.nodes {
		g.index[s] = i
	}
	for _, e := range core.NormalizeOrder(edges) {
		if _, ok := g.index[e.Lower]; !ok {
			return nil, errors.Wrapf(ErrUnknownStandpoint, "FromEdges: %s", e.Lower)
		}
		if _, ok := g.index[e.Upper]; !ok {
			return nil, errors.Wrapf(ErrUnknownStandpoint, "FromEdges: %s", e.Upper)
		}
		g.up[e.Lower] = append(g.up[e.Lower], e.Upper)
	}
	for s := range g.up {
		ups := g.up[s]
		sort.Slice(ups, func(i, j int) bool { return ups[i] < ups[j] })
	}
	return g, nil
}

// Nodes returns a copy of the standpoints in construction order.
// Complexity: O(V).
func (g *Graph) Nodes() []core.Standpoint {
	return append([]core.Standpoint(nil), g.nodes...)
}

// Parents returns a copy of the direct uppers of s.
// Complexity: O(deg(s)).
func (g *Graph) Parents(s core.Standpoint) []core.Standpoint {
	return append([]core.Standpoint(nil), g.up[s]...)
}
