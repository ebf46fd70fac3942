// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction (New, Builder) and read-only queries.
//
// Determinism:
//   - Nodes() and Eligible() are sorted ascending.
//   - Neighbors() preserves the order in which borders were supplied.

package atlas

import (
	"fmt"
	"slices"
)

// New builds a Graph from an adjacency mapping. Neighbor lists are copied,
// keeping their order. Neighbors that have no entry of their own are kept as
// given; run Validate to reject such data.
//
// Returns ErrEmptyNode if any key or neighbor is "".
//
// Complexity: O(V log V + E).
func New(adjacency map[Node][]Node) (*Graph, error) {
	g := &Graph{
		adj:   make(map[Node][]Node, len(adjacency)),
		nodes: make([]Node, 0, len(adjacency)),
	}
	for n, nbrs := range adjacency {
		if n == "" {
			return nil, ErrEmptyNode
		}
		for _, nb := range nbrs {
			if nb == "" {
				return nil, fmt.Errorf("%w: neighbor of %q", ErrEmptyNode, n)
			}
		}
		g.adj[n] = slices.Clone(nbrs)
		g.nodes = append(g.nodes, n)
		g.arcs += len(nbrs)
	}
	slices.Sort(g.nodes)

	return g, nil
}

// Builder assembles a Graph incrementally. AddBorder records both directions,
// so graphs produced by a Builder are symmetric by construction.
type Builder struct {
	adj map[Node][]Node
	err error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{adj: make(map[Node][]Node)}
}

// AddNode registers n with no borders. Adding an existing node is a no-op.
func (b *Builder) AddNode(n Node) *Builder {
	if b.err != nil {
		return b
	}
	if n == "" {
		b.err = ErrEmptyNode
		return b
	}
	if _, ok := b.adj[n]; !ok {
		b.adj[n] = nil
	}

	return b
}

// AddBorder appends u to the neighbors of v and v to the neighbors of u.
// Repeating an existing border is a no-op; u == v records ErrSelfBorder.
// The first error is sticky and surfaces from Build.
func (b *Builder) AddBorder(u, v Node) *Builder {
	if b.err != nil {
		return b
	}
	if u == "" || v == "" {
		b.err = ErrEmptyNode
		return b
	}
	if u == v {
		b.err = fmt.Errorf("%w: %s", ErrSelfBorder, u)
		return b
	}
	if !slices.Contains(b.adj[u], v) {
		b.adj[u] = append(b.adj[u], v)
	}
	if !slices.Contains(b.adj[v], u) {
		b.adj[v] = append(b.adj[v], u)
	}

	return b
}

// Build returns the assembled Graph or the first recorded error.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(b.adj)
}

// Neighbors returns the neighbors of n in source order, or nil if n is unknown.
// The returned slice is shared with the graph and must not be modified.
//
// Complexity: O(1).
func (g *Graph) Neighbors(n Node) []Node {
	nbrs := g.adj[n]
	return nbrs[:len(nbrs):len(nbrs)]
}

// HasNode reports whether n has an adjacency entry.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.adj[n]
	return ok
}

// Adjacent reports whether v appears in the neighbor list of u.
//
// Complexity: O(deg(u)).
func (g *Graph) Adjacent(u, v Node) bool {
	return slices.Contains(g.adj[u], v)
}

// Degree returns the neighbor count of n, or ErrNodeNotFound.
func (g *Graph) Degree(n Node) (int, error) {
	nbrs, ok := g.adj[n]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, n)
	}

	return len(nbrs), nil
}

// Nodes returns every node id sorted ascending. The slice is a fresh copy.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.nodes)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of borders, counting each undirected pair once.
// The result is only meaningful on a graph that passes Validate.
func (g *Graph) EdgeCount() int { return g.arcs / 2 }

// Eligible returns, sorted ascending, the nodes that have at least one
// neighbor and are not listed in excluded. These are the candidate puzzle
// endpoints.
//
// Complexity: O(V + |excluded|).
func (g *Graph) Eligible(excluded ...Node) []Node {
	skip := NewNodeSet(excluded...)
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if len(g.adj[n]) == 0 || skip.Has(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}
