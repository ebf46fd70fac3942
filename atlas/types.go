// SPDX-License-Identifier: MIT

package atlas

import "errors"

// Sentinel errors for graph construction, validation and loading.
var (
	// ErrEmptyNode indicates that a node id is the empty string.
	ErrEmptyNode = errors.New("atlas: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("atlas: node not found")

	// ErrAsymmetric indicates that A lists B as a neighbor but B does not list A.
	ErrAsymmetric = errors.New("atlas: asymmetric border")

	// ErrDanglingNeighbor indicates a neighbor id that is not itself a node.
	ErrDanglingNeighbor = errors.New("atlas: dangling neighbor reference")

	// ErrSelfBorder indicates a node listing itself as a neighbor.
	ErrSelfBorder = errors.New("atlas: node borders itself")

	// ErrDuplicateNeighbor indicates the same neighbor listed twice for one node.
	ErrDuplicateNeighbor = errors.New("atlas: duplicate neighbor")

	// ErrDuplicateNode indicates an atlas document declaring the same code twice.
	ErrDuplicateNode = errors.New("atlas: duplicate node")

	// ErrInvalidAtlas wraps every schema or graph failure met while loading an atlas.
	ErrInvalidAtlas = errors.New("atlas: invalid atlas")

	// ErrTooFewNodes indicates a fixture size below the constructor's minimum.
	ErrTooFewNodes = errors.New("atlas: too few nodes")
)

// Node is the canonical identifier of one political entity, e.g. "ARG".
// Two nodes are the same entity iff their ids are byte-equal.
type Node string

// String implements fmt.Stringer.
func (n Node) String() string { return string(n) }

// Graph is an immutable undirected adjacency graph.
//
// adj maps every node to its neighbor list in source order. nodes caches the
// sorted key set so that enumeration does not depend on map iteration.
type Graph struct {
	adj   map[Node][]Node
	nodes []Node
	arcs  int // total list entries; EdgeCount() == arcs/2 on a symmetric graph
}
