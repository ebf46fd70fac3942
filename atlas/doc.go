// SPDX-License-Identifier: MIT

// Package atlas defines the adjacency graph that every other borderpath
// package reads: political entities (Node) connected by shared borders.
//
// What
//
//   - Graph: immutable, undirected adjacency. Each node keeps its neighbor list
//     in the exact order it was supplied; that order is the tie-break used by
//     path enumeration, so it is never sorted or deduplicated behind your back.
//   - NodeSet: insertion-ordered set of nodes.
//   - Validate: symmetry, dangling-reference, self-border and duplicate checks.
//   - Atlas: a Graph plus display names, aliases and an exclusion list,
//     decoded from YAML (or JSON) documents. Americas() returns the embedded
//     demo atlas.
//   - Fixtures: Path, Cycle, Grid, Complete and Diamond topologies for tests
//     and examples.
//
// Determinism
//
//	Nodes() and Eligible() return ids sorted ascending. Neighbors() returns the
//	source order. Validation errors are reported in node order.
//
// Concurrency
//
//	A Graph is never mutated after New/Build returns, so any number of
//	goroutines may read it concurrently. Builder is not goroutine-safe.
//
// Complexity (V = nodes, E = borders)
//
//   - New / Build:  O(V + E)
//   - Neighbors:    O(1)
//   - Adjacent:     O(deg)
//   - Validate:     O(V + E·deg)
//
// Errors
//
//   - ErrEmptyNode          a node id is the empty string.
//   - ErrNodeNotFound       a query referenced an unknown node.
//   - ErrAsymmetric         A lists B but B does not list A.
//   - ErrDanglingNeighbor   a neighbor id has no adjacency entry of its own.
//   - ErrSelfBorder         a node lists itself.
//   - ErrDuplicateNeighbor  a neighbor appears twice in one list.
//   - ErrDuplicateNode      an atlas document declares a code twice.
//   - ErrInvalidAtlas       an atlas document failed schema or graph validation.
//   - ErrTooFewNodes        a fixture constructor got a size below its minimum.
package atlas
