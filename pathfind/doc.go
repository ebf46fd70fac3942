// SPDX-License-Identifier: MIT

// Package pathfind computes breadth-first distances over an atlas.Graph and
// enumerates every shortest path between two nodes.
//
// What
//
//   - ComputeDistances(g, start): hop distance from start to every reachable
//     node. Unreachable nodes are absent from the result; absence, not an
//     infinity sentinel, is how callers detect them.
//   - EnumerateShortestPaths(g, start, end, opts...): all minimum-length
//     simple paths, as a PathSet.
//
// How
//
//	Enumeration is two passes. A forward BFS from start labels distances. A
//	backward walk from end then extends a chain through every neighbor whose
//	distance is exactly one less than the current node's, until it reaches
//	start; each completed chain, reversed, is one shortest path. The walk uses
//	an explicit stack instead of recursion, visiting neighbors in adjacency
//	order, so the n-th path emitted is the same n-th path a recursive
//	formulation would produce. Callers rely on that order: the first path is
//	the canonical answer of a puzzle.
//
// Path explosion
//
//	Highly symmetric graphs (grids, complete graphs) have combinatorially many
//	shortest paths. Enumeration is unbounded by default. WithMaxPaths(n) caps
//	the result at n paths and sets PathSet.Truncated when more exist.
//
// Complexity (V = nodes, E = borders, P = paths emitted, d = distance)
//
//   - ComputeDistances:        O(V + E) time, O(V) memory.
//   - EnumerateShortestPaths:  O(V + E + P·d·deg) time, O(P·d) memory.
//
// Errors
//
//   - ErrGraphNil         the graph pointer is nil.
//   - ErrNodeNotFound     start or end has no adjacency entry.
//   - ErrOptionViolation  an Option was invalid (e.g. negative max paths).
//   - Wrapped errors returned by an OnPath hook.
package pathfind
