// SPDX-License-Identifier: MIT

package atlas

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants every consumer relies on:
//
//   - no node lists itself (ErrSelfBorder);
//   - no neighbor is listed twice for one node (ErrDuplicateNeighbor);
//   - every neighbor has its own adjacency entry (ErrDanglingNeighbor);
//   - borders are symmetric (ErrAsymmetric).
//
// All violations are collected and returned together via errors.Join, in
// node order, each wrapping its sentinel so errors.Is works on the result.
// A nil return means the graph is well-formed.
//
// Complexity: O(V + E·deg).
func Validate(g *Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidAtlas)
	}

	var errs []error
	for _, n := range g.nodes {
		seen := make(map[Node]struct{}, len(g.adj[n]))
		for _, nb := range g.adj[n] {
			if nb == n {
				errs = append(errs, fmt.Errorf("%w: %s", ErrSelfBorder, n))
				continue
			}
			if _, dup := seen[nb]; dup {
				errs = append(errs, fmt.Errorf("%w: %s lists %s twice", ErrDuplicateNeighbor, n, nb))
				continue
			}
			seen[nb] = struct{}{}

			if !g.HasNode(nb) {
				errs = append(errs, fmt.Errorf("%w: %s lists unknown %s", ErrDanglingNeighbor, n, nb))
				continue
			}
			if !g.Adjacent(nb, n) {
				errs = append(errs, fmt.Errorf("%w: %s lists %s but %s does not list %s", ErrAsymmetric, n, nb, nb, n))
			}
		}
	}

	return errors.Join(errs...)
}
