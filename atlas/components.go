// SPDX-License-Identifier: MIT

package atlas

// Components returns the connected regions of g ("islands"), including
// single nodes without borders. Regions are ordered by their smallest node
// and each lists its nodes in discovery order, starting from that node.
//
// Two nodes in different regions never form a puzzle.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and the work stack.
func (g *Graph) Components() [][]Node {
	seen := make(map[Node]bool, len(g.nodes))
	var comps [][]Node

	for _, root := range g.nodes {
		if seen[root] {
			continue
		}
		seen[root] = true
		stack := []Node{root}
		var comp []Node

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
