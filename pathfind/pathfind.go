// SPDX-License-Identifier: MIT

package pathfind

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/borderpath/atlas"
)

// ComputeDistances runs breadth-first search on g from start and returns the
// hop distance of every reachable node; start maps to 0 and unreachable
// nodes are absent. Each node is enqueued exactly once, at first discovery.
//
// Returns ErrGraphNil or ErrNodeNotFound for invalid input.
func ComputeDistances(g *atlas.Graph, start atlas.Node) (Distances, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}

	dist := Distances{start: 0}
	queue := make([]atlas.Node, 0, g.Len())
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := dist[cur] + 1
		for _, nb := range g.Neighbors(cur) {
			if _, seen := dist[nb]; !seen {
				dist[nb] = next
				queue = append(queue, nb)
			}
		}
	}

	return dist, nil
}

// frame is one level of the backward walk: a node on the current chain and
// the index of the next neighbor to try.
type frame struct {
	node atlas.Node
	next int
}

// enumerator encapsulates mutable state of the backward walk.
type enumerator struct {
	graph *atlas.Graph
	opts  Options
	dist  Distances
	start atlas.Node
	res   *PathSet
}

// EnumerateShortestPaths returns every shortest path from start to end, in
// deterministic enumeration order (see package doc).
//
// The set is empty, with a nil error, when start == end or end is not
// reachable from start. Otherwise every returned path has
// ComputeDistances(g, start)[end]+1 nodes.
//
// Returns ErrGraphNil, ErrNodeNotFound, ErrOptionViolation, or a wrapped
// OnPath error. On an OnPath error the paths emitted so far are returned
// alongside it.
func EnumerateShortestPaths(g *atlas.Graph, start, end atlas.Node, opts ...Option) (*PathSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %q", ErrNodeNotFound, end)
	}

	dist, err := ComputeDistances(g, start)
	if err != nil {
		return nil, err
	}

	res := &PathSet{Start: start, End: end}
	if start == end {
		return res, nil
	}
	if _, ok := dist[end]; !ok {
		return res, nil
	}

	e := &enumerator{graph: g, opts: o, dist: dist, start: start, res: res}
	return res, e.walk(end)
}

// walk performs the backward enumeration from end with an explicit stack.
//
// Invariant: chain[i] == stack[i].node and dist[chain[i]] == dist[end]-i.
// Because only start has distance 0, reaching distance 0 means reaching start.
func (e *enumerator) walk(end atlas.Node) error {
	depth := e.dist[end]
	chain := make([]atlas.Node, 0, depth+1)
	stack := make([]frame, 0, depth+1)

	chain = append(chain, end)
	stack = append(stack, frame{node: end})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node == e.start {
			stop, err := e.emit(chain)
			if stop || err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
			chain = chain[:len(chain)-1]
			continue
		}

		want := e.dist[top.node] - 1
		nbrs := e.graph.Neighbors(top.node)
		advanced := false
		for top.next < len(nbrs) {
			nb := nbrs[top.next]
			top.next++
			if d, ok := e.dist[nb]; ok && d == want {
				chain = append(chain, nb)
				stack = append(stack, frame{node: nb})
				advanced = true
				break
			}
		}
		if !advanced {
			stack = stack[:len(stack)-1]
			chain = chain[:len(chain)-1]
		}
	}

	return nil
}

// emit records the reversed chain as a path. It reports stop=true once the
// MaxPaths cap is hit with another path pending.
func (e *enumerator) emit(chain []atlas.Node) (stop bool, err error) {
	if e.opts.MaxPaths > 0 && len(e.res.Paths) == e.opts.MaxPaths {
		e.res.Truncated = true
		return true, nil
	}

	p := make(Path, len(chain))
	copy(p, chain)
	slices.Reverse(p)
	e.res.Paths = append(e.res.Paths, p)

	if err = e.opts.OnPath(slices.Clone(p)); err != nil {
		return true, fmt.Errorf("pathfind: OnPath error at path %d: %w", len(e.res.Paths)-1, err)
	}

	return false, nil
}
