// SPDX-License-Identifier: MIT

// Package pathfind provides tunable options, error definitions and the
// Path / PathSet value types.
package pathfind

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/borderpath/atlas"
)

// Sentinel errors for distance and path computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound is returned when start or end is absent from the graph.
	ErrNodeNotFound = errors.New("pathfind: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Distances maps each reachable node to its hop count from the BFS origin.
type Distances map[atlas.Node]int

// To returns the distance to n and whether n was reached.
func (d Distances) To(n atlas.Node) (int, bool) {
	k, ok := d[n]
	return k, ok
}

// Option configures EnumerateShortestPaths via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// MaxPaths, if > 0, caps the number of paths returned.
	// A value of 0 means unbounded.
	MaxPaths int

	// OnPath is called once per emitted path, in emission order. The path is
	// a fresh copy owned by the callee. Returning an error aborts enumeration.
	OnPath func(p Path) error

	err error
}

// DefaultOptions returns unbounded enumeration with a no-op OnPath hook.
func DefaultOptions() Options {
	return Options{
		MaxPaths: 0,
		OnPath:   func(Path) error { return nil },
	}
}

// WithMaxPaths caps the result size.
//
//	n > 0:  at most n paths; PathSet.Truncated reports whether more existed
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithOnPath registers a per-path callback.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

// Path is an ordered sequence of nodes from a start to an end.
type Path []atlas.Node

// Start returns the first node, or "" for an empty path.
func (p Path) Start() atlas.Node {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// End returns the last node, or "" for an empty path.
func (p Path) End() atlas.Node {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Interior returns the nodes strictly between start and end.
// Paths of fewer than three nodes have no interior.
func (p Path) Interior() []atlas.Node {
	if len(p) < 3 {
		return nil
	}
	return p[1 : len(p)-1 : len(p)-1]
}

// Len returns the node count.
func (p Path) Len() int { return len(p) }

// Hops returns the edge count, i.e. Len()-1 for a non-empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether n lies anywhere on the path, endpoints included.
func (p Path) Contains(n atlas.Node) bool { return slices.Contains(p, n) }

// Equal reports whether p and q visit the same nodes in the same order.
func (p Path) Equal(q Path) bool { return slices.Equal(p, q) }

// String renders the path as "A → B → C".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = string(n)
	}
	return strings.Join(parts, " → ")
}

// PathSet is an ordered collection of equal-length paths sharing endpoints.
// Order is enumeration order and is significant.
type PathSet struct {
	Start     atlas.Node
	End       atlas.Node
	Paths     []Path
	Truncated bool
}

// Len returns the number of paths.
func (s *PathSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Paths)
}

// Empty reports whether the set has no paths.
func (s *PathSet) Empty() bool { return s.Len() == 0 }

// First returns the first path in enumeration order.
func (s *PathSet) First() (Path, bool) {
	if s.Empty() {
		return nil, false
	}
	return s.Paths[0], true
}

// At returns the i-th path.
func (s *PathSet) At(i int) Path { return s.Paths[i] }

// NodeCount returns the node count shared by every member, or 0 when empty.
func (s *PathSet) NodeCount() int {
	if s.Empty() {
		return 0
	}
	return len(s.Paths[0])
}

// Index returns the position of p in the set, or -1.
func (s *PathSet) Index(p Path) int {
	if s == nil {
		return -1
	}
	return slices.IndexFunc(s.Paths, p.Equal)
}

// Containing returns a new set holding, in order, the paths that contain n.
func (s *PathSet) Containing(n atlas.Node) *PathSet {
	out := &PathSet{Start: s.Start, End: s.End, Truncated: s.Truncated}
	for _, p := range s.Paths {
		if p.Contains(n) {
			out.Paths = append(out.Paths, p)
		}
	}
	return out
}

// Nodes returns the union of all member nodes in first-seen order.
func (s *PathSet) Nodes() []atlas.Node {
	seen := atlas.NewNodeSet()
	if s != nil {
		for _, p := range s.Paths {
			for _, n := range p {
				seen.Add(n)
			}
		}
	}
	return seen.Slice()
}

// Clone returns a deep copy.
func (s *PathSet) Clone() *PathSet {
	if s == nil {
		return nil
	}
	out := &PathSet{Start: s.Start, End: s.End, Truncated: s.Truncated, Paths: make([]Path, len(s.Paths))}
	for i, p := range s.Paths {
		out.Paths[i] = slices.Clone(p)
	}
	return out
}
