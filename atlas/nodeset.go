// SPDX-License-Identifier: MIT

package atlas

import "slices"

// NodeSet is a set of nodes that remembers insertion order.
// The zero value is an empty set ready to use. Not goroutine-safe.
type NodeSet struct {
	index map[Node]struct{}
	items []Node
}

// NewNodeSet returns a set holding nodes, in order, without duplicates.
func NewNodeSet(nodes ...Node) *NodeSet {
	s := &NodeSet{index: make(map[Node]struct{}, len(nodes))}
	for _, n := range nodes {
		s.Add(n)
	}

	return s
}

// Add inserts n and reports whether it was absent.
func (s *NodeSet) Add(n Node) bool {
	if s.index == nil {
		s.index = make(map[Node]struct{})
	}
	if _, ok := s.index[n]; ok {
		return false
	}
	s.index[n] = struct{}{}
	s.items = append(s.items, n)

	return true
}

// Has reports whether n is in the set. Safe on a nil receiver.
func (s *NodeSet) Has(n Node) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[n]
	return ok
}

// HasAll reports whether every node in ns is in the set.
func (s *NodeSet) HasAll(ns []Node) bool {
	for _, n := range ns {
		if !s.Has(n) {
			return false
		}
	}

	return true
}

// Len returns the number of members. Safe on a nil receiver.
func (s *NodeSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Slice returns the members in insertion order as a fresh slice.
func (s *NodeSet) Slice() []Node {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Clone returns an independent copy.
func (s *NodeSet) Clone() *NodeSet {
	return NewNodeSet(s.Slice()...)
}

// CountExcept returns the number of members not listed in except.
func (s *NodeSet) CountExcept(except ...Node) int {
	n := s.Len()
	for _, e := range slices.Compact(slices.Sorted(slices.Values(except))) {
		if s.Has(e) {
			n--
		}
	}

	return n
}
