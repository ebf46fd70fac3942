// SPDX-License-Identifier: MIT
//
// File: fixtures.go
// Role: Small deterministic topologies for tests, examples and benchmarks.
//
// Contract:
//   - Node ids come from the configured ID scheme (SymbolIDs by default).
//   - Borders are emitted in a fixed order, so neighbor order is reproducible.
//   - Size violations return ErrTooFewNodes; constructors never panic on input.

package atlas

import (
	"fmt"
	"strconv"
)

// File-local minima per constructor.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minGridNodes     = 2
)

// IDScheme maps a zero-based index to a node id.
type IDScheme func(idx int) string

// SymbolIDs maps 0→"A", 25→"Z", 26→"AA", … (spreadsheet column style).
func SymbolIDs(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DecimalIDs maps idx to its decimal string.
func DecimalIDs(idx int) string { return strconv.Itoa(idx) }

// FixtureOption configures fixture constructors.
type FixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	id IDScheme
}

// WithIDScheme overrides the node naming scheme. A nil fn is ignored.
func WithIDScheme(fn IDScheme) FixtureOption {
	return func(c *fixtureConfig) {
		if fn != nil {
			c.id = fn
		}
	}
}

func newFixtureConfig(opts []FixtureOption) fixtureConfig {
	cfg := fixtureConfig{id: SymbolIDs}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Path returns the chain id(0) – id(1) – … – id(n-1).
func Path(n int, opts ...FixtureOption) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts)
	b := NewBuilder()
	for i := 1; i < n; i++ {
		b.AddBorder(Node(cfg.id(i-1)), Node(cfg.id(i)))
	}

	return b.Build()
}

// Cycle returns the ring id(0) – … – id(n-1) – id(0).
func Cycle(n int, opts ...FixtureOption) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts)
	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.AddBorder(Node(cfg.id(i)), Node(cfg.id((i+1)%n)))
	}

	return b.Build()
}

// Complete returns K_n; borders are emitted for i<j in lexicographic (i,j) order.
func Complete(n int, opts ...FixtureOption) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts)
	b := NewBuilder()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddBorder(Node(cfg.id(i)), Node(cfg.id(j)))
		}
	}

	return b.Build()
}

// Grid returns a rows×cols lattice. Cell (r,c) has index r*cols+c; each cell
// borders its right neighbor first, then the one below.
func Grid(rows, cols int, opts ...FixtureOption) (*Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < minGridNodes {
		return nil, fmt.Errorf("Grid: %dx%d < min=%d: %w", rows, cols, minGridNodes, ErrTooFewNodes)
	}
	cfg := newFixtureConfig(opts)
	id := func(r, c int) Node { return Node(cfg.id(r*cols + c)) }
	b := NewBuilder()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddBorder(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				b.AddBorder(id(r, c), id(r+1, c))
			}
		}
	}

	return b.Build()
}

// Diamond returns the four-node graph A–B, B–D, A–C, C–D: two shortest
// paths of three nodes between A and D.
func Diamond() *Graph {
	g, _ := NewBuilder().
		AddBorder("A", "B").
		AddBorder("B", "D").
		AddBorder("A", "C").
		AddBorder("C", "D").
		Build()

	return g
}
