// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
)

// Generator draws puzzles from one graph. It owns its random Source and is
// therefore not safe for concurrent use; build one per goroutine.
type Generator struct {
	graph    *atlas.Graph
	opts     Options
	eligible []atlas.Node
	rng      Source
}

// NewGenerator validates options and resolves the candidate endpoints.
//
// Returns ErrGraphNil, ErrOptionViolation, or ErrNoEligibleNodes.
func NewGenerator(g *atlas.Graph, opts ...Option) (*Generator, error) {
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

	var eligible []atlas.Node
	if o.Eligible != nil {
		skip := atlas.NewNodeSet(o.Excluded...)
		for _, n := range o.Eligible {
			if g.HasNode(n) && !skip.Has(n) {
				eligible = append(eligible, n)
			}
		}
	} else {
		eligible = g.Eligible(o.Excluded...)
	}
	if len(eligible) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrNoEligibleNodes, len(eligible))
	}

	rng := o.Source
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return &Generator{graph: g, opts: o, eligible: eligible, rng: rng}, nil
}

// Eligible returns the candidate endpoints in sampling order.
func (gen *Generator) Eligible() []atlas.Node {
	return append([]atlas.Node(nil), gen.eligible...)
}

// Generate runs up to MaxAttempts sampling rounds and returns the first
// accepted puzzle, or ErrAttemptsExhausted.
func (gen *Generator) Generate() (*Puzzle, error) {
	log := gen.opts.Logger
	for n := 1; n <= gen.opts.MaxAttempts; n++ {
		start := gen.eligible[gen.rng.Intn(len(gen.eligible))]
		end := gen.eligible[gen.rng.Intn(len(gen.eligible))]

		att, paths, err := gen.try(n, start, end)
		if err != nil {
			return nil, err
		}
		gen.opts.OnAttempt(att)

		if att.Result != Accepted {
			log.Debug("puzzle attempt rejected",
				slogAttempt(att)...)
			continue
		}

		log.Debug("puzzle accepted", slogAttempt(att)...)
		return &Puzzle{Start: start, End: end, Paths: paths, Attempts: n}, nil
	}

	log.Warn("puzzle generation exhausted",
		"attempts", gen.opts.MaxAttempts,
		"band_min", gen.opts.BandMin,
		"band_max", gen.opts.BandMax)

	return nil, fmt.Errorf("%w after %d attempts (band %d..%d)",
		ErrAttemptsExhausted, gen.opts.MaxAttempts, gen.opts.BandMin, gen.opts.BandMax)
}

// try evaluates one endpoint pair against the rejection rules in order.
func (gen *Generator) try(n int, start, end atlas.Node) (Attempt, *pathfind.PathSet, error) {
	att := Attempt{N: n, Start: start, End: end}

	if start == end {
		att.Result = RejectSameNode
		return att, nil, nil
	}
	if gen.graph.Adjacent(start, end) {
		att.Result = RejectNeighbors
		return att, nil, nil
	}

	paths, err := pathfind.EnumerateShortestPaths(gen.graph, start, end,
		pathfind.WithMaxPaths(gen.opts.MaxPaths))
	if err != nil {
		return att, nil, fmt.Errorf("puzzle: attempt %d: %w", n, err)
	}
	att.Paths = paths.Len()
	att.Length = paths.NodeCount()

	switch {
	case paths.Empty():
		att.Result = RejectDisconnected
	case paths.Truncated:
		att.Result = RejectTruncated
	case att.Length < gen.opts.BandMin || att.Length > gen.opts.BandMax:
		att.Result = RejectOutOfBand
	default:
		att.Result = Accepted
	}

	return att, paths, nil
}

func slogAttempt(a Attempt) []any {
	return []any{
		"attempt", a.N,
		"start", a.Start,
		"end", a.End,
		"result", a.Result.String(),
		"length", a.Length,
		"paths", a.Paths,
	}
}

// Generate is a one-shot convenience over NewGenerator: it samples from
// eligible with src, accepting paths of bandMin..bandMax nodes, for at most
// maxAttempts rounds. A nil src selects the deterministic default source.
func Generate(g *atlas.Graph, eligible []atlas.Node, bandMin, bandMax, maxAttempts int, src Source) (*Puzzle, error) {
	opts := []Option{
		WithEligible(eligible...),
		WithBand(bandMin, bandMax),
		WithMaxAttempts(maxAttempts),
	}
	if src != nil {
		opts = append(opts, WithSource(src))
	}
	gen, err := NewGenerator(g, opts...)
	if err != nil {
		return nil, err
	}

	return gen.Generate()
}
