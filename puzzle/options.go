// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/borderpath/atlas"
)

// Defaults: 3 to 5 countries to find, i.e. paths of 5 to 7 nodes, and 100
// sampling rounds.
const (
	DefaultBandMin     = 5
	DefaultBandMax     = 7
	DefaultMaxAttempts = 100

	// minBand keeps at least one interior node to guess.
	minBand = 3
)

// Option configures a Generator. Invalid values are recorded and surfaced
// as ErrOptionViolation from NewGenerator.
type Option func(*Options)

// Options holds generator parameters.
type Options struct {
	BandMin     int
	BandMax     int
	MaxAttempts int
	// MaxPaths caps path enumeration per attempt; 0 means unbounded.
	// Pairs whose enumeration is truncated are rejected.
	MaxPaths int
	// Eligible, when non-nil, replaces the graph-derived candidate list.
	Eligible []atlas.Node
	Excluded []atlas.Node
	Source   Source
	Seed     int64
	Logger   *slog.Logger
	// OnAttempt is called after every attempt, accepted or not.
	OnAttempt func(Attempt)

	err error
}

// DefaultOptions returns the default band and attempt budget,
// unbounded enumeration, a deterministic Source and a discard logger.
func DefaultOptions() Options {
	return Options{
		BandMin:     DefaultBandMin,
		BandMax:     DefaultBandMax,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      slog.New(slog.DiscardHandler),
		OnAttempt:   func(Attempt) {},
	}
}

// WithBand sets the inclusive node-count band. min must be ≥ 3 and max ≥ min.
func WithBand(minNodes, maxNodes int) Option {
	return func(o *Options) {
		if minNodes < minBand || maxNodes < minNodes {
			o.err = fmt.Errorf("%w: band [%d,%d] (need %d ≤ min ≤ max)", ErrOptionViolation, minNodes, maxNodes, minBand)
			return
		}
		o.BandMin, o.BandMax = minNodes, maxNodes
	}
}

// WithMaxAttempts sets the sampling budget (≥ 1).
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithMaxPaths caps shortest-path enumeration per attempt (0 = unbounded).
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithEligible replaces the candidate endpoints. Duplicates are dropped and
// order is kept, so sampling stays reproducible.
func WithEligible(nodes ...atlas.Node) Option {
	return func(o *Options) {
		o.Eligible = atlas.NewNodeSet(nodes...).Slice()
		if o.Eligible == nil {
			o.Eligible = []atlas.Node{}
		}
	}
}

// WithExcluded removes nodes from the candidate endpoints.
func WithExcluded(nodes ...atlas.Node) Option {
	return func(o *Options) {
		o.Excluded = append(o.Excluded, nodes...)
	}
}

// WithSource installs a custom random source.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil Source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithSeed seeds the default source; 0 selects the package default seed.
// Ignored when WithSource is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the structured logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAttempt registers a callback invoked after each attempt. Callbacks
// from repeated options run in order.
func WithOnAttempt(fn func(Attempt)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnAttempt
		o.OnAttempt = func(a Attempt) { prev(a); fn(a) }
	}
}
