// SPDX-License-Identifier: MIT

// Package puzzle samples endpoint pairs from an atlas.Graph until their
// shortest connection falls inside a configured length band.
//
// Each attempt draws a start and an end uniformly from the eligible nodes,
// then rejects the pair, in this order, when
//
//  1. start == end                           (RejectSameNode)
//  2. end borders start                      (RejectNeighbors)
//  3. no path connects them                  (RejectDisconnected)
//  4. enumeration hit the WithMaxPaths cap   (RejectTruncated)
//  5. the node count of the first shortest   (RejectOutOfBand)
//     path is outside [BandMin, BandMax]
//
// The first accepted pair is returned with its complete PathSet. After
// MaxAttempts rejections Generate returns ErrAttemptsExhausted; it never
// loops forever and never retries on its own.
//
// Randomness comes from a Source (math/rand.*Rand satisfies it). The default
// Source is seeded deterministically, so two generators built with the same
// options on the same graph produce the same puzzle sequence.
package puzzle

import (
	"errors"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
)

// Sentinel errors for puzzle generation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("puzzle: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")

	// ErrNoEligibleNodes is returned when fewer than two endpoints are available.
	ErrNoEligibleNodes = errors.New("puzzle: fewer than two eligible nodes")

	// ErrAttemptsExhausted is returned when every attempt was rejected.
	ErrAttemptsExhausted = errors.New("puzzle: attempts exhausted")
)

// Source yields uniform integers in [0, n). *math/rand.Rand implements it.
type Source interface {
	Intn(n int) int
}

// Puzzle is an accepted endpoint pair with every shortest path between them.
type Puzzle struct {
	Start atlas.Node
	End   atlas.Node
	Paths *pathfind.PathSet
	// Attempts is the 1-based attempt number that produced this puzzle.
	Attempts int
}

// Length returns the node count of each shortest path.
func (p *Puzzle) Length() int { return p.Paths.NodeCount() }

// Canonical returns the first enumerated path.
func (p *Puzzle) Canonical() pathfind.Path {
	first, _ := p.Paths.First()
	return first
}

// Rejection classifies the result of one attempt.
type Rejection int

// Attempt outcomes, in evaluation order.
const (
	Accepted Rejection = iota
	RejectSameNode
	RejectNeighbors
	RejectDisconnected
	RejectTruncated
	RejectOutOfBand
)

var rejectionNames = [...]string{
	Accepted:           "accepted",
	RejectSameNode:     "same_node",
	RejectNeighbors:    "neighbors",
	RejectDisconnected: "disconnected",
	RejectTruncated:    "truncated",
	RejectOutOfBand:    "out_of_band",
}

// String returns a snake_case label suitable for logs and metric labels.
func (r Rejection) String() string {
	if r < 0 || int(r) >= len(rejectionNames) {
		return "unknown"
	}
	return rejectionNames[r]
}

// Attempt describes one sampling round, reported through WithOnAttempt.
type Attempt struct {
	// N is the 1-based attempt number.
	N      int
	Start  atlas.Node
	End    atlas.Node
	Result Rejection
	// Length is the path node count, or 0 if no path was enumerated.
	Length int
	// Paths is the number of shortest paths found, or 0.
	Paths int
}
