// SPDX-License-Identifier: MIT

package game

import (
	"errors"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
)

// Sentinel errors for session operations.
var (
	// ErrNotActive is returned by Guess and Reveal outside the Active phase.
	ErrNotActive = errors.New("game: session is not active")

	// ErrNilPuzzle is returned by Start when given a nil puzzle.
	ErrNilPuzzle = errors.New("game: puzzle is nil")

	// ErrEmptyPuzzle is returned by Start when the puzzle has no paths.
	ErrEmptyPuzzle = errors.New("game: puzzle has no paths")
)

// Phase is the lifecycle state of a Session.
type Phase int

const (
	Inactive Phase = iota
	Active
	Won
	Ended
)

var phaseNames = [...]string{
	Inactive: "inactive",
	Active:   "active",
	Won:      "won",
	Ended:    "ended",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Outcome classifies a guess. NoOutcome is the value before any guess.
type Outcome int

const (
	NoOutcome Outcome = iota
	Correct
	Wrong
	AlreadyGuessed
	Invalid
)

var outcomeNames = [...]string{
	NoOutcome:      "none",
	Correct:        "correct",
	Wrong:          "wrong",
	AlreadyGuessed: "already_guessed",
	Invalid:        "invalid",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// GuessRecord is one entry of a session's guess history.
type GuessRecord struct {
	Text    string
	Node    atlas.Node // empty when Outcome is Invalid
	Outcome Outcome
}

// GuessEvent is delivered to the OnGuess hook.
type GuessEvent struct {
	SessionID string
	GuessRecord
	// Phase after the guess was applied.
	Phase Phase
	// Possible is the number of paths still consistent after the guess.
	Possible int
}

// Snapshot is a detached copy of a session's observable state.
type Snapshot struct {
	ID            string
	Phase         Phase
	Start         atlas.Node
	End           atlas.Node
	FullPaths     []pathfind.Path
	PossiblePaths []pathfind.Path
	Correct       []atlas.Node
	Wrong         []atlas.Node
	LastOutcome   Outcome
	FoundCount    int
	TotalToFind   int
	CompletedPath pathfind.Path
	DisplayOrder  []pathfind.Path
	History       []GuessRecord
}
