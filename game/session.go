// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
	"github.com/katalvlaran/borderpath/puzzle"
	"github.com/katalvlaran/borderpath/resolve"
)

// Session holds the state of one player's round.
type Session struct {
	id       string
	resolver resolve.Resolver
	opts     Options

	phase Phase
	start atlas.Node
	end   atlas.Node
	full  *pathfind.PathSet
	// possible holds indices into full.Paths, ascending.
	possible []int
	correct  *atlas.NodeSet
	wrong    *atlas.NodeSet
	last     Outcome
	history  []GuessRecord
}

// NewSession returns an Inactive session that interprets guesses with r.
// A nil r resolves nothing, so every guess is Invalid.
func NewSession(r resolve.Resolver, opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if r == nil {
		r = resolve.Func(func(string) (atlas.Node, bool) { return "", false })
	}
	o.Logger = o.Logger.With("session", o.ID)

	return &Session{id: o.ID, resolver: r, opts: o}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Start begins a round with p, discarding any previous state. It is accepted
// in every phase. On error the session is left untouched.
func (s *Session) Start(p *puzzle.Puzzle) error {
	if p == nil {
		return ErrNilPuzzle
	}
	if p.Paths.Empty() {
		return fmt.Errorf("%w: %s → %s", ErrEmptyPuzzle, p.Start, p.End)
	}

	s.start, s.end = p.Start, p.End
	s.full = p.Paths.Clone()
	s.possible = make([]int, s.full.Len())
	for i := range s.possible {
		s.possible[i] = i
	}
	s.correct = atlas.NewNodeSet(p.Start, p.End)
	s.wrong = atlas.NewNodeSet()
	s.last = NoOutcome
	s.history = nil

	s.opts.Logger.Debug("round started",
		"start", s.start, "end", s.end,
		"paths", s.full.Len(), "to_find", s.TotalToFind())
	s.setPhase(Active)

	return nil
}

// Guess evaluates text and returns its outcome. Outside the Active phase it
// returns ErrNotActive and changes nothing.
func (s *Session) Guess(text string) (Outcome, error) {
	if s.phase != Active {
		return NoOutcome, fmt.Errorf("%w (phase %s)", ErrNotActive, s.phase)
	}

	node, ok := s.resolver.Resolve(text)
	var out Outcome
	switch {
	case !ok:
		node, out = "", Invalid
	case s.correct.Has(node) || s.wrong.Has(node):
		out = AlreadyGuessed
	case s.onPossiblePath(node):
		out = Correct
		s.correct.Add(node)
		s.narrow(node)
	default:
		out = Wrong
		s.wrong.Add(node)
	}

	s.last = out
	rec := GuessRecord{Text: text, Node: node, Outcome: out}
	s.history = append(s.history, rec)

	won := out == Correct && s.completedIndex() >= 0

	s.opts.Logger.Debug("guess",
		"text", text, "node", node, "outcome", out.String(),
		"possible", len(s.possible), "found", s.FoundCount())

	if won {
		s.setPhase(Won)
	}
	s.opts.OnGuess(GuessEvent{
		SessionID:   s.id,
		GuessRecord: rec,
		Phase:       s.phase,
		Possible:    len(s.possible),
	})

	return out, nil
}

// Reveal shows the first enumerated path as the answer and ends the round.
// The session moves to Ended, never to Won.
func (s *Session) Reveal() error {
	if s.phase != Active {
		return fmt.Errorf("%w (phase %s)", ErrNotActive, s.phase)
	}
	canonical, _ := s.full.First()
	s.correct = atlas.NewNodeSet(canonical...)

	s.opts.Logger.Debug("answer revealed", "path", canonical.String())
	s.setPhase(Ended)

	return nil
}

// End clears the round and returns to Inactive. Calling it on an Inactive
// session does nothing.
func (s *Session) End() {
	if s.phase == Inactive {
		return
	}
	s.start, s.end = "", ""
	s.full = nil
	s.possible = nil
	s.correct = nil
	s.wrong = nil
	s.last = NoOutcome
	s.history = nil
	s.setPhase(Inactive)
}

func (s *Session) setPhase(to Phase) {
	from := s.phase
	s.phase = to
	s.opts.Logger.Debug("phase change", "from", from.String(), "to", to.String())
	s.opts.OnPhaseChange(from, to)
}

func (s *Session) onPossiblePath(n atlas.Node) bool {
	for _, i := range s.possible {
		if s.full.Paths[i].Contains(n) {
			return true
		}
	}
	return false
}

// narrow keeps the possible paths that contain n.
func (s *Session) narrow(n atlas.Node) {
	s.possible = slices.DeleteFunc(s.possible, func(i int) bool {
		return !s.full.Paths[i].Contains(n)
	})
}

// completedIndex returns the first possible path whose interior is fully
// guessed, or -1.
func (s *Session) completedIndex() int {
	for _, i := range s.possible {
		if s.correct.HasAll(s.full.Paths[i].Interior()) {
			return i
		}
	}
	return -1
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// StartNode returns the start node, or "" when Inactive.
func (s *Session) StartNode() atlas.Node { return s.start }

// EndNode returns the end node, or "" when Inactive.
func (s *Session) EndNode() atlas.Node { return s.end }

// LastOutcome returns the outcome of the most recent guess this round.
func (s *Session) LastOutcome() Outcome { return s.last }

// History returns the guesses of this round in order.
func (s *Session) History() []GuessRecord { return slices.Clone(s.history) }

// Correct returns the correctly guessed nodes, start and end first.
func (s *Session) Correct() []atlas.Node { return s.correct.Slice() }

// Wrong returns the wrongly guessed nodes in guess order.
func (s *Session) Wrong() []atlas.Node { return s.wrong.Slice() }

// FullPaths returns a copy of every shortest path of the round.
func (s *Session) FullPaths() *pathfind.PathSet { return s.full.Clone() }

// PossiblePaths returns a copy of the paths still consistent with the
// correct guesses, in enumeration order.
func (s *Session) PossiblePaths() *pathfind.PathSet {
	if s.full == nil {
		return nil
	}
	out := &pathfind.PathSet{Start: s.start, End: s.end, Truncated: s.full.Truncated}
	for _, i := range s.possible {
		out.Paths = append(out.Paths, slices.Clone(s.full.Paths[i]))
	}
	return out
}

// FoundCount returns the number of correct guesses, endpoints excluded.
func (s *Session) FoundCount() int {
	return s.correct.CountExcept(s.start, s.end)
}

// TotalToFind returns the interior length of a shortest path.
func (s *Session) TotalToFind() int {
	return max(0, s.full.NodeCount()-2)
}

// CompletedPath returns the path that won the round. It is nil unless the
// phase is Won.
func (s *Session) CompletedPath() pathfind.Path {
	if s.phase != Won {
		return nil
	}
	if i := s.completedIndex(); i >= 0 {
		return slices.Clone(s.full.Paths[i])
	}
	return nil
}

// DisplayOrder returns every shortest path for presentation: when Won the
// completed path comes first, followed by the rest in enumeration order.
func (s *Session) DisplayOrder() []pathfind.Path {
	if s.full == nil {
		return nil
	}
	first := -1
	if s.phase == Won {
		first = s.completedIndex()
	}

	out := make([]pathfind.Path, 0, s.full.Len())
	if first >= 0 {
		out = append(out, slices.Clone(s.full.Paths[first]))
	}
	for i, p := range s.full.Paths {
		if i != first {
			out = append(out, slices.Clone(p))
		}
	}
	return out
}

// Snapshot returns a detached copy of everything a presentation layer reads.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:            s.id,
		Phase:         s.phase,
		Start:         s.start,
		End:           s.end,
		Correct:       s.Correct(),
		Wrong:         s.Wrong(),
		LastOutcome:   s.last,
		FoundCount:    s.FoundCount(),
		TotalToFind:   s.TotalToFind(),
		CompletedPath: s.CompletedPath(),
		DisplayOrder:  s.DisplayOrder(),
		History:       s.History(),
	}
	if s.full != nil {
		snap.FullPaths = s.FullPaths().Paths
		snap.PossiblePaths = s.PossiblePaths().Paths
	}
	return snap
}
