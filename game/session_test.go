package game_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/game"
	"github.com/katalvlaran/borderpath/pathfind"
	"github.com/katalvlaran/borderpath/puzzle"
	"github.com/katalvlaran/borderpath/resolve"
)

// byID resolves text to a node id of g, ignoring case.
func byID(g *atlas.Graph) resolve.Resolver {
	return resolve.Func(func(s string) (atlas.Node, bool) {
		n := atlas.Node(strings.ToUpper(strings.TrimSpace(s)))
		return n, g.HasNode(n)
	})
}

func newPuzzle(t *testing.T, g *atlas.Graph, start, end atlas.Node) *puzzle.Puzzle {
	t.Helper()
	ps, err := pathfind.EnumerateShortestPaths(g, start, end)
	require.NoError(t, err)
	require.False(t, ps.Empty())
	return &puzzle.Puzzle{Start: start, End: end, Paths: ps, Attempts: 1}
}

func grid3(t *testing.T) *atlas.Graph {
	t.Helper()
	g, err := atlas.Grid(3, 3)
	require.NoError(t, err)
	return g
}

func guess(t *testing.T, s *game.Session, text string) game.Outcome {
	t.Helper()
	out, err := s.Guess(text)
	require.NoError(t, err)
	return out
}

func TestSession_ChainWin(t *testing.T) {
	g, err := atlas.Path(5)
	require.NoError(t, err)
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "E")))

	assert.Equal(t, game.Active, s.Phase())
	assert.Equal(t, 0, s.FoundCount())
	assert.Equal(t, 3, s.TotalToFind())

	assert.Equal(t, game.Correct, guess(t, s, "B"))
	assert.Equal(t, game.Correct, guess(t, s, "c"))
	assert.Equal(t, game.Active, s.Phase())
	assert.Nil(t, s.CompletedPath())
	assert.Equal(t, game.Correct, guess(t, s, "D"))

	assert.Equal(t, game.Won, s.Phase())
	assert.Equal(t, 3, s.FoundCount())
	assert.Equal(t, 3, s.TotalToFind())
	assert.Equal(t, pathfind.Path{"A", "B", "C", "D", "E"}, s.CompletedPath())
	assert.Equal(t, []atlas.Node{"A", "E", "B", "C", "D"}, s.Correct())

	_, err = s.Guess("B")
	assert.ErrorIs(t, err, game.ErrNotActive, "no guessing after a win")
}

func TestSession_DiamondAmbiguousWin(t *testing.T) {
	g := atlas.Diamond()
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "D")))
	require.Equal(t, 2, s.PossiblePaths().Len())

	assert.Equal(t, game.Correct, guess(t, s, "B"))
	assert.Equal(t, game.Won, s.Phase(), "C is never needed")
	assert.Equal(t, 1, s.PossiblePaths().Len())
	assert.Equal(t, pathfind.Path{"A", "B", "D"}, s.CompletedPath())
	assert.Equal(t, 1, s.FoundCount())
	assert.Equal(t, 1, s.TotalToFind())
}

func TestSession_DisplayOrder(t *testing.T) {
	g := atlas.Diamond()
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "D")))

	enumerated := []pathfind.Path{{"A", "B", "D"}, {"A", "C", "D"}}
	assert.Equal(t, enumerated, s.DisplayOrder(), "enumeration order while active")

	assert.Equal(t, game.Correct, guess(t, s, "C"))
	require.Equal(t, game.Won, s.Phase())
	assert.Equal(t, []pathfind.Path{{"A", "C", "D"}, {"A", "B", "D"}}, s.DisplayOrder(),
		"completed path first, rest in enumeration order")
	assert.Equal(t, enumerated, s.FullPaths().Paths, "full set keeps its order")
}

func TestSession_NonMemberIsWrong(t *testing.T) {
	g, err := atlas.Path(5)
	require.NoError(t, err)
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "C")))

	before := s.PossiblePaths()
	assert.Equal(t, game.Wrong, guess(t, s, "E"), "E exists in the graph but on no path")
	assert.Equal(t, before, s.PossiblePaths())
	assert.Equal(t, []atlas.Node{"E"}, s.Wrong())
	assert.Equal(t, game.Wrong, s.LastOutcome())
	assert.Equal(t, game.Active, s.Phase())
}

func TestSession_NarrowingIsMonotonic(t *testing.T) {
	g := grid3(t)
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "I")))
	require.Equal(t, 6, s.PossiblePaths().Len())

	steps := []struct {
		text     string
		want     game.Outcome
		possible int
	}{
		{"E", game.Correct, 4},
		{"G", game.Wrong, 4}, // only on A-D-G-H-I, already ruled out
		{"B", game.Correct, 2},
		{"F", game.Correct, 1},
	}

	prev := s.PossiblePaths()
	for _, st := range steps {
		assert.Equalf(t, st.want, guess(t, s, st.text), "guess %s", st.text)
		cur := s.PossiblePaths()
		assert.Equalf(t, st.possible, cur.Len(), "after %s", st.text)
		for _, p := range cur.Paths {
			assert.GreaterOrEqualf(t, prev.Index(p), 0, "%v must come from the previous set", p)
		}
		prev = cur
	}

	assert.Equal(t, game.Won, s.Phase())
	assert.Equal(t, pathfind.Path{"A", "B", "E", "F", "I"}, s.CompletedPath())
	assert.Equal(t, 6, s.FullPaths().Len(), "full set is never narrowed")
}

func TestSession_AlreadyGuessedAndInvalid(t *testing.T) {
	g := grid3(t)
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "I")))

	assert.Equal(t, game.Correct, guess(t, s, "E"))
	snap := s.Snapshot()

	assert.Equal(t, game.AlreadyGuessed, guess(t, s, "e"))
	assert.Equal(t, game.AlreadyGuessed, guess(t, s, "A"), "endpoints count as guessed")
	assert.Equal(t, game.Invalid, guess(t, s, "Narnia"))
	assert.Equal(t, game.Invalid, s.LastOutcome())

	after := s.Snapshot()
	assert.Equal(t, snap.PossiblePaths, after.PossiblePaths)
	assert.Equal(t, snap.Correct, after.Correct)
	assert.Equal(t, snap.Wrong, after.Wrong)
	assert.Equal(t, snap.Phase, after.Phase)

	assert.Equal(t, game.Wrong, guess(t, s, "G"))
	assert.Equal(t, game.AlreadyGuessed, guess(t, s, "G"))
	assert.Equal(t, []atlas.Node{"G"}, s.Wrong())

	hist := s.History()
	require.Len(t, hist, 6)
	assert.Equal(t, game.GuessRecord{Text: "Narnia", Outcome: game.Invalid}, hist[3])
	assert.Equal(t, game.GuessRecord{Text: "e", Node: "E", Outcome: game.AlreadyGuessed}, hist[1])
}

func TestSession_RevealIsNotAWin(t *testing.T) {
	g := grid3(t)
	s := game.NewSession(byID(g))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "I")))
	assert.Equal(t, game.Correct, guess(t, s, "D"))

	require.NoError(t, s.Reveal())
	assert.Equal(t, game.Ended, s.Phase())
	assert.Equal(t, []atlas.Node{"A", "B", "C", "F", "I"}, s.Correct(), "first enumerated path")
	assert.Equal(t, 3, s.FoundCount())
	assert.Nil(t, s.CompletedPath())
	assert.Equal(t, s.FullPaths().Paths, s.DisplayOrder())

	_, err := s.Guess("E")
	assert.ErrorIs(t, err, game.ErrNotActive)
	assert.ErrorIs(t, s.Reveal(), game.ErrNotActive)
}

func TestSession_NotActive(t *testing.T) {
	s := game.NewSession(nil)
	assert.Equal(t, game.Inactive, s.Phase())

	out, err := s.Guess("anything")
	assert.ErrorIs(t, err, game.ErrNotActive)
	assert.Equal(t, game.NoOutcome, out)
	assert.Empty(t, s.History())
	assert.ErrorIs(t, s.Reveal(), game.ErrNotActive)

	assert.Zero(t, s.FoundCount())
	assert.Zero(t, s.TotalToFind())
	assert.Nil(t, s.DisplayOrder())
	assert.Nil(t, s.PossiblePaths())
	assert.Nil(t, s.FullPaths())
}

func TestSession_StartErrors(t *testing.T) {
	s := game.NewSession(nil)

	assert.ErrorIs(t, s.Start(nil), game.ErrNilPuzzle)
	assert.ErrorIs(t, s.Start(&puzzle.Puzzle{Start: "A", End: "B"}), game.ErrEmptyPuzzle)
	assert.ErrorIs(t, s.Start(&puzzle.Puzzle{
		Start: "A", End: "B", Paths: &pathfind.PathSet{Start: "A", End: "B"},
	}), game.ErrEmptyPuzzle)
	assert.Equal(t, game.Inactive, s.Phase(), "state untouched")
}

func TestSession_NilResolver(t *testing.T) {
	s := game.NewSession(nil)
	require.NoError(t, s.Start(newPuzzle(t, atlas.Diamond(), "A", "D")))
	assert.Equal(t, game.Invalid, guess(t, s, "B"))
}

func TestSession_EndAndRestart(t *testing.T) {
	g := atlas.Diamond()

	type change struct{ from, to game.Phase }
	var changes []change
	s := game.NewSession(byID(g), game.WithOnPhaseChange(func(from, to game.Phase) {
		changes = append(changes, change{from, to})
	}))

	require.NoError(t, s.Start(newPuzzle(t, g, "A", "D")))
	guess(t, s, "B")
	require.Equal(t, game.Won, s.Phase())

	require.NoError(t, s.Start(newPuzzle(t, g, "B", "C")), "restart from Won")
	assert.Equal(t, game.Active, s.Phase())
	assert.Equal(t, atlas.Node("B"), s.StartNode())
	assert.Equal(t, atlas.Node("C"), s.EndNode())
	assert.Equal(t, []atlas.Node{"B", "C"}, s.Correct())
	assert.Empty(t, s.History())
	assert.Equal(t, game.NoOutcome, s.LastOutcome())

	s.End()
	s.End()
	assert.Equal(t, game.Inactive, s.Phase())
	assert.Empty(t, s.StartNode())
	assert.Empty(t, s.Correct())
	assert.Empty(t, s.Wrong())
	assert.Nil(t, s.FullPaths())

	assert.Equal(t, []change{
		{game.Inactive, game.Active},
		{game.Active, game.Won},
		{game.Won, game.Active},
		{game.Active, game.Inactive},
	}, changes, "second End is a no-op")
}

func TestSession_OnGuessHook(t *testing.T) {
	g := atlas.Diamond()

	var events []game.GuessEvent
	var order []string
	s := game.NewSession(byID(g),
		game.WithID("s-1"),
		game.WithOnGuess(func(e game.GuessEvent) { events = append(events, e) }),
		game.WithOnGuess(func(game.GuessEvent) { order = append(order, "second") }),
		game.WithOnPhaseChange(func(_, to game.Phase) { order = append(order, "phase:"+to.String()) }),
	)
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "D")))
	order = nil

	guess(t, s, "X")
	guess(t, s, "B")

	require.Len(t, events, 2)
	assert.Equal(t, "s-1", events[0].SessionID)
	assert.Equal(t, game.Invalid, events[0].Outcome)
	assert.Equal(t, game.Active, events[0].Phase)
	assert.Equal(t, 2, events[0].Possible)

	assert.Equal(t, game.Correct, events[1].Outcome)
	assert.Equal(t, atlas.Node("B"), events[1].Node)
	assert.Equal(t, game.Won, events[1].Phase)
	assert.Equal(t, 1, events[1].Possible)

	assert.Equal(t, []string{"second", "phase:won", "second"}, order)
}

func TestSession_IDs(t *testing.T) {
	a := game.NewSession(nil)
	b := game.NewSession(nil)
	assert.NotEqual(t, a.ID(), b.ID())
	_, err := uuid.Parse(a.ID())
	assert.NoError(t, err)

	assert.Equal(t, "fixed", game.NewSession(nil, game.WithID("fixed")).ID())
	assert.NotEmpty(t, game.NewSession(nil, game.WithID("")).ID())
}

func TestSession_Independent(t *testing.T) {
	g := grid3(t)
	p := newPuzzle(t, g, "A", "I")

	s1 := game.NewSession(byID(g))
	s2 := game.NewSession(byID(g))
	require.NoError(t, s1.Start(p))
	require.NoError(t, s2.Start(p))

	guess(t, s1, "E")
	guess(t, s1, "B")

	assert.Equal(t, 2, s1.PossiblePaths().Len())
	assert.Equal(t, 6, s2.PossiblePaths().Len())
	assert.Equal(t, 6, p.Paths.Len(), "puzzle is not mutated")
	assert.Equal(t, 0, s2.FoundCount())
}

func TestSnapshot_Detached(t *testing.T) {
	g := atlas.Diamond()
	s := game.NewSession(byID(g), game.WithID("snap"))
	require.NoError(t, s.Start(newPuzzle(t, g, "A", "D")))
	guess(t, s, "C")

	snap := s.Snapshot()
	assert.Equal(t, "snap", snap.ID)
	assert.Equal(t, game.Won, snap.Phase)
	assert.Equal(t, 1, snap.FoundCount)
	assert.Equal(t, 1, snap.TotalToFind)
	assert.Equal(t, pathfind.Path{"A", "C", "D"}, snap.CompletedPath)
	assert.Len(t, snap.FullPaths, 2)
	assert.Len(t, snap.PossiblePaths, 1)

	snap.FullPaths[0][1] = "Z"
	snap.Correct[0] = "Z"
	assert.Equal(t, pathfind.Path{"A", "B", "D"}, s.FullPaths().At(0))
	assert.Equal(t, atlas.Node("A"), s.Correct()[0])
}

func TestPhaseAndOutcome_String(t *testing.T) {
	assert.Equal(t, "won", game.Won.String())
	assert.Equal(t, "unknown", game.Phase(42).String())
	assert.Equal(t, "already_guessed", game.AlreadyGuessed.String())
	assert.Equal(t, "none", game.NoOutcome.String())
	assert.Equal(t, "unknown", game.Outcome(-1).String())
}
