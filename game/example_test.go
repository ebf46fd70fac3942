package game_test

import (
	"fmt"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/game"
	"github.com/katalvlaran/borderpath/pathfind"
	"github.com/katalvlaran/borderpath/puzzle"
	"github.com/katalvlaran/borderpath/resolve"
)

// ExampleSession plays a round on the diamond A–B–D / A–C–D.
func ExampleSession() {
	g := atlas.Diamond()
	paths, _ := pathfind.EnumerateShortestPaths(g, "A", "D")

	s := game.NewSession(resolve.Func(func(text string) (atlas.Node, bool) {
		n := atlas.Node(text)
		return n, g.HasNode(n)
	}))
	_ = s.Start(&puzzle.Puzzle{Start: "A", End: "D", Paths: paths})

	for _, text := range []string{"Q", "C"} {
		out, _ := s.Guess(text)
		fmt.Printf("%s: %s, %d/%d found\n", text, out, s.FoundCount(), s.TotalToFind())
	}
	fmt.Println(s.Phase(), s.CompletedPath())
	// Output:
	// Q: invalid, 0/1 found
	// C: correct, 1/1 found
	// won A → C → D
}
