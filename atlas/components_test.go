package atlas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderpath/atlas"
)

func TestComponents(t *testing.T) {
	g, err := atlas.NewBuilder().
		AddBorder("A", "B").
		AddBorder("C", "D").
		AddBorder("D", "E").
		AddNode("F").
		Build()
	require.NoError(t, err)

	assert.Equal(t, [][]atlas.Node{
		{"A", "B"},
		{"C", "D", "E"},
		{"F"},
	}, g.Components())
}

func TestComponents_Fixtures(t *testing.T) {
	grid, err := atlas.Grid(3, 4)
	require.NoError(t, err)
	comps := grid.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 12)

	a, err := atlas.Americas()
	require.NoError(t, err)
	comps = a.Graph().Components()
	require.Len(t, comps, 6, "mainland, Hispaniola and four islands")
	assert.Equal(t, atlas.Node("ARG"), comps[0][0])
	assert.Len(t, comps[0], 22)
}
