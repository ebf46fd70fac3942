package atlas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/borderpath/atlas"
)

func TestNodeSet_InsertionOrder(t *testing.T) {
	s := atlas.NewNodeSet("C", "A", "C", "B")
	assert.Equal(t, []atlas.Node{"C", "A", "B"}, s.Slice())
	assert.Equal(t, 3, s.Len())

	assert.False(t, s.Add("A"))
	assert.True(t, s.Add("D"))
	assert.Equal(t, []atlas.Node{"C", "A", "B", "D"}, s.Slice())
}

func TestNodeSet_ZeroValueAndNil(t *testing.T) {
	var s atlas.NodeSet
	assert.False(t, s.Has("A"))
	assert.True(t, s.Add("A"))
	assert.True(t, s.Has("A"))

	var nilSet *atlas.NodeSet
	assert.False(t, nilSet.Has("A"))
	assert.Zero(t, nilSet.Len())
	assert.Nil(t, nilSet.Slice())
}

func TestNodeSet_CloneIsIndependent(t *testing.T) {
	s := atlas.NewNodeSet("A", "B")
	c := s.Clone()
	c.Add("C")
	assert.False(t, s.Has("C"))
	assert.True(t, c.HasAll([]atlas.Node{"A", "B", "C"}))
	assert.False(t, s.HasAll([]atlas.Node{"A", "C"}))
}

func TestNodeSet_CountExcept(t *testing.T) {
	s := atlas.NewNodeSet("S", "E", "X", "Y")
	assert.Equal(t, 2, s.CountExcept("S", "E"))
	assert.Equal(t, 3, s.CountExcept("S", "S", "MISSING"))
	assert.Equal(t, 4, s.CountExcept())
}
