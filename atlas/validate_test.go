package atlas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderpath/atlas"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		adj  map[atlas.Node][]atlas.Node
		want []error
	}{
		{
			name: "symmetric",
			adj:  map[atlas.Node][]atlas.Node{"A": {"B"}, "B": {"A", "C"}, "C": {"B"}},
		},
		{
			name: "asymmetric",
			adj:  map[atlas.Node][]atlas.Node{"A": {"B"}, "B": {}},
			want: []error{atlas.ErrAsymmetric},
		},
		{
			name: "dangling",
			adj:  map[atlas.Node][]atlas.Node{"A": {"GHOST"}},
			want: []error{atlas.ErrDanglingNeighbor},
		},
		{
			name: "self border",
			adj:  map[atlas.Node][]atlas.Node{"A": {"A"}},
			want: []error{atlas.ErrSelfBorder},
		},
		{
			name: "duplicate neighbor",
			adj:  map[atlas.Node][]atlas.Node{"A": {"B", "B"}, "B": {"A"}},
			want: []error{atlas.ErrDuplicateNeighbor},
		},
		{
			name: "several at once",
			adj:  map[atlas.Node][]atlas.Node{"A": {"B", "X"}, "B": {}},
			want: []error{atlas.ErrAsymmetric, atlas.ErrDanglingNeighbor},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := atlas.New(tc.adj)
			require.NoError(t, err)

			err = atlas.Validate(g)
			if len(tc.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func TestValidate_NilGraph(t *testing.T) {
	assert.ErrorIs(t, atlas.Validate(nil), atlas.ErrInvalidAtlas)
}

// Every fixture must satisfy the symmetry invariant: B ∈ N(A) ⇒ A ∈ N(B).
func TestFixtures_Symmetric(t *testing.T) {
	fixtures := map[string]func() (*atlas.Graph, error){
		"path":     func() (*atlas.Graph, error) { return atlas.Path(6) },
		"cycle":    func() (*atlas.Graph, error) { return atlas.Cycle(7) },
		"complete": func() (*atlas.Graph, error) { return atlas.Complete(5) },
		"grid":     func() (*atlas.Graph, error) { return atlas.Grid(3, 4) },
		"diamond":  func() (*atlas.Graph, error) { return atlas.Diamond(), nil },
		"americas": func() (*atlas.Graph, error) {
			a, err := atlas.Americas()
			if err != nil {
				return nil, err
			}
			return a.Graph(), nil
		},
	}

	for name, build := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := build()
			require.NoError(t, err)
			require.NoError(t, atlas.Validate(g))

			for _, a := range g.Nodes() {
				for _, b := range g.Neighbors(a) {
					assert.Truef(t, g.Adjacent(b, a), "%s lists %s but not vice versa", a, b)
				}
			}
		})
	}
}
