// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: Atlas documents: decoding, schema validation, graph validation.
//
// Policy:
//   - Any failure is fatal for the document (ErrInvalidAtlas wraps it).
//   - yaml.v3 decodes both YAML and JSON input (JSON is a YAML subset).
//   - KnownFields is on: a misspelled key is an error, not a silent default.

package atlas

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/americas.yaml
var americasYAML []byte

// Document is the on-disk shape of an atlas.
type Document struct {
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Entities []Entity `yaml:"entities" json:"entities" validate:"required,min=1,dive"`
}

// Entity is one political entity in a Document.
type Entity struct {
	// Code is the canonical node id.
	Code string `yaml:"code" json:"code" validate:"required,alphanum,uppercase,max=8"`
	// Names holds display name first, then aliases.
	Names []string `yaml:"names" json:"names" validate:"dive,required"`
	// Borders lists neighbor codes; order is the enumeration tie-break.
	Borders []string `yaml:"borders" json:"borders" validate:"dive,required"`
	// Excluded entities stay in the graph but never start or end a puzzle
	// and never resolve from a guess.
	Excluded bool `yaml:"excluded" json:"excluded"`
}

// Atlas is a validated Graph plus the naming data that goes with it.
type Atlas struct {
	name     string
	graph    *Graph
	names    map[Node][]string
	excluded *NodeSet
}

var docValidate = validator.New(validator.WithRequiredStructEnabled())

// Load decodes and validates an atlas document from r.
func Load(r io.Reader) (*Atlas, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidAtlas)
		}
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidAtlas, err)
	}

	return FromDocument(doc)
}

// LoadFile reads and validates the atlas stored at path.
func LoadFile(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// FromDocument validates doc and builds its Atlas.
func FromDocument(doc Document) (*Atlas, error) {
	if err := docValidate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrInvalidAtlas, err)
	}

	adj := make(map[Node][]Node, len(doc.Entities))
	a := &Atlas{
		name:     doc.Name,
		names:    make(map[Node][]string, len(doc.Entities)),
		excluded: NewNodeSet(),
	}
	for _, e := range doc.Entities {
		code := Node(e.Code)
		if _, dup := adj[code]; dup {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidAtlas, ErrDuplicateNode, code)
		}
		nbrs := make([]Node, len(e.Borders))
		for i, b := range e.Borders {
			nbrs[i] = Node(b)
		}
		adj[code] = nbrs
		a.names[code] = slices.Clone(e.Names)
		if e.Excluded {
			a.excluded.Add(code)
		}
	}

	g, err := New(adj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAtlas, err)
	}
	if err = Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAtlas, err)
	}
	a.graph = g

	return a, nil
}

var americas = sync.OnceValues(func() (*Atlas, error) {
	return Load(bytes.NewReader(americasYAML))
})

// Americas returns the embedded demo atlas of North, Central and South
// America. The same immutable value is returned on every call.
func Americas() (*Atlas, error) {
	return americas()
}

// Name returns the document name.
func (a *Atlas) Name() string { return a.name }

// Graph returns the validated adjacency graph.
func (a *Atlas) Graph() *Graph { return a.graph }

// Names returns the display name and aliases of n, display name first.
func (a *Atlas) Names(n Node) []string { return slices.Clone(a.names[n]) }

// DisplayName returns the first name of n, or its code when it has none.
func (a *Atlas) DisplayName(n Node) string {
	if names := a.names[n]; len(names) > 0 {
		return names[0]
	}
	return string(n)
}

// Excluded returns the excluded codes in declaration order.
func (a *Atlas) Excluded() []Node { return a.excluded.Slice() }

// IsExcluded reports whether n is marked excluded.
func (a *Atlas) IsExcluded(n Node) bool { return a.excluded.Has(n) }

// Eligible returns the puzzle endpoint candidates: nodes with at least one
// border that are not excluded by the atlas or by extra.
func (a *Atlas) Eligible(extra ...Node) []Node {
	return a.graph.Eligible(append(a.excluded.Slice(), extra...)...)
}
