// SPDX-License-Identifier: MIT

// Package resolve turns free-form guess text into a canonical atlas.Node.
//
// The game engine only depends on the Resolver interface; Table is the
// reference implementation: a case-insensitive, diacritic-insensitive lookup
// over codes, display names and aliases, with an exclusion list whose names
// never resolve.
//
// Normalization (Normalize):
//
//	"  Côte  d'Ivoire " → "cote d'ivoire"
//
// i.e. trim, collapse inner whitespace, strip combining marks (NFD, drop Mn,
// NFC), then Unicode case-fold.
package resolve

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/borderpath/atlas"
)

// ErrConflict is returned by Table.Add when a name already maps to a
// different node.
var ErrConflict = errors.New("resolve: name maps to two nodes")

// Resolver maps guess text to a node. ok is false when nothing matches.
type Resolver interface {
	Resolve(text string) (n atlas.Node, ok bool)
}

// Func adapts a plain function to the Resolver interface.
type Func func(text string) (atlas.Node, bool)

// Resolve calls f(text).
func (f Func) Resolve(text string) (atlas.Node, bool) { return f(text) }

// Normalize returns the lookup key for text.
func Normalize(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	return cases.Fold().String(stripped)
}

// Table is a name → node index. The zero value is not usable; call NewTable.
// A Table is safe for concurrent Resolve calls once populated.
type Table struct {
	index    map[string]atlas.Node
	excluded map[string]struct{}
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		index:    make(map[string]atlas.Node),
		excluded: make(map[string]struct{}),
	}
}

// Add registers the node's own code and every given name for n.
// Re-adding the same mapping is a no-op; mapping a name to a second node
// returns ErrConflict and leaves the first mapping in place.
func (t *Table) Add(n atlas.Node, names ...string) error {
	var errs []error
	for _, name := range append([]string{string(n)}, names...) {
		key := Normalize(name)
		if key == "" {
			continue
		}
		if prev, ok := t.index[key]; ok && prev != n {
			errs = append(errs, fmt.Errorf("%w: %q → %s and %s", ErrConflict, name, prev, n))
			continue
		}
		t.index[key] = n
	}

	return errors.Join(errs...)
}

// Exclude makes the given names unresolvable, whether or not they are added.
func (t *Table) Exclude(names ...string) {
	for _, name := range names {
		if key := Normalize(name); key != "" {
			t.excluded[key] = struct{}{}
		}
	}
}

// Resolve implements Resolver.
func (t *Table) Resolve(text string) (atlas.Node, bool) {
	key := Normalize(text)
	if key == "" {
		return "", false
	}
	if _, skip := t.excluded[key]; skip {
		return "", false
	}
	n, ok := t.index[key]

	return n, ok
}

// Len returns the number of indexed names.
func (t *Table) Len() int { return len(t.index) }

// FromAtlas indexes every code and name of a. Excluded entities' codes and
// names go to the exclusion list instead. Name clashes between entities are
// returned as ErrConflict alongside the usable table.
func FromAtlas(a *atlas.Atlas) (*Table, error) {
	t := NewTable()
	var errs []error
	for _, n := range a.Graph().Nodes() {
		if a.IsExcluded(n) {
			t.Exclude(append([]string{string(n)}, a.Names(n)...)...)
			continue
		}
		if err := t.Add(n, a.Names(n)...); err != nil {
			errs = append(errs, err)
		}
	}

	return t, errors.Join(errs...)
}
