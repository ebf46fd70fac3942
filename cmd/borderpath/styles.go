// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/borderpath/atlas"
	"github.com/katalvlaran/borderpath/pathfind"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	pathStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

// namedPath renders p with display names.
func namedPath(at *atlas.Atlas, p pathfind.Path) string {
	names := make([]string, len(p))
	for i, n := range p {
		names[i] = at.DisplayName(n)
	}
	return strings.Join(names, " → ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
