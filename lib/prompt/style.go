// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Widget chrome shared across the prompts. Fixed styling, not a
// theming system: widgets that want a different look render their own
// frames against the loop directly.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	matchStyle    = lipgloss.NewStyle().Underline(true)
	selectedGlyph = "[x]"
	clearedGlyph  = "[ ]"
)

const focusMarker = "❯ "
const plainMarker = "  "

// highlightMatches re-renders label with the runes at the given
// positions underlined. Positions are rune indices as produced by the
// ranking matchers.
func highlightMatches(label string, positions []int) string {
	if len(positions) == 0 {
		return label
	}
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}
	var out strings.Builder
	for i, r := range []rune(label) {
		if matched[i] {
			out.WriteString(matchStyle.Render(string(r)))
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
