// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Hint is the displayable description of one binding.
type Hint struct {
	Key  string
	Text string
}

// Hints collects the hints of the set, in binding order, skipping
// bindings without a HintKey.
func (set Set) Hints() []Hint {
	var hints []Hint
	for _, b := range set {
		if b.HintKey == "" {
			continue
		}
		hints = append(hints, Hint{Key: b.HintKey, Text: b.HintText})
	}
	return hints
}

var (
	hintKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// FormatHints renders hints as a single dim line ("↑↓ move · enter
// confirm · esc cancel"), truncated to width columns. A free-standing
// formatting helper rather than a method of the prompt loop, so
// widgets that lay out their own footer can reuse or replace it.
func FormatHints(hints []Hint, width int) string {
	var parts []string
	for _, hint := range hints {
		part := hintKeyStyle.Render(hint.Key)
		if hint.Text != "" {
			part += " " + hintTextStyle.Render(hint.Text)
		}
		parts = append(parts, part)
	}
	line := strings.Join(parts, hintTextStyle.Render(" · "))
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
