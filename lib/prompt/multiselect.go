// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/selection"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// MultiSelect prompts for any number of options from a scrolling
// checkbox list. Space toggles the focused option, "a" selects all,
// "i" inverts, tab toggles all. Confirming with nothing checked
// yields the focused option, so enter-enter-enter through a
// multi-select still picks something.
type MultiSelect struct {
	// Terminal to run on. Nil means the process terminal.
	Terminal terminal.Terminal

	// Title is printed above the list.
	Title string

	// Options are the selectable labels. Must be non-empty.
	Options []string

	// Preselected marks option indices as checked before the prompt
	// starts. Out-of-range indices are ignored.
	Preselected []int

	// MaxVisible caps the rows shown at once. Zero means 7.
	MaxVisible int

	// ClearOnExit erases the prompt once it resolves.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's disambiguation delay.
	EscapeDelay time.Duration
}

// Run resolves the prompt. ok is false on cancellation; a confirmed
// empty selection falls back to the focused option and is never
// empty.
func (multi *MultiSelect) Run() ([]string, bool, error) {
	if len(multi.Options) == 0 {
		return nil, false, fmt.Errorf("multiselect %q: no options", multi.Title)
	}
	maxVisible := multi.MaxVisible
	if maxVisible <= 0 {
		maxVisible = 7
	}

	list := navigate.NewList(len(multi.Options), maxVisible)
	controller := selection.Multi()
	for _, index := range multi.Preselected {
		if index >= 0 && index < len(multi.Options) {
			controller.Toggle(index)
		}
	}

	count := func() int { return len(multi.Options) }
	toggleAll := binding.Set{
		{
			Match:    binding.On(key.Tab),
			Do:       binding.Do(func() { controller.ToggleAll(count()) }),
			HintKey:  "tab",
			HintText: "all",
		},
	}

	bindings := binding.ListNavigation(list).
		Merge(
			binding.Toggle(controller, list.SelectedIndex),
			binding.SelectionBulk(controller, count),
			toggleAll,
			binding.ConfirmCancel(),
		)
	hints := bindings.Hints()

	draw := func(surface *render.Surface) {
		surface.Writeln(titleStyle.Render(multi.Title))
		start, end := list.VisibleBounds()
		if list.OverflowAbove() {
			surface.Writeln(dimStyle.Render("  ↑ more"))
		}
		for row := start; row < end; row++ {
			glyph := clearedGlyph
			if controller.IsSelected(row) {
				glyph = markerStyle.Render(selectedGlyph)
			}
			line := glyph + " " + multi.Options[row]
			if row == list.SelectedIndex() {
				surface.Writeln(markerStyle.Render(focusMarker) + focusStyle.Render(line))
			} else {
				surface.Writeln(plainMarker + line)
			}
		}
		if list.OverflowBelow() {
			surface.Writeln(dimStyle.Render("  ↓ more"))
		}
		surface.Writeln(binding.FormatHints(hints, surface.Terminal().Columns()))
	}

	loop := Loop{
		Terminal:    multi.Terminal,
		HideCursor:  true,
		ClearOnExit: multi.ClearOnExit,
		EscapeDelay: multi.EscapeDelay,
	}
	outcome, err := loop.Run(draw, bindings)
	if err != nil {
		return nil, false, err
	}
	if outcome != binding.Confirmed {
		return nil, false, nil
	}
	return selection.SelectedItems(controller, multi.Options, list.SelectedIndex()), true, nil
}
