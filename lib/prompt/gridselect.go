// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// GridSelect prompts for one option laid out in a two-dimensional
// grid. Column count adapts to the terminal width; arrows move with
// horizontal wrap-around across the flat sequence and vertical moves
// that keep their column.
type GridSelect struct {
	// Terminal to run on. Nil means the process terminal.
	Terminal terminal.Terminal

	// Title is printed above the grid.
	Title string

	// Options are the selectable labels. Must be non-empty.
	Options []string

	// MaxColumns caps the column count. Zero means no cap beyond
	// what fits the terminal width.
	MaxColumns int

	// Balanced targets a roughly square grid instead of packing as
	// many columns as fit.
	Balanced bool

	// ClearOnExit erases the prompt once it resolves.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's disambiguation delay.
	EscapeDelay time.Duration
}

// gridSeparatorWidth is the gap between grid cells, matching the
// two-space separator the renderer emits.
const gridSeparatorWidth = 2

// Run resolves the prompt. ok is false on cancellation.
func (grid *GridSelect) Run() (string, bool, error) {
	if len(grid.Options) == 0 {
		return "", false, fmt.Errorf("gridselect %q: no options", grid.Title)
	}

	t := grid.Terminal
	if t == nil {
		t = terminal.System()
	}

	// The focus marker occupies two columns in front of every cell.
	available := t.Columns() - runewidth.StringWidth(focusMarker)
	var navigator *navigate.Grid
	if grid.Balanced {
		navigator = navigate.NewBalancedGrid(grid.Options, available, gridSeparatorWidth, grid.MaxColumns)
	} else {
		navigator = navigate.NewResponsiveGrid(grid.Options, available, gridSeparatorWidth, grid.MaxColumns)
	}
	cellWidth := navigate.CellWidth(grid.Options)

	bindings := binding.GridNavigation(navigator).Merge(binding.ConfirmCancel())
	hints := bindings.Hints()

	draw := func(surface *render.Surface) {
		surface.Writeln(titleStyle.Render(grid.Title))
		columns := navigator.Columns()
		for row := 0; row < navigator.Rows(); row++ {
			var cells []string
			for column := 0; column < columns; column++ {
				index := row*columns + column
				if index >= len(grid.Options) {
					break
				}
				label := runewidth.FillRight(grid.Options[index], cellWidth)
				if index == navigator.FocusedIndex() {
					cells = append(cells, markerStyle.Render(focusMarker)+focusStyle.Render(label))
				} else {
					cells = append(cells, plainMarker+label)
				}
			}
			surface.Writeln(strings.Join(cells, strings.Repeat(" ", gridSeparatorWidth)))
		}
		surface.Writeln(binding.FormatHints(hints, surface.Terminal().Columns()))
	}

	loop := Loop{
		Terminal:    grid.Terminal,
		HideCursor:  true,
		ClearOnExit: grid.ClearOnExit,
		EscapeDelay: grid.EscapeDelay,
	}
	outcome, err := loop.Run(draw, bindings)
	if err != nil {
		return "", false, err
	}
	if outcome != binding.Confirmed {
		return "", false, nil
	}
	return grid.Options[navigator.FocusedIndex()], true, nil
}
