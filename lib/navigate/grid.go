// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigate

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Grid tracks a focused flat index over items laid out in columns,
// row-major. The last row may be partially filled; every movement
// keeps the invariant 0 ≤ focusedIndex < itemCount.
type Grid struct {
	itemCount    int
	columns      int
	focusedIndex int
}

// NewGrid returns a Grid over itemCount items in the given number of
// columns. Columns below 1 are clamped to 1.
func NewGrid(itemCount, columns int) *Grid {
	return &Grid{
		itemCount: clampMin(itemCount, 0),
		columns:   clampMin(columns, 1),
	}
}

// Rows returns ceil(itemCount / columns).
func (grid *Grid) Rows() int {
	return (grid.itemCount + grid.columns - 1) / grid.columns
}

// Columns returns the column count.
func (grid *Grid) Columns() int { return grid.columns }

// ItemCount returns the item count.
func (grid *Grid) ItemCount() int { return grid.itemCount }

// FocusedIndex returns the focused flat index (0 when empty).
func (grid *Grid) FocusedIndex() int { return grid.focusedIndex }

// JumpTo focuses index i, clamped into the valid range.
func (grid *Grid) JumpTo(i int) {
	if grid.itemCount == 0 {
		grid.focusedIndex = 0
		return
	}
	grid.focusedIndex = clampRange(i, 0, grid.itemCount-1)
}

// SetItemCount resizes the grid, clamping the focus.
func (grid *Grid) SetItemCount(n int) {
	grid.itemCount = clampMin(n, 0)
	grid.JumpTo(grid.focusedIndex)
}

// MoveRight advances the focus through the flat sequence, wrapping
// from the last item to the first. Movement is not confined to the
// current row: walking right visits every item in order.
func (grid *Grid) MoveRight() {
	if grid.itemCount == 0 {
		return
	}
	grid.focusedIndex = (grid.focusedIndex + 1) % grid.itemCount
}

// MoveLeft is the exact inverse of MoveRight.
func (grid *Grid) MoveLeft() {
	if grid.itemCount == 0 {
		return
	}
	grid.focusedIndex = (grid.focusedIndex - 1 + grid.itemCount) % grid.itemCount
}

// MoveUp moves the focus to the nearest row above (wrapping past the
// top) that has an item in the current column.
func (grid *Grid) MoveUp() { grid.moveVertical(-1) }

// MoveDown moves the focus to the nearest row below (wrapping past
// the bottom) that has an item in the current column.
func (grid *Grid) MoveDown() { grid.moveVertical(1) }

// moveVertical scans rows in the given direction for one with a
// valid item at the current column. The last row may be partial, so
// a column can be absent from it; skipped rows wrap around. The scan
// always terminates: after rows steps it is back at the starting
// row, whose item is valid by the focus invariant.
func (grid *Grid) moveVertical(direction int) {
	if grid.itemCount == 0 {
		return
	}
	rows := grid.Rows()
	column := grid.focusedIndex % grid.columns
	row := grid.focusedIndex / grid.columns

	for step := 1; step <= rows; step++ {
		candidateRow := ((row+direction*step)%rows + rows) % rows
		candidate := candidateRow*grid.columns + column
		if candidate < grid.itemCount {
			grid.focusedIndex = candidate
			return
		}
	}
}

// FitColumns computes how many cells of cellWidth, separated by
// separatorWidth, fit in availableWidth: at least 1, at most
// itemCount, and at most maxColumns when maxColumns > 0.
func FitColumns(itemCount, availableWidth, cellWidth, separatorWidth, maxColumns int) int {
	if itemCount <= 0 {
		return 1
	}
	columns := 1
	if cellWidth > 0 {
		columns = (availableWidth + separatorWidth) / (cellWidth + separatorWidth)
	}
	columns = clampMin(columns, 1)
	if maxColumns > 0 && columns > maxColumns {
		columns = maxColumns
	}
	if columns > itemCount {
		columns = itemCount
	}
	return columns
}

// BalancedColumns is FitColumns additionally capped at
// ceil(sqrt(itemCount)), producing a roughly square layout when
// width allows.
func BalancedColumns(itemCount, availableWidth, cellWidth, separatorWidth, maxColumns int) int {
	columns := FitColumns(itemCount, availableWidth, cellWidth, separatorWidth, maxColumns)
	if itemCount <= 0 {
		return columns
	}
	target := int(math.Ceil(math.Sqrt(float64(itemCount))))
	if columns > target {
		columns = target
	}
	return columns
}

// CellWidth returns the display width of the widest label, the cell
// width a uniform grid of these labels needs.
func CellWidth(labels []string) int {
	widest := 0
	for _, label := range labels {
		if width := runewidth.StringWidth(label); width > widest {
			widest = width
		}
	}
	return widest
}

// NewResponsiveGrid lays labels out in as many columns as fit the
// available width, using the widest label as the uniform cell width.
func NewResponsiveGrid(labels []string, availableWidth, separatorWidth, maxColumns int) *Grid {
	columns := FitColumns(len(labels), availableWidth, CellWidth(labels), separatorWidth, maxColumns)
	return NewGrid(len(labels), columns)
}

// NewBalancedGrid is NewResponsiveGrid with the column count capped
// near the square root of the item count.
func NewBalancedGrid(labels []string, availableWidth, separatorWidth, maxColumns int) *Grid {
	columns := BalancedColumns(len(labels), availableWidth, CellWidth(labels), separatorWidth, maxColumns)
	return NewGrid(len(labels), columns)
}
