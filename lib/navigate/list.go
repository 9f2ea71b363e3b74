// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigate

// List tracks a selected index and a scroll offset over a windowed
// list. After every mutation these invariants hold:
//
//	0 ≤ selectedIndex < itemCount        (0 when empty)
//	scrollOffset ≤ selectedIndex < scrollOffset + maxVisible
//	0 ≤ scrollOffset ≤ max(0, itemCount − maxVisible)
type List struct {
	itemCount     int
	maxVisible    int
	selectedIndex int
	scrollOffset  int
}

// NewList returns a List over itemCount items showing at most
// maxVisible at a time. A maxVisible below 1 is clamped to 1.
func NewList(itemCount, maxVisible int) *List {
	list := &List{itemCount: itemCount}
	list.maxVisible = clampMin(maxVisible, 1)
	list.clamp()
	return list
}

// MoveBy moves the selection by delta, wrapping at both ends. A
// no-op on an empty list.
func (list *List) MoveBy(delta int) {
	if list.itemCount == 0 {
		return
	}
	list.selectedIndex = ((list.selectedIndex+delta)%list.itemCount + list.itemCount) % list.itemCount
	list.clamp()
}

// MoveUp moves the selection up one row, wrapping to the bottom.
func (list *List) MoveUp() { list.MoveBy(-1) }

// MoveDown moves the selection down one row, wrapping to the top.
func (list *List) MoveDown() { list.MoveBy(1) }

// JumpTo selects index i, clamped into the valid range.
func (list *List) JumpTo(i int) {
	if list.itemCount == 0 {
		list.selectedIndex = 0
		list.clamp()
		return
	}
	list.selectedIndex = clampRange(i, 0, list.itemCount-1)
	list.clamp()
}

// SetItemCount resizes the list (after filtering, say), keeping the
// selection and scroll where they remain valid.
func (list *List) SetItemCount(n int) {
	list.itemCount = clampMin(n, 0)
	list.clamp()
}

// SetMaxVisible resizes the window, re-clamping the scroll so the
// selection stays visible.
func (list *List) SetMaxVisible(m int) {
	list.maxVisible = clampMin(m, 1)
	list.clamp()
}

// SelectedIndex returns the current selection (0 when empty).
func (list *List) SelectedIndex() int { return list.selectedIndex }

// ScrollOffset returns the index of the first visible row.
func (list *List) ScrollOffset() int { return list.scrollOffset }

// ItemCount returns the current item count.
func (list *List) ItemCount() int { return list.itemCount }

// MaxVisible returns the window size.
func (list *List) MaxVisible() int { return list.maxVisible }

// VisibleBounds returns the half-open visible range
// [scrollOffset, min(scrollOffset+maxVisible, itemCount)).
func (list *List) VisibleBounds() (start, end int) {
	start = list.scrollOffset
	end = list.scrollOffset + list.maxVisible
	if end > list.itemCount {
		end = list.itemCount
	}
	return start, end
}

// OverflowAbove reports whether rows are hidden above the window.
func (list *List) OverflowAbove() bool { return list.scrollOffset > 0 }

// OverflowBelow reports whether rows are hidden below the window.
func (list *List) OverflowBelow() bool {
	_, end := list.VisibleBounds()
	return end < list.itemCount
}

// Window returns the visible sublist of items plus overflow flags.
// items must have exactly the list's item count.
func Window[T any](list *List, items []T) (visible []T, above, below bool) {
	start, end := list.VisibleBounds()
	return items[start:end], list.OverflowAbove(), list.OverflowBelow()
}

// clamp re-establishes the invariants after any mutation: pull the
// selection into range, then scroll the window to contain it, then
// pull the window back into the list.
func (list *List) clamp() {
	if list.itemCount == 0 {
		list.selectedIndex = 0
		list.scrollOffset = 0
		return
	}
	list.selectedIndex = clampRange(list.selectedIndex, 0, list.itemCount-1)

	if list.selectedIndex < list.scrollOffset {
		list.scrollOffset = list.selectedIndex
	}
	if list.selectedIndex >= list.scrollOffset+list.maxVisible {
		list.scrollOffset = list.selectedIndex - list.maxVisible + 1
	}

	maxOffset := list.itemCount - list.maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	list.scrollOffset = clampRange(list.scrollOffset, 0, maxOffset)
}

func clampMin(value, minimum int) int {
	if value < minimum {
		return minimum
	}
	return value
}

func clampRange(value, minimum, maximum int) int {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
