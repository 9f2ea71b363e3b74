// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigate

// Focus cycles a focused index through a flat set with no viewport:
// the degenerate navigator for widgets whose options are all always
// visible (confirm buttons, short horizontal choices).
type Focus struct {
	itemCount    int
	focusedIndex int
}

// NewFocus returns a Focus over itemCount items.
func NewFocus(itemCount int) *Focus {
	return &Focus{itemCount: clampMin(itemCount, 0)}
}

// Next advances the focus, wrapping to the first item.
func (focus *Focus) Next() {
	if focus.itemCount == 0 {
		return
	}
	focus.focusedIndex = (focus.focusedIndex + 1) % focus.itemCount
}

// Prev retreats the focus, wrapping to the last item.
func (focus *Focus) Prev() {
	if focus.itemCount == 0 {
		return
	}
	focus.focusedIndex = (focus.focusedIndex - 1 + focus.itemCount) % focus.itemCount
}

// JumpTo focuses index i, clamped into the valid range.
func (focus *Focus) JumpTo(i int) {
	if focus.itemCount == 0 {
		focus.focusedIndex = 0
		return
	}
	focus.focusedIndex = clampRange(i, 0, focus.itemCount-1)
}

// FocusedIndex returns the focused index (0 when empty).
func (focus *Focus) FocusedIndex() int { return focus.focusedIndex }

// ItemCount returns the item count.
func (focus *Focus) ItemCount() int { return focus.itemCount }
