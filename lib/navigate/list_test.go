// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigate

import "testing"

// checkListInvariants asserts the three window invariants that must
// hold after every mutation.
func checkListInvariants(t *testing.T, list *List) {
	t.Helper()
	selected := list.SelectedIndex()
	offset := list.ScrollOffset()
	count := list.ItemCount()
	visible := list.MaxVisible()

	if count == 0 {
		if selected != 0 || offset != 0 {
			t.Fatalf("empty list must sit at (0,0), got selected=%d offset=%d", selected, offset)
		}
		return
	}
	if selected < 0 || selected >= count {
		t.Fatalf("selected index %d out of range [0,%d)", selected, count)
	}
	if selected < offset || selected >= offset+visible {
		t.Fatalf("selected %d outside window [%d,%d)", selected, offset, offset+visible)
	}
	maxOffset := count - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 || offset > maxOffset {
		t.Fatalf("scroll offset %d out of range [0,%d]", offset, maxOffset)
	}
}

func TestMoveByPreservesInvariants(t *testing.T) {
	list := NewList(7, 3)
	deltas := []int{1, 1, 1, -5, 12, -1, -1, 3, 100, -99, 7, -7, 2}
	for _, delta := range deltas {
		list.MoveBy(delta)
		checkListInvariants(t, list)
	}
}

func TestMoveDownScrollScenario(t *testing.T) {
	// Five items, window of three: four MoveDowns from the top land
	// on the last item with the window scrolled to show rows 2..4.
	list := NewList(5, 3)
	for range 4 {
		list.MoveDown()
	}
	if list.SelectedIndex() != 4 {
		t.Errorf("expected selected index 4, got %d", list.SelectedIndex())
	}
	if list.ScrollOffset() != 2 {
		t.Errorf("expected scroll offset 2, got %d", list.ScrollOffset())
	}
}

func TestMoveByWrapsBothWays(t *testing.T) {
	list := NewList(5, 3)

	list.MoveUp()
	if list.SelectedIndex() != 4 {
		t.Errorf("expected wrap from 0 to 4, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)

	list.MoveDown()
	if list.SelectedIndex() != 0 {
		t.Errorf("expected wrap from 4 to 0, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)
}

func TestMoveByOnEmptyListIsNoop(t *testing.T) {
	list := NewList(0, 3)
	list.MoveBy(1)
	list.MoveBy(-1)
	checkListInvariants(t, list)
}

func TestJumpToClamps(t *testing.T) {
	list := NewList(10, 4)

	list.JumpTo(99)
	if list.SelectedIndex() != 9 {
		t.Errorf("expected clamp to 9, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)

	list.JumpTo(-5)
	if list.SelectedIndex() != 0 {
		t.Errorf("expected clamp to 0, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)
}

func TestSetItemCountReclamps(t *testing.T) {
	list := NewList(10, 4)
	list.JumpTo(9)

	// Shrinking below the selection pulls it back into range.
	list.SetItemCount(5)
	if list.SelectedIndex() != 4 {
		t.Errorf("expected selection clamped to 4, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)

	// Growing keeps the relative position.
	list.JumpTo(2)
	list.SetItemCount(20)
	if list.SelectedIndex() != 2 {
		t.Errorf("expected selection kept at 2, got %d", list.SelectedIndex())
	}
	checkListInvariants(t, list)

	list.SetItemCount(0)
	checkListInvariants(t, list)
}

func TestSetMaxVisibleReclamps(t *testing.T) {
	list := NewList(10, 5)
	list.JumpTo(7)

	list.SetMaxVisible(2)
	checkListInvariants(t, list)
	if list.SelectedIndex() != 7 {
		t.Errorf("window resize must not move the selection, got %d", list.SelectedIndex())
	}

	list.SetMaxVisible(20)
	checkListInvariants(t, list)
	if list.ScrollOffset() != 0 {
		t.Errorf("window larger than list must scroll to 0, got %d", list.ScrollOffset())
	}
}

func TestVisibleWindowAndOverflow(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	list := NewList(5, 3)

	visible, above, below := Window(list, items)
	if len(visible) != 3 || visible[0] != "a" {
		t.Fatalf("expected window [a b c], got %v", visible)
	}
	if above {
		t.Error("no overflow above at the top")
	}
	if !below {
		t.Error("expected overflow below at the top")
	}

	list.JumpTo(4)
	visible, above, below = Window(list, items)
	if len(visible) != 3 || visible[0] != "c" {
		t.Fatalf("expected window [c d e], got %v", visible)
	}
	if !above {
		t.Error("expected overflow above at the bottom")
	}
	if below {
		t.Error("no overflow below at the bottom")
	}
}

func TestWindowSmallerThanMaxVisible(t *testing.T) {
	items := []string{"a", "b"}
	list := NewList(2, 5)
	visible, above, below := Window(list, items)
	if len(visible) != 2 {
		t.Errorf("expected full list visible, got %v", visible)
	}
	if above || below {
		t.Error("no overflow when everything fits")
	}
}
