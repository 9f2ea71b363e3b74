// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigate

import "testing"

func TestFocusCycles(t *testing.T) {
	focus := NewFocus(3)

	focus.Next()
	focus.Next()
	if focus.FocusedIndex() != 2 {
		t.Errorf("expected focus 2, got %d", focus.FocusedIndex())
	}

	focus.Next()
	if focus.FocusedIndex() != 0 {
		t.Errorf("expected wrap to 0, got %d", focus.FocusedIndex())
	}

	focus.Prev()
	if focus.FocusedIndex() != 2 {
		t.Errorf("expected wrap back to 2, got %d", focus.FocusedIndex())
	}
}

func TestFocusJumpToClamps(t *testing.T) {
	focus := NewFocus(2)
	focus.JumpTo(7)
	if focus.FocusedIndex() != 1 {
		t.Errorf("expected clamp to 1, got %d", focus.FocusedIndex())
	}
	focus.JumpTo(-1)
	if focus.FocusedIndex() != 0 {
		t.Errorf("expected clamp to 0, got %d", focus.FocusedIndex())
	}
}

func TestFocusEmptyIsNoop(t *testing.T) {
	focus := NewFocus(0)
	focus.Next()
	focus.Prev()
	if focus.FocusedIndex() != 0 {
		t.Errorf("empty focus must stay 0, got %d", focus.FocusedIndex())
	}
}
