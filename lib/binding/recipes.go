// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/selection"
)

// Recipe builders: the navigate/toggle/confirm/cancel key sets that
// every widget needs, factored here so call sites compose them
// instead of re-deriving the same bindings per widget.

// ListNavigation binds up/down arrows (and Ctrl+E/Ctrl+D as
// emacs-style alternates) to wrap-around movement on a list.
func ListNavigation(list *navigate.List) Set {
	return Set{
		{
			Match:    OnAny(key.ArrowUp, key.CtrlE),
			Do:       Do(list.MoveUp),
			HintKey:  "↑↓",
			HintText: "move",
		},
		{
			Match: OnAny(key.ArrowDown, key.CtrlD),
			Do:    Do(list.MoveDown),
		},
	}
}

// GridNavigation binds all four arrows to grid movement.
func GridNavigation(grid *navigate.Grid) Set {
	return Set{
		{
			Match:    On(key.ArrowUp),
			Do:       Do(grid.MoveUp),
			HintKey:  "↑↓←→",
			HintText: "move",
		},
		{Match: On(key.ArrowDown), Do: Do(grid.MoveDown)},
		{Match: On(key.ArrowLeft), Do: Do(grid.MoveLeft)},
		{Match: On(key.ArrowRight), Do: Do(grid.MoveRight)},
	}
}

// FocusCycle binds tab/right to the next item and left to the
// previous, for flat always-visible option sets.
func FocusCycle(focus *navigate.Focus) Set {
	return Set{
		{
			Match:    OnAny(key.Tab, key.ArrowRight),
			Do:       Do(focus.Next),
			HintKey:  "tab",
			HintText: "switch",
		},
		{Match: On(key.ArrowLeft), Do: Do(focus.Prev)},
	}
}

// Toggle binds space to toggling the focused item. focused is
// evaluated at press time so the binding follows the navigator.
func Toggle(controller *selection.Controller, focused func() int) Set {
	return Set{
		{
			Match:    On(key.Space),
			Do:       Do(func() { controller.Toggle(focused()) }),
			HintKey:  "space",
			HintText: "toggle",
		},
	}
}

// SelectionBulk binds a/i/ctrl+a to select-all, invert, and
// toggle-all over count items. count is evaluated at press time so
// the bindings track a filtered list.
func SelectionBulk(controller *selection.Controller, count func() int) Set {
	return Set{
		{
			Match:    OnChar('a'),
			Do:       Do(func() { controller.SelectAll(count()) }),
			HintKey:  "a",
			HintText: "all",
		},
		{
			Match:    OnChar('i'),
			Do:       Do(func() { controller.Invert(count()) }),
			HintKey:  "i",
			HintText: "invert",
		},
		{
			Match: func(event key.Event) bool {
				return event.Type == key.CtrlGeneric && event.Char == 'a'
			},
			Do: Do(func() { controller.ToggleAll(count()) }),
		},
	}
}

// ConfirmCancel binds enter to Confirmed and esc/ctrl+c to
// Cancelled. Nearly every prompt merges this set last.
func ConfirmCancel() Set {
	return Set{
		{
			Match:    On(key.Enter),
			Do:       func(key.Event) Outcome { return Confirmed },
			HintKey:  "enter",
			HintText: "confirm",
		},
		{
			Match:    OnAny(key.Esc, key.CtrlC),
			Do:       func(key.Event) Outcome { return Cancelled },
			HintKey:  "esc",
			HintText: "cancel",
		},
	}
}
