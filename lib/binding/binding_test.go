// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/selection"
)

func TestDispatchFirstMatchWins(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	set := Set{
		{
			Match: func(key.Event) bool { return true },
			Do: func(key.Event) Outcome {
				firstCalls++
				return Handled
			},
		},
		{
			Match: func(key.Event) bool { return true },
			Do: func(key.Event) Outcome {
				secondCalls++
				return Handled
			},
		},
	}

	for range 3 {
		set.Dispatch(key.Event{Type: key.Enter})
	}

	if firstCalls != 3 {
		t.Errorf("expected first binding invoked 3 times, got %d", firstCalls)
	}
	if secondCalls != 0 {
		t.Errorf("shadowed binding must never run, got %d calls", secondCalls)
	}
}

func TestDispatchIgnoredActionFallsThrough(t *testing.T) {
	set := Set{
		{
			Match: func(key.Event) bool { return true },
			Do:    func(key.Event) Outcome { return Ignored },
		},
		{
			Match: On(key.Enter),
			Do:    func(key.Event) Outcome { return Confirmed },
		},
	}

	if outcome := set.Dispatch(key.Event{Type: key.Enter}); outcome != Confirmed {
		t.Errorf("expected fall-through to Confirmed, got %v", outcome)
	}
}

func TestDispatchNoMatchIsIgnored(t *testing.T) {
	set := Set{
		{Match: On(key.Space), Do: func(key.Event) Outcome { return Handled }},
	}
	if outcome := set.Dispatch(key.Event{Type: key.Tab}); outcome != Ignored {
		t.Errorf("expected Ignored with no matching binding, got %v", outcome)
	}
}

func TestOnCharFiltersCharacter(t *testing.T) {
	match := OnChar('y', 'Y')

	if !match(key.Event{Type: key.Char, Char: 'y'}) {
		t.Error("expected 'y' to match")
	}
	if !match(key.Event{Type: key.Char, Char: 'Y'}) {
		t.Error("expected 'Y' to match")
	}
	if match(key.Event{Type: key.Char, Char: 'n'}) {
		t.Error("expected 'n' rejected by character filter")
	}
	if match(key.Event{Type: key.CtrlGeneric, Char: 'y'}) {
		t.Error("expected non-Char event rejected despite matching payload")
	}
}

func TestMergePreservesLeftPriority(t *testing.T) {
	var order []string
	claim := func(name string, outcome Outcome) Set {
		return Set{{
			Match: func(key.Event) bool { return true },
			Do: func(key.Event) Outcome {
				order = append(order, name)
				return outcome
			},
		}}
	}

	merged := claim("left", Ignored).Merge(claim("middle", Ignored), claim("right", Handled))
	merged.Dispatch(key.Event{Type: key.Enter})

	if strings.Join(order, ",") != "left,middle,right" {
		t.Errorf("expected left-to-right evaluation, got %v", order)
	}

	// Merge must not mutate the receiver.
	base := claim("base", Handled)
	base.Merge(claim("extra", Handled))
	if len(base) != 1 {
		t.Errorf("merge mutated the receiver: %d bindings", len(base))
	}
}

func TestConfirmCancelRecipe(t *testing.T) {
	set := ConfirmCancel()

	if outcome := set.Dispatch(key.Event{Type: key.Enter}); outcome != Confirmed {
		t.Errorf("expected Confirmed on enter, got %v", outcome)
	}
	if outcome := set.Dispatch(key.Event{Type: key.Esc}); outcome != Cancelled {
		t.Errorf("expected Cancelled on esc, got %v", outcome)
	}
	if outcome := set.Dispatch(key.Event{Type: key.CtrlC}); outcome != Cancelled {
		t.Errorf("expected Cancelled on ctrl+c, got %v", outcome)
	}
}

func TestListNavigationRecipe(t *testing.T) {
	list := navigate.NewList(5, 3)
	set := ListNavigation(list)

	set.Dispatch(key.Event{Type: key.ArrowDown})
	set.Dispatch(key.Event{Type: key.ArrowDown})
	set.Dispatch(key.Event{Type: key.ArrowUp})

	if list.SelectedIndex() != 1 {
		t.Errorf("expected selection at 1 after down/down/up, got %d", list.SelectedIndex())
	}
}

func TestToggleRecipeFollowsFocus(t *testing.T) {
	list := navigate.NewList(5, 5)
	controller := selection.Multi()
	set := Toggle(controller, list.SelectedIndex).Merge(ListNavigation(list))

	set.Dispatch(key.Event{Type: key.Space})
	set.Dispatch(key.Event{Type: key.ArrowDown})
	set.Dispatch(key.Event{Type: key.Space})

	if !controller.IsSelected(0) || !controller.IsSelected(1) {
		t.Errorf("expected indices 0 and 1 selected, got %v", controller.Indices())
	}
}

func TestHintsSkipUnlabeledBindings(t *testing.T) {
	set := Set{
		{HintKey: "↑↓", HintText: "move"},
		{HintKey: "", HintText: "hidden"},
		{HintKey: "esc", HintText: "cancel"},
	}

	hints := set.Hints()
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d", len(hints))
	}
	if hints[0].Key != "↑↓" || hints[1].Key != "esc" {
		t.Errorf("hints out of order: %v", hints)
	}
}
