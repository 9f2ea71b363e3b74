// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binding maps key events to prompt actions. A [Set] is an
// ordered list of predicate→action pairs dispatched first-match-wins;
// sets compose by concatenation, so a widget builds its behavior from
// small recipe sets (navigation, toggling, confirm/cancel) with the
// earlier set taking priority on conflicts.
package binding

import "github.com/bureau-foundation/promptline/lib/key"

// Outcome is the result of dispatching one key event.
type Outcome int

const (
	// Ignored: no binding handled the event. The prompt loop redraws
	// and keeps reading.
	Ignored Outcome = iota

	// Handled: a binding mutated prompt state. The loop redraws and
	// keeps reading. Handled and Ignored currently drive the same
	// unconditional redraw; the distinction is kept so a future
	// diffed renderer can skip redraws on Ignored.
	Handled

	// Confirmed: the prompt finished successfully.
	Confirmed

	// Cancelled: the prompt was dismissed. A normal, silent outcome,
	// never an error.
	Cancelled
)

// Binding pairs an event predicate with an action. Pure value: a
// binding is built once per prompt invocation and never mutated.
type Binding struct {
	// Match decides whether this binding claims the event. Char-type
	// predicates built with [OnChar] also filter on the character
	// payload.
	Match func(key.Event) bool

	// Do runs the action and reports how the event was consumed.
	// Returning Ignored passes the event to the next binding in the
	// set.
	Do func(key.Event) Outcome

	// HintKey and HintText describe the binding in the prompt's hint
	// bar (e.g. "↑↓" / "move"). Bindings with an empty HintKey are
	// omitted from hints.
	HintKey  string
	HintText string
}

// Set is an ordered, immutable sequence of bindings. Earlier entries
// take priority.
type Set []Binding

// Dispatch evaluates bindings in order and runs the first whose
// predicate matches. An action returning Ignored yields to the next
// binding; with no match at all the overall result is Ignored.
func (set Set) Dispatch(event key.Event) Outcome {
	for _, b := range set {
		if b.Match == nil || !b.Match(event) {
			continue
		}
		if outcome := b.Do(event); outcome != Ignored {
			return outcome
		}
	}
	return Ignored
}

// Merge concatenates binding sets, preserving the priority order of
// the receiver and then of each argument in turn.
func (set Set) Merge(others ...Set) Set {
	merged := make(Set, 0, len(set))
	merged = append(merged, set...)
	for _, other := range others {
		merged = append(merged, other...)
	}
	return merged
}

// On matches any event of the given type.
func On(t key.Type) func(key.Event) bool {
	return func(event key.Event) bool { return event.Type == t }
}

// OnAny matches events of any of the given types.
func OnAny(types ...key.Type) func(key.Event) bool {
	return func(event key.Event) bool {
		for _, t := range types {
			if event.Type == t {
				return true
			}
		}
		return false
	}
}

// OnChar matches Char events carrying one of the given characters:
// the character-level filter applied on top of the type match.
func OnChar(characters ...rune) func(key.Event) bool {
	return func(event key.Event) bool {
		if event.Type != key.Char {
			return false
		}
		for _, character := range characters {
			if event.Char == character {
				return true
			}
		}
		return false
	}
}

// Do wraps a plain state mutation as a Handled action.
func Do(action func()) func(key.Event) Outcome {
	return func(key.Event) Outcome {
		action()
		return Handled
	}
}
