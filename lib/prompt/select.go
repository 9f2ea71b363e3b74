// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/ranking"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Select prompts for one option from a scrolling list. Pressing "/"
// opens a search line that fuzzy-filters the options as the user
// types; enter confirms the focused (possibly filtered) option.
type Select struct {
	// Terminal to run on. Nil means the process terminal.
	Terminal terminal.Terminal

	// Title is printed above the list.
	Title string

	// Options are the selectable labels. Must be non-empty.
	Options []string

	// MaxVisible caps the rows shown at once. Zero means 7.
	MaxVisible int

	// ClearOnExit erases the prompt once it resolves.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's disambiguation delay.
	EscapeDelay time.Duration
}

// selectState is the per-invocation mutable state shared by the
// bindings and the renderer through closures.
type selectState struct {
	query     []rune
	searching bool

	// matches maps visible rows to option indices; matchRunes holds
	// the rune positions to highlight per visible row.
	matches    []int
	matchRunes [][]int
}

// Run resolves the prompt. ok is false on cancellation (esc or
// ctrl+c), which is a normal outcome with no error.
func (sel *Select) Run() (string, bool, error) {
	if len(sel.Options) == 0 {
		return "", false, fmt.Errorf("select %q: no options", sel.Title)
	}
	maxVisible := sel.MaxVisible
	if maxVisible <= 0 {
		maxVisible = 7
	}

	state := &selectState{}
	list := navigate.NewList(len(sel.Options), maxVisible)

	refilter := func() {
		state.matches = state.matches[:0]
		state.matchRunes = state.matchRunes[:0]
		if len(state.query) == 0 {
			for i := range sel.Options {
				state.matches = append(state.matches, i)
				state.matchRunes = append(state.matchRunes, nil)
			}
		} else {
			for _, ranked := range ranking.Rank(sel.Options, string(state.query), ranking.Fuzzy) {
				state.matches = append(state.matches, ranked.Index)
				state.matchRunes = append(state.matchRunes, ranked.Match.Indices)
			}
		}
		list.SetItemCount(len(state.matches))
		list.JumpTo(0)
	}
	refilter()

	appendToQuery := func(r rune) {
		state.query = append(state.query, r)
		refilter()
	}

	searchKeys := binding.Set{
		{
			Match: func(event key.Event) bool {
				return !state.searching && event.Type == key.Slash
			},
			Do:       binding.Do(func() { state.searching = true }),
			HintKey:  "/",
			HintText: "search",
		},
		{
			Match: func(event key.Event) bool {
				return state.searching && event.Type == key.Char
			},
			Do: func(event key.Event) binding.Outcome {
				appendToQuery(event.Char)
				return binding.Handled
			},
		},
		{
			Match: func(event key.Event) bool {
				return state.searching && event.Type == key.Space
			},
			Do: binding.Do(func() { appendToQuery(' ') }),
		},
		{
			Match: func(event key.Event) bool {
				return state.searching && event.Type == key.Backspace
			},
			Do: binding.Do(func() {
				if len(state.query) > 0 {
					state.query = state.query[:len(state.query)-1]
					refilter()
				}
			}),
		},
		{
			// Esc closes the search instead of cancelling the
			// prompt; this binding must outrank ConfirmCancel.
			Match: func(event key.Event) bool {
				return state.searching && event.Type == key.Esc
			},
			Do: binding.Do(func() {
				state.searching = false
				state.query = nil
				refilter()
			}),
		},
		{
			// Enter with an empty filter result has nothing to
			// confirm; swallow it.
			Match: func(event key.Event) bool {
				return event.Type == key.Enter && len(state.matches) == 0
			},
			Do: func(key.Event) binding.Outcome { return binding.Handled },
		},
	}

	bindings := searchKeys.Merge(binding.ListNavigation(list), binding.ConfirmCancel())
	hints := bindings.Hints()

	draw := func(surface *render.Surface) {
		surface.Writeln(titleStyle.Render(sel.Title))
		if state.searching {
			surface.Writeln(dimStyle.Render("/") + string(state.query))
		}
		start, end := list.VisibleBounds()
		if list.OverflowAbove() {
			surface.Writeln(dimStyle.Render("  ↑ more"))
		}
		for row := start; row < end; row++ {
			label := highlightMatches(sel.Options[state.matches[row]], state.matchRunes[row])
			if row == list.SelectedIndex() {
				surface.Writeln(markerStyle.Render(focusMarker) + focusStyle.Render(label))
			} else {
				surface.Writeln(plainMarker + label)
			}
		}
		if list.OverflowBelow() {
			surface.Writeln(dimStyle.Render("  ↓ more"))
		}
		if len(state.matches) == 0 {
			surface.Writeln(dimStyle.Render("  (no matches)"))
		}
		surface.Writeln(binding.FormatHints(hints, surface.Terminal().Columns()))
	}

	loop := Loop{
		Terminal:    sel.Terminal,
		HideCursor:  true,
		ClearOnExit: sel.ClearOnExit,
		EscapeDelay: sel.EscapeDelay,
	}
	outcome, err := loop.Run(draw, bindings)
	if err != nil {
		return "", false, err
	}
	if outcome != binding.Confirmed {
		return "", false, nil
	}
	return sel.Options[state.matches[list.SelectedIndex()]], true, nil
}
