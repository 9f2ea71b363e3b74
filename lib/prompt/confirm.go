// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"time"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/navigate"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Confirm prompts for a yes/no answer. Tab and arrows move between
// the two answers; "y" and "n" answer immediately; enter confirms
// the focused answer.
type Confirm struct {
	// Terminal to run on. Nil means the process terminal.
	Terminal terminal.Terminal

	// Title is the question.
	Title string

	// Default is the answer focused when the prompt opens.
	Default bool

	// ClearOnExit erases the prompt once it resolves.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's disambiguation delay.
	EscapeDelay time.Duration
}

// Run resolves the prompt. answer is meaningful only when ok is
// true; ok is false on cancellation.
func (confirm *Confirm) Run() (answer, ok bool, err error) {
	// Index 0 is yes, 1 is no.
	focus := navigate.NewFocus(2)
	if !confirm.Default {
		focus.JumpTo(1)
	}

	bindings := binding.Set{
		{
			Match:    binding.OnChar('y', 'Y'),
			Do:       confirmWith(focus, 0),
			HintKey:  "y/n",
			HintText: "answer",
		},
		{
			Match: binding.OnChar('n', 'N'),
			Do:    confirmWith(focus, 1),
		},
	}.Merge(binding.FocusCycle(focus), binding.ConfirmCancel())
	hints := bindings.Hints()

	labels := [2]string{"Yes", "No"}
	draw := func(surface *render.Surface) {
		line := titleStyle.Render(confirm.Title) + " "
		for index, label := range labels {
			if index > 0 {
				line += " / "
			}
			if index == focus.FocusedIndex() {
				line += markerStyle.Render("[") + focusStyle.Render(label) + markerStyle.Render("]")
			} else {
				line += " " + dimStyle.Render(label) + " "
			}
		}
		surface.Writeln(line)
		surface.Writeln(binding.FormatHints(hints, surface.Terminal().Columns()))
	}

	loop := Loop{
		Terminal:    confirm.Terminal,
		HideCursor:  true,
		ClearOnExit: confirm.ClearOnExit,
		EscapeDelay: confirm.EscapeDelay,
	}
	outcome, err := loop.Run(draw, bindings)
	if err != nil {
		return false, false, err
	}
	if outcome != binding.Confirmed {
		return false, false, nil
	}
	return focus.FocusedIndex() == 0, true, nil
}

// confirmWith jumps the focus to the given answer and confirms in
// one action, backing the y/n shortcuts.
func confirmWith(focus *navigate.Focus, index int) func(key.Event) binding.Outcome {
	return func(key.Event) binding.Outcome {
		focus.JumpTo(index)
		return binding.Confirmed
	}
}
