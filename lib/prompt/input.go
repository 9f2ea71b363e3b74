// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"
	"time"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Input prompts for a single line of text. Backspace edits; a
// non-zero Mask echoes the mask rune instead of the typed characters
// (for passphrases). The cursor stays visible, unlike the selection
// prompts.
type Input struct {
	// Terminal to run on. Nil means the process terminal.
	Terminal terminal.Terminal

	// Title is printed in front of the entry line.
	Title string

	// Initial seeds the entry buffer.
	Initial string

	// Mask, when non-zero, is echoed in place of every typed rune.
	Mask rune

	// ClearOnExit erases the prompt once it resolves.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's disambiguation delay.
	EscapeDelay time.Duration
}

// Run resolves the prompt. ok is false on cancellation; the partial
// buffer is discarded in that case.
func (input *Input) Run() (string, bool, error) {
	buffer := []rune(input.Initial)

	append1 := func(r rune) { buffer = append(buffer, r) }
	edits := binding.Set{
		{
			Match: binding.On(key.Char),
			Do: func(event key.Event) binding.Outcome {
				append1(event.Char)
				return binding.Handled
			},
		},
		{Match: binding.On(key.Space), Do: binding.Do(func() { append1(' ') })},
		{Match: binding.On(key.Slash), Do: binding.Do(func() { append1('/') })},
		{
			Match: binding.On(key.Backspace),
			Do: binding.Do(func() {
				if len(buffer) > 0 {
					buffer = buffer[:len(buffer)-1]
				}
			}),
		},
	}
	bindings := edits.Merge(binding.ConfirmCancel())

	draw := func(surface *render.Surface) {
		echo := string(buffer)
		if input.Mask != 0 {
			echo = strings.Repeat(string(input.Mask), len(buffer))
		}
		// Written as a full line so the clear accounting covers it;
		// a trailing partial line would escape the counter.
		surface.Writeln(titleStyle.Render(input.Title) + " " + echo)
	}

	loop := Loop{
		Terminal:    input.Terminal,
		HideCursor:  false,
		ClearOnExit: input.ClearOnExit,
		EscapeDelay: input.EscapeDelay,
	}
	outcome, err := loop.Run(draw, bindings)
	if err != nil {
		return "", false, err
	}
	if outcome != binding.Confirmed {
		return "", false, nil
	}
	return string(buffer), true, nil
}
