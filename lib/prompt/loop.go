// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt runs interactive prompts on a terminal. [Loop] is
// the engine: it scopes raw mode, renders a widget's frame, and
// dispatches decoded key events against a binding set until one of
// them confirms or cancels. The package also ships the standard
// widgets built on the loop: [Select], [MultiSelect], [GridSelect],
// [Confirm], and [Input].
package prompt

import (
	"fmt"
	"time"

	"github.com/bureau-foundation/promptline/lib/binding"
	"github.com/bureau-foundation/promptline/lib/key"
	"github.com/bureau-foundation/promptline/lib/render"
	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Loop drives one prompt: session setup, the render/decode/dispatch
// cycle, and teardown. The zero value runs on the process terminal
// with the cursor visible and leaves the final frame on screen.
type Loop struct {
	// Terminal to run on. Nil means [terminal.System].
	Terminal terminal.Terminal

	// HideCursor hides the cursor for the prompt's duration.
	// Selection-style prompts set it; text entry leaves the cursor
	// visible.
	HideCursor bool

	// ClearOnExit erases the prompt's final frame once it resolves,
	// leaving the screen as it was before the prompt ran.
	ClearOnExit bool

	// EscapeDelay overrides the decoder's escape disambiguation
	// delay. Zero keeps [key.DefaultEscapeDelay].
	EscapeDelay time.Duration
}

// Run renders via draw, then reads key events and dispatches them
// against bindings until one resolves the prompt. Handled and Ignored
// outcomes both clear and redraw the frame; Confirmed and Cancelled
// return it. The terminal's modes are restored on every exit path,
// including panics in draw or in binding actions.
//
// A read failure (exhausted or detached input source) is returned as
// an error; it means the prompt was started on a dead input, not that
// the user did anything.
func (loop *Loop) Run(draw func(*render.Surface), bindings binding.Set) (binding.Outcome, error) {
	t := loop.Terminal
	if t == nil {
		t = terminal.System()
	}

	session := render.NewSession(t, loop.HideCursor)
	session.Start()
	defer session.End()

	surface := render.NewSurface(t)
	decoder := key.NewDecoder(t)
	if loop.EscapeDelay > 0 {
		decoder.EscapeDelay = loop.EscapeDelay
	}

	draw(surface)
	for {
		event, err := decoder.Next()
		if err != nil {
			if loop.ClearOnExit {
				surface.Clear()
			}
			return binding.Ignored, fmt.Errorf("read key event: %w", err)
		}

		outcome := bindings.Dispatch(event)
		if outcome == binding.Confirmed || outcome == binding.Cancelled {
			if loop.ClearOnExit {
				surface.Clear()
			}
			return outcome, nil
		}

		surface.Clear()
		draw(surface)
	}
}
