// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Session scopes raw mode and cursor visibility around a prompt. The
// usual shape is:
//
//	session := render.NewSession(t, true)
//	session.Start()
//	defer session.End()
//
// End restores the terminal exactly once no matter how many times it
// runs or how the body exits, including panics. The
// underlying mode restore swallows failures so that cleanup on a
// detached terminal never masks the error that ended the session.
type Session struct {
	terminal   terminal.Terminal
	output     *termenv.Output
	hideCursor bool
	mode       *terminal.ModeState
	active     bool
}

// NewSession returns an inactive session. hideCursor controls whether
// Start hides the cursor for the session's duration; selection-style
// prompts hide it, text-entry prompts keep it visible.
func NewSession(t terminal.Terminal, hideCursor bool) *Session {
	return &Session{
		terminal:   t,
		output:     termenv.NewOutput(terminalWriter{terminal: t}),
		hideCursor: hideCursor,
	}
}

// Start snapshots the terminal's echo/line modes, disables both (raw
// mode), and optionally hides the cursor. Calling Start on an active
// session is a no-op.
func (session *Session) Start() {
	if session.active {
		return
	}
	session.mode = terminal.CaptureMode(session.terminal)
	session.terminal.SetEchoMode(false)
	session.terminal.SetLineMode(false)
	if session.hideCursor {
		session.output.HideCursor()
	}
	session.active = true
}

// End restores the mode snapshot and shows the cursor. Idempotent;
// safe to call from a deferred cleanup after an explicit End.
func (session *Session) End() {
	if !session.active {
		return
	}
	session.active = false
	session.mode.Restore()
	session.output.ShowCursor()
}
