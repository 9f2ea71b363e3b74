// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package terminal

// ModeState is a snapshot of the terminal's echo and line modes,
// taken before a session disables them. Restore puts the modes back
// exactly once; further calls are no-ops. Restoration is best-effort
// all the way down: a terminal that detached mid-session must not
// turn cleanup into a new error that masks whatever ended the
// session.
type ModeState struct {
	terminal Terminal
	origEcho bool
	origLine bool
	restored bool
}

// CaptureMode snapshots the current echo/line modes of the terminal.
func CaptureMode(t Terminal) *ModeState {
	return &ModeState{
		terminal: t,
		origEcho: t.EchoMode(),
		origLine: t.LineMode(),
	}
}

// Restore reinstates the snapshotted modes. Idempotent.
func (state *ModeState) Restore() {
	if state.restored {
		return
	}
	state.restored = true
	state.terminal.SetEchoMode(state.origEcho)
	state.terminal.SetLineMode(state.origLine)
}
