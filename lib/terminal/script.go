// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"io"
	"strings"
)

// Script is an in-memory [Terminal] that replays a canned byte stream
// and records everything written to it. It backs the engine's tests:
// feed it the exact bytes a user would type, run a prompt against it,
// then assert on the outcome and the recorded escape sequences.
//
// Reads past the end of the input return io.EOF, which the engine
// treats as fatal: an exhausted script is a test-harness defect, not
// a key event.
type Script struct {
	input    []byte
	position int
	output   strings.Builder

	// Cols and Rows are the dimensions reported to the engine.
	// Zero values fall back to the 80×24 defaults.
	Cols int
	Rows int

	echo bool
	line bool
}

// NewScript returns a Script that will replay the given bytes. The
// simulated terminal starts in cooked mode (echo and line buffering
// on), like a real shell-owned terminal.
func NewScript(input ...byte) *Script {
	return &Script{input: input, echo: true, line: true}
}

// Keys appends the bytes of each string to the replay stream. A
// convenience for writing scripts as mixed literals:
//
//	script := terminal.NewScript()
//	script.Keys("abc", "\r")
func (script *Script) Keys(sequences ...string) *Script {
	for _, sequence := range sequences {
		script.input = append(script.input, sequence...)
	}
	return script
}

// ReadByte pops the next scripted byte, or io.EOF when exhausted.
func (script *Script) ReadByte() (byte, error) {
	if script.position >= len(script.input) {
		return 0, io.EOF
	}
	value := script.input[script.position]
	script.position++
	return value, nil
}

// TryReadByte pops the next scripted byte without waiting. A script
// has no inter-byte latency, so any remaining byte is "immediately
// available", so escape sequences in the script are always
// recognized, regardless of the decoder's disambiguation delay.
func (script *Script) TryReadByte() (byte, bool) {
	if script.position >= len(script.input) {
		return 0, false
	}
	value := script.input[script.position]
	script.position++
	return value, true
}

// WriteString records output for later assertion.
func (script *Script) WriteString(text string) {
	script.output.WriteString(text)
}

// Output returns everything written so far.
func (script *Script) Output() string {
	return script.output.String()
}

// ResetOutput clears the recorded output. Useful for asserting on
// the writes of a single phase.
func (script *Script) ResetOutput() {
	script.output.Reset()
}

// Columns implements [Terminal].
func (script *Script) Columns() int {
	if script.Cols <= 0 {
		return DefaultColumns
	}
	return script.Cols
}

// Lines implements [Terminal].
func (script *Script) Lines() int {
	if script.Rows <= 0 {
		return DefaultLines
	}
	return script.Rows
}

// EchoMode implements [Terminal].
func (script *Script) EchoMode() bool { return script.echo }

// SetEchoMode implements [Terminal].
func (script *Script) SetEchoMode(on bool) { script.echo = on }

// LineMode implements [Terminal].
func (script *Script) LineMode() bool { return script.line }

// SetLineMode implements [Terminal].
func (script *Script) SetLineMode(on bool) { script.line = on }

// IsTerminal reports true: scripts stand in for interactive
// terminals, not for redirected streams.
func (script *Script) IsTerminal() bool { return true }
