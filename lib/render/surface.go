// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

// Surface tracks lines written to the terminal since the last clear.
// The line counter must stay in exact 1:1 correspondence with the
// physical cursor displacement, so all prompt output has to flow
// through Write/Writeln: a widget that writes to the terminal
// directly breaks the accounting and the next Clear erases the wrong
// region.
type Surface struct {
	terminal terminal.Terminal
	output   *termenv.Output
	lines    int
}

// terminalWriter adapts the swallow-errors WriteString of a
// [terminal.Terminal] to io.Writer for termenv.
type terminalWriter struct {
	terminal terminal.Terminal
}

func (writer terminalWriter) Write(data []byte) (int, error) {
	writer.terminal.WriteString(string(data))
	return len(data), nil
}

// NewSurface returns an empty Surface writing to the terminal.
func NewSurface(t terminal.Terminal) *Surface {
	return &Surface{
		terminal: t,
		output:   termenv.NewOutput(terminalWriter{terminal: t}),
	}
}

// Write emits text verbatim and counts any embedded newlines. In raw
// mode a bare "\n" moves down without returning to column zero;
// callers writing whole lines should prefer Writeln, which emits the
// CRLF pair.
func (surface *Surface) Write(text string) {
	surface.terminal.WriteString(text)
	surface.lines += strings.Count(text, "\n")
}

// Writeln emits one line followed by CRLF. Embedded newlines are
// counted too, so a multi-line string clears correctly.
func (surface *Surface) Writeln(line string) {
	surface.Write(line + "\r\n")
}

// LineCount returns the number of lines emitted since the last clear.
func (surface *Surface) LineCount() int {
	return surface.lines
}

// Clear erases exactly the lines this surface has written: cursor up
// N rows, then erase from the cursor to the end of the screen. A
// no-op when nothing has been written. Never a full-screen clear, so
// scrollback and the shell prompt above survive.
func (surface *Surface) Clear() {
	if surface.lines == 0 {
		return
	}
	surface.output.CursorUp(surface.lines)
	fmt.Fprintf(surface.output, termenv.CSI+termenv.EraseDisplaySeq, 0)
	surface.lines = 0
}

// Terminal returns the underlying terminal, for width/height queries
// during rendering.
func (surface *Surface) Terminal() terminal.Terminal {
	return surface.terminal
}
