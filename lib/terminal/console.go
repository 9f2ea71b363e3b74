// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package terminal

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Console is the real-terminal implementation of [Terminal], bound to
// a pair of file descriptors (normally stdin/stdout). Mode toggles go
// through termios directly rather than term.MakeRaw so that echo and
// line buffering can be switched independently and the original flags
// snapshotted per-flag.
type Console struct {
	input  *os.File
	output *os.File
	inFD   int
	outFD  int
}

// NewConsole returns a Console on stdin/stdout.
func NewConsole() *Console {
	return NewConsoleFiles(os.Stdin, os.Stdout)
}

// NewConsoleFiles returns a Console on an explicit file pair. Useful
// for binding to /dev/tty when stdin is occupied by piped data.
func NewConsoleFiles(input, output *os.File) *Console {
	return &Console{
		input:  input,
		output: output,
		inFD:   int(input.Fd()),
		outFD:  int(output.Fd()),
	}
}

// ReadByte blocks until a byte arrives on the input descriptor.
// Interrupted reads (EINTR, e.g. from a window resize signal) are
// retried; a zero-length read means the source is exhausted and is
// reported as io.EOF.
func (console *Console) ReadByte() (byte, error) {
	buffer := make([]byte, 1)
	for {
		n, err := unix.Read(console.inFD, buffer)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return buffer[0], nil
	}
}

// TryReadByte attempts a single non-blocking read. The descriptor is
// flipped to non-blocking for the duration of the attempt and flipped
// back before returning, so the blocking ReadByte path is unaffected.
func (console *Console) TryReadByte() (byte, bool) {
	if err := unix.SetNonblock(console.inFD, true); err != nil {
		return 0, false
	}
	defer unix.SetNonblock(console.inFD, false)

	buffer := make([]byte, 1)
	n, err := unix.Read(console.inFD, buffer)
	if err != nil || n == 0 {
		return 0, false
	}
	return buffer[0], true
}

// WriteString writes text to the output descriptor, swallowing errors.
func (console *Console) WriteString(text string) {
	io.WriteString(console.output, text)
}

// Columns returns the terminal width, or DefaultColumns when the
// output is not a terminal.
func (console *Console) Columns() int {
	width, _, err := term.GetSize(console.outFD)
	if err != nil || width <= 0 {
		return DefaultColumns
	}
	return width
}

// Lines returns the terminal height, or DefaultLines when the output
// is not a terminal.
func (console *Console) Lines() int {
	_, height, err := term.GetSize(console.outFD)
	if err != nil || height <= 0 {
		return DefaultLines
	}
	return height
}

// EchoMode reports whether input echo is enabled. Detached streams
// report true: a stream that cannot be toggled behaves like a cooked
// terminal.
func (console *Console) EchoMode() bool {
	termios, err := unix.IoctlGetTermios(console.inFD, ioctlReadTermios)
	if err != nil {
		return true
	}
	return termios.Lflag&unix.ECHO != 0
}

// SetEchoMode enables or disables input echo. Best-effort: failures
// (detached terminal) are swallowed.
func (console *Console) SetEchoMode(on bool) {
	termios, err := unix.IoctlGetTermios(console.inFD, ioctlReadTermios)
	if err != nil {
		return
	}
	if on {
		termios.Lflag |= unix.ECHO
	} else {
		termios.Lflag &^= unix.ECHO
	}
	unix.IoctlSetTermios(console.inFD, ioctlWriteTermios, termios)
}

// LineMode reports whether canonical (line-buffered) input is
// enabled. Detached streams report true.
func (console *Console) LineMode() bool {
	termios, err := unix.IoctlGetTermios(console.inFD, ioctlReadTermios)
	if err != nil {
		return true
	}
	return termios.Lflag&unix.ICANON != 0
}

// SetLineMode enables or disables canonical input buffering. With
// line mode off, reads return per-byte with VMIN=1/VTIME=0 so the
// decoder sees individual keystrokes.
func (console *Console) SetLineMode(on bool) {
	termios, err := unix.IoctlGetTermios(console.inFD, ioctlReadTermios)
	if err != nil {
		return
	}
	if on {
		termios.Lflag |= unix.ICANON
	} else {
		termios.Lflag &^= unix.ICANON
		termios.Cc[unix.VMIN] = 1
		termios.Cc[unix.VTIME] = 0
	}
	unix.IoctlSetTermios(console.inFD, ioctlWriteTermios, termios)
}

// IsTerminal reports whether the input descriptor is an interactive
// terminal.
func (console *Console) IsTerminal() bool {
	return term.IsTerminal(console.inFD)
}
