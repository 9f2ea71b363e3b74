// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package terminal

import "sync"

// Default dimensions reported when the device cannot be queried
// (redirected stream, detached terminal, CI).
const (
	DefaultColumns = 80
	DefaultLines   = 24
)

// Terminal abstracts the terminal device for the prompt engine. One
// logical session holds the device at a time; the engine is fully
// synchronous and never calls these methods from more than one
// goroutine.
type Terminal interface {
	// ReadByte blocks until one byte is available and returns it.
	// Returns an error when the input source is exhausted; the
	// engine treats that as fatal, not as a key event.
	ReadByte() (byte, error)

	// TryReadByte returns one byte without blocking, or ok=false when
	// nothing is immediately available. Used by the key decoder to
	// peek at the bytes following an ESC.
	TryReadByte() (byte, bool)

	// WriteString writes text to the terminal output. Write failures
	// are swallowed: there is nowhere useful to report them mid-render
	// and cleanup must never mask an in-flight error.
	WriteString(text string)

	// Columns and Lines report the terminal dimensions, defaulting to
	// 80×24 when the device cannot be queried.
	Columns() int
	Lines() int

	// EchoMode and LineMode report whether the terminal echoes input
	// and buffers it by line. On a detached stream both report true.
	// The setters are best-effort and never fail.
	EchoMode() bool
	SetEchoMode(on bool)
	LineMode() bool
	SetLineMode(on bool)

	// IsTerminal reports whether the device is an interactive
	// terminal (as opposed to a pipe or file).
	IsTerminal() bool
}

var (
	systemOnce     sync.Once
	systemTerminal *Console
)

// System returns the shared Console bound to stdin/stdout. It exists
// so that simple callers can write prompt.Select(options, ...) without
// wiring a Terminal; anything that wants testability should inject
// its own.
func System() *Console {
	systemOnce.Do(func() {
		systemTerminal = NewConsole()
	})
	return systemTerminal
}
