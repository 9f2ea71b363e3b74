// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package key turns the raw byte stream of a terminal into normalized
// key events. The [Decoder] handles the three awkward parts of raw
// terminal input: control bytes that double as named keys, the
// ambiguity between a lone Escape and the start of a CSI arrow-key
// sequence, and multi-byte UTF-8 input that is not plain ASCII.
package key

// Type identifies a normalized key event.
type Type int

const (
	// Unknown covers malformed byte sequences, unrecognized control
	// bytes, and non-ASCII input. Never an error: the engine drops
	// unknown events on the floor rather than aborting a prompt.
	Unknown Type = iota

	Enter
	Esc
	CtrlC
	CtrlR
	CtrlD
	CtrlE

	// CtrlGeneric is any Ctrl+letter chord without a dedicated type
	// above. The letter travels in [Event.Char] (Ctrl+A → 'a').
	CtrlGeneric

	Tab
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Backspace
	Space
	Slash

	// Char is a printable ASCII character; the character itself
	// travels in [Event.Char].
	Char
)

// Event is one normalized key press. Immutable value: bindings and
// widgets receive it by value and never mutate it.
type Event struct {
	Type Type

	// Char carries the payload for Char and CtrlGeneric events; zero
	// otherwise.
	Char rune
}

// String returns a short human-readable name, used in hint labels and
// test failure messages.
func (t Type) String() string {
	switch t {
	case Enter:
		return "enter"
	case Esc:
		return "esc"
	case CtrlC:
		return "ctrl+c"
	case CtrlR:
		return "ctrl+r"
	case CtrlD:
		return "ctrl+d"
	case CtrlE:
		return "ctrl+e"
	case CtrlGeneric:
		return "ctrl"
	case Tab:
		return "tab"
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case Backspace:
		return "backspace"
	case Space:
		return "space"
	case Slash:
		return "/"
	case Char:
		return "char"
	default:
		return "unknown"
	}
}
