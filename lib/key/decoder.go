// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package key

import (
	"time"
	"unicode/utf8"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

// DefaultEscapeDelay is how long the decoder waits after reading an
// ESC byte before peeking for a CSI continuation. Long enough for the
// remaining bytes of an arrow-key sequence to arrive from any local
// terminal; short enough that a lone Escape press still feels
// instant.
const DefaultEscapeDelay = 50 * time.Millisecond

// Control bytes with dedicated event types. Everything else in the
// 1–26 range becomes CtrlGeneric.
const (
	byteCtrlC     = 3
	byteCtrlD     = 4
	byteCtrlE     = 5
	byteCtrlH     = 8
	byteTab       = 9
	byteLineFeed  = 10
	byteReturn    = 13
	byteCtrlR     = 18
	byteEscape    = 27
	byteSpace     = 32
	byteSlash     = 47
	byteBackspace = 127
)

// CSI arrow-key final bytes (ESC [ <final>).
const (
	csiIntroducer = 0x5B // '['
	csiArrowUp    = 0x41 // 'A'
	csiArrowDown  = 0x42 // 'B'
	csiArrowRight = 0x43 // 'C'
	csiArrowLeft  = 0x44 // 'D'
)

// Decoder reads bytes from a terminal one event at a time.
//
// Known limitation: ESC disambiguation is a timing heuristic, not a
// protocol-exact parse. The decoder sleeps [EscapeDelay] and then
// peeks non-blockingly; if the continuation bytes of a CSI sequence
// arrive later than that (high-latency pipe, slow SSH link), a real
// arrow key decodes as a lone Esc followed by stray characters.
type Decoder struct {
	terminal terminal.Terminal

	// EscapeDelay overrides DefaultEscapeDelay. Tests running against
	// a [terminal.Script] set this near zero; scripted bytes are
	// always immediately available so the delay only costs time.
	EscapeDelay time.Duration
}

// NewDecoder returns a Decoder reading from the given terminal.
func NewDecoder(t terminal.Terminal) *Decoder {
	return &Decoder{terminal: t, EscapeDelay: DefaultEscapeDelay}
}

// Next blocks until one key event is available and returns it.
// Malformed input becomes an Unknown event; only an exhausted input
// source returns an error.
func (decoder *Decoder) Next() (Event, error) {
	value, err := decoder.terminal.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch value {
	case byteReturn, byteLineFeed:
		return Event{Type: Enter}, nil
	case byteCtrlC:
		return Event{Type: CtrlC}, nil
	case byteCtrlR:
		return Event{Type: CtrlR}, nil
	case byteCtrlD:
		return Event{Type: CtrlD}, nil
	case byteCtrlE:
		return Event{Type: CtrlE}, nil
	case byteTab:
		return Event{Type: Tab}, nil
	case byteSpace:
		return Event{Type: Space}, nil
	case byteSlash:
		return Event{Type: Slash}, nil
	case byteBackspace, byteCtrlH:
		return Event{Type: Backspace}, nil
	case byteEscape:
		return decoder.decodeEscape(), nil
	}

	if value >= 1 && value <= 26 {
		return Event{Type: CtrlGeneric, Char: rune(value + 96)}, nil
	}

	return decoder.decodeText(value), nil
}

// decodeEscape disambiguates a lone Escape press from the start of a
// CSI sequence: wait the bounded delay, then peek up to two bytes.
// Nothing pending → Esc. "[A".."[D" → the corresponding arrow. Any
// other continuation → Unknown (some other escape sequence this
// engine does not map).
func (decoder *Decoder) decodeEscape() Event {
	if decoder.EscapeDelay > 0 {
		time.Sleep(decoder.EscapeDelay)
	}

	first, ok := decoder.terminal.TryReadByte()
	if !ok {
		return Event{Type: Esc}
	}
	if first != csiIntroducer {
		return Event{Type: Unknown}
	}

	second, ok := decoder.terminal.TryReadByte()
	if !ok {
		return Event{Type: Unknown}
	}
	switch second {
	case csiArrowUp:
		return Event{Type: ArrowUp}
	case csiArrowDown:
		return Event{Type: ArrowDown}
	case csiArrowRight:
		return Event{Type: ArrowRight}
	case csiArrowLeft:
		return Event{Type: ArrowLeft}
	}
	return Event{Type: Unknown}
}

// decodeText classifies a non-control byte. Printable ASCII becomes a
// Char event. A UTF-8 leading byte has its continuation bytes
// consumed (blocking; they are part of one keystroke and arrive
// together) so a multi-byte character yields a single Unknown event
// instead of a burst of them.
func (decoder *Decoder) decodeText(value byte) Event {
	if value >= 33 && value <= 126 {
		return Event{Type: Char, Char: rune(value)}
	}
	if value < utf8.RuneSelf {
		// Remaining C0 bytes (NUL, 28–31) and DEL variants.
		return Event{Type: Unknown}
	}

	sequence := []byte{value}
	for len(sequence) < utf8.UTFMax && !utf8.FullRune(sequence) {
		next, err := decoder.terminal.ReadByte()
		if err != nil {
			break
		}
		sequence = append(sequence, next)
	}

	// Decoded or not, non-ASCII input has no Char mapping in this
	// engine's vocabulary.
	return Event{Type: Unknown}
}
