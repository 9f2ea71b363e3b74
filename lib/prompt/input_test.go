// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

func newInput(script *terminal.Script) *Input {
	return &Input{
		Terminal:    script,
		Title:       "Name:",
		EscapeDelay: time.Microsecond,
	}
}

func TestInputTypesLine(t *testing.T) {
	script := terminal.NewScript().Keys("hi", " ", "go", "\r")
	value, ok, err := newInput(script).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "hi go" {
		t.Errorf("expected %q, got %q ok=%v", "hi go", value, ok)
	}
}

func TestInputBackspaceEdits(t *testing.T) {
	script := terminal.NewScript().Keys("abc", "\x7f", "\r")
	value, ok, err := newInput(script).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "ab" {
		t.Errorf("expected %q, got %q ok=%v", "ab", value, ok)
	}
}

func TestInputBackspaceOnEmptyBuffer(t *testing.T) {
	script := terminal.NewScript().Keys("\x7f", "x", "\r")
	value, ok, err := newInput(script).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "x" {
		t.Errorf("expected %q, got %q ok=%v", "x", value, ok)
	}
}

func TestInputInitialSeedsBuffer(t *testing.T) {
	script := terminal.NewScript().Keys("!", "\r")
	in := newInput(script)
	in.Initial = "pre"
	value, ok, err := in.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "pre!" {
		t.Errorf("expected %q, got %q ok=%v", "pre!", value, ok)
	}
}

func TestInputSlashIsLiteral(t *testing.T) {
	script := terminal.NewScript().Keys("a", "/", "b", "\r")
	value, ok, err := newInput(script).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "a/b" {
		t.Errorf("expected %q, got %q ok=%v", "a/b", value, ok)
	}
}

func TestInputMaskHidesEcho(t *testing.T) {
	script := terminal.NewScript().Keys("xy", "\r")
	in := newInput(script)
	in.Title = "Secret:"
	in.Mask = '•'
	value, ok, err := in.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "xy" {
		t.Errorf("expected the real value back, got %q ok=%v", value, ok)
	}

	output := script.Output()
	if strings.Contains(output, "xy") {
		t.Error("typed characters leaked into the echo")
	}
	if !strings.Contains(output, "••") {
		t.Error("expected masked echo in output")
	}
}

func TestInputCancelDiscardsBuffer(t *testing.T) {
	script := terminal.NewScript().Keys("abc", "\x03")
	value, ok, err := newInput(script).Run()
	if err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected discarded buffer, got %q ok=%v", value, ok)
	}
}
