// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

func newSelect(script *terminal.Script, options ...string) *Select {
	return &Select{
		Terminal:    script,
		Title:       "Pick one",
		Options:     options,
		EscapeDelay: time.Microsecond,
	}
}

func TestSelectConfirmsFocusedOption(t *testing.T) {
	script := terminal.NewScript().Keys("\x1b[B", "\x1b[B", "\r")
	value, ok, err := newSelect(script, "alpha", "beta", "gamma").Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "gamma" {
		t.Errorf("expected gamma confirmed, got %q ok=%v", value, ok)
	}
}

func TestSelectWrapsUpward(t *testing.T) {
	script := terminal.NewScript().Keys("\x1b[A", "\r")
	value, ok, err := newSelect(script, "alpha", "beta", "gamma").Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "gamma" {
		t.Errorf("expected wrap to last option, got %q ok=%v", value, ok)
	}
}

func TestSelectCancelledByCtrlC(t *testing.T) {
	script := terminal.NewScript().Keys("\x03")
	value, ok, err := newSelect(script, "alpha", "beta").Run()
	if err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected silent cancellation, got %q ok=%v", value, ok)
	}
}

func TestSelectCancelledByEsc(t *testing.T) {
	script := terminal.NewScript().Keys("\x1b")
	_, ok, err := newSelect(script, "alpha", "beta").Run()
	if err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if ok {
		t.Error("expected esc to cancel")
	}
}

func TestSelectSearchFilters(t *testing.T) {
	script := terminal.NewScript().Keys("/", "an", "\r")
	value, ok, err := newSelect(script, "apple", "banana", "cherry").Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "banana" {
		t.Errorf("expected search to confirm banana, got %q ok=%v", value, ok)
	}
}

func TestSelectSearchBackspaceRefilters(t *testing.T) {
	script := terminal.NewScript().Keys("/", "bx", "\x7f", "\r")
	value, ok, err := newSelect(script, "apple", "banana").Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "banana" {
		t.Errorf("expected backspace to restore the b filter, got %q ok=%v", value, ok)
	}
}

func TestSelectEnterIgnoredWithNoMatches(t *testing.T) {
	// "q" matches nothing; the enter must be swallowed rather than
	// confirm a nonexistent row, so the ctrl+c afterwards decides.
	script := terminal.NewScript().Keys("/", "q", "\r", "\x03")
	value, ok, err := newSelect(script, "alpha").Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected cancellation, got %q ok=%v", value, ok)
	}
}

func TestSelectOverflowMarker(t *testing.T) {
	script := terminal.NewScript().Keys("\r")
	sel := newSelect(script, "a", "b", "c", "d")
	sel.MaxVisible = 2
	if _, _, err := sel.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := script.Output()
	if !strings.Contains(output, "↓ more") {
		t.Error("expected below-overflow marker in the first frame")
	}
	if strings.Contains(output, "↑ more") {
		t.Error("unexpected above-overflow marker at scroll offset 0")
	}
}

func TestSelectRejectsEmptyOptions(t *testing.T) {
	script := terminal.NewScript()
	if _, _, err := newSelect(script).Run(); err == nil {
		t.Fatal("expected an error for empty options")
	}
}
