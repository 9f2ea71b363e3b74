// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"testing"
	"time"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

func newConfirm(script *terminal.Script, defaultAnswer bool) *Confirm {
	return &Confirm{
		Terminal:    script,
		Title:       "Proceed?",
		Default:     defaultAnswer,
		EscapeDelay: time.Microsecond,
	}
}

func TestConfirmEnterTakesDefault(t *testing.T) {
	for _, defaultAnswer := range []bool{true, false} {
		script := terminal.NewScript().Keys("\r")
		answer, ok, err := newConfirm(script, defaultAnswer).Run()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || answer != defaultAnswer {
			t.Errorf("default %v: got answer=%v ok=%v", defaultAnswer, answer, ok)
		}
	}
}

func TestConfirmShortcuts(t *testing.T) {
	script := terminal.NewScript().Keys("n")
	answer, ok, err := newConfirm(script, true).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || answer {
		t.Errorf("expected 'n' to answer no, got answer=%v ok=%v", answer, ok)
	}

	script = terminal.NewScript().Keys("Y")
	answer, ok, err = newConfirm(script, false).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || !answer {
		t.Errorf("expected 'Y' to answer yes, got answer=%v ok=%v", answer, ok)
	}
}

func TestConfirmTabSwitchesAnswer(t *testing.T) {
	script := terminal.NewScript().Keys("\t", "\r")
	answer, ok, err := newConfirm(script, true).Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || answer {
		t.Errorf("expected tab to switch to no, got answer=%v ok=%v", answer, ok)
	}
}

func TestConfirmCancelled(t *testing.T) {
	script := terminal.NewScript().Keys("\x03")
	answer, ok, err := newConfirm(script, true).Run()
	if err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if ok || answer {
		t.Errorf("expected silent cancellation, got answer=%v ok=%v", answer, ok)
	}
}
