// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/promptline/lib/terminal"
)

func TestSessionDisablesAndRestoresModes(t *testing.T) {
	script := terminal.NewScript()
	session := NewSession(script, true)

	session.Start()
	if script.EchoMode() {
		t.Error("expected echo disabled during session")
	}
	if script.LineMode() {
		t.Error("expected line mode disabled during session")
	}

	session.End()
	if !script.EchoMode() {
		t.Error("expected echo restored after session")
	}
	if !script.LineMode() {
		t.Error("expected line mode restored after session")
	}
}

func TestSessionCursorVisibility(t *testing.T) {
	script := terminal.NewScript()
	session := NewSession(script, true)

	session.Start()
	if !strings.Contains(script.Output(), "\x1b[?25l") {
		t.Errorf("expected hide-cursor sequence, got %q", script.Output())
	}

	session.End()
	if !strings.Contains(script.Output(), "\x1b[?25h") {
		t.Errorf("expected show-cursor sequence, got %q", script.Output())
	}
}

func TestSessionWithoutCursorHiding(t *testing.T) {
	script := terminal.NewScript()
	session := NewSession(script, false)

	session.Start()
	if strings.Contains(script.Output(), "\x1b[?25l") {
		t.Errorf("cursor must stay visible when hiding is off, got %q", script.Output())
	}
	session.End()
}

func TestSessionEndIsIdempotent(t *testing.T) {
	script := terminal.NewScript()
	session := NewSession(script, true)

	session.Start()
	session.End()

	// Mutate modes after the first End; a second End must not touch
	// them again.
	script.SetEchoMode(false)
	session.End()
	if script.EchoMode() {
		t.Error("second End must not re-restore modes")
	}
}

func TestSessionRestoresOnPanicPath(t *testing.T) {
	script := terminal.NewScript()
	session := NewSession(script, true)

	func() {
		defer func() { recover() }()
		session.Start()
		defer session.End()
		panic("render failure")
	}()

	if !script.EchoMode() || !script.LineMode() {
		t.Error("expected modes restored after panic in session body")
	}
	if !strings.Contains(script.Output(), "\x1b[?25h") {
		t.Error("expected cursor shown after panic in session body")
	}
}
