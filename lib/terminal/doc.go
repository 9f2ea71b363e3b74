// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package terminal is the engine's boundary to the terminal device:
// blocking and non-blocking byte reads, echo/line mode toggles, and
// dimension queries. The [Terminal] interface is what every other
// engine package depends on; [Console] implements it on a real Unix
// terminal via termios, and [Script] implements it on a canned byte
// stream for tests.
//
// Constructors throughout the engine take a Terminal explicitly.
// [System] returns a shared Console on stdin/stdout as a convenience
// for callers that don't need injection. It is sugar, not the
// primary API.
//
// Mode and dimension operations never fail: on a detached or
// redirected stream they degrade to safe defaults (80×24,
// echo and line mode reported as enabled) instead of failing. Only
// byte reads surface errors, because a read from an exhausted source
// signals a setup defect rather than a recoverable condition.
package terminal
