// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render provides the engine's incremental redraw primitives.
//
// [Surface] keeps an exact count of the lines it has emitted since
// the last clear, and Clear moves the cursor up by that count and
// erases to the end of the screen, clearing only what the surface
// itself wrote. Scrollback and the shell prompt above stay intact; a
// prompt occupies the bottom of the terminal like any other command
// output instead of taking over the screen.
//
// [Session] scopes raw mode and cursor visibility around a render
// loop, restoring the terminal exactly once on every exit path.
package render
