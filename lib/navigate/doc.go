// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package navigate holds the pure index and viewport math behind the
// prompt widgets: [List] for 1D scrolling windows, [Grid] for 2D
// wrapping grids, and [Focus] for flat focus-only sets. Navigators
// carry no items and no rendering, only counts, indices, and
// offsets, so their invariants can be tested exhaustively without a
// terminal.
package navigate
