// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the promptline binary's command framework:
// a nested [Command] tree with pflag flag parsing, structured help
// output, typo suggestions for unknown commands and flags,
// categorized command errors, and exit-code control.
package cli
