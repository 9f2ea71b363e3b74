// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// The promptline binary demonstrates the prompt widgets from shell
// scripts: each subcommand runs one widget against the controlling
// terminal, prints the confirmed value(s) on stdout, and signals
// cancellation through the exit code so pipelines can branch on it.
package main
