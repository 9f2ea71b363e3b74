// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/promptline/cmd/promptline/cli"
	"github.com/bureau-foundation/promptline/lib/version"
)

// exitCancelled is returned by every prompt command when the user
// cancels. 130 follows the shell convention for interrupted
// interactive programs.
var exitCancelled = &cli.ExitError{Code: 130}

func main() {
	if err := run(); err != nil {
		// Commands that resolved on their own terms (cancelled
		// prompt, "no" answer) return an ExitError with the desired
		// code. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(context.Background(), os.Args[1:], cli.NewLogger())
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "promptline",
		Description: `Promptline: interactive prompts for shell scripts.

Each subcommand runs one prompt on the controlling terminal and
prints the confirmed value on stdout. A cancelled prompt (esc or
ctrl+c) exits with code 130 and prints nothing.`,
		Subcommands: []*cli.Command{
			selectCommand(),
			multiSelectCommand(),
			gridCommand(),
			confirmCommand(),
			inputCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("promptline %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Pick a deployment target",
				Command:     "promptline select --title 'Deploy to:' --option staging --option production",
			},
			{
				Description: "Pick packages from a YAML list",
				Command:     "promptline multiselect --options-file packages.yaml",
			},
			{
				Description: "Guard a destructive step",
				Command:     "promptline confirm 'Delete the database?' && dropdb prod",
			},
			{
				Description: "Read a passphrase without echo",
				Command:     "promptline input --title 'Passphrase:' --mask '*'",
			},
		},
	}
}
