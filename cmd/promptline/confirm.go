// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/promptline/cmd/promptline/cli"
	"github.com/bureau-foundation/promptline/lib/prompt"
)

func confirmCommand() *cli.Command {
	var defaultYes bool
	var keep bool

	return &cli.Command{
		Name:    "confirm",
		Summary: "Ask a yes/no question",
		Description: `Run a yes/no prompt for the given question. Exits 0 on yes, 1 on
no, and 130 on cancellation, so the command slots directly into
shell conditionals.`,
		Usage: "promptline confirm <question> [flags]",
		Examples: []cli.Example{
			{
				Description: "Guard a destructive step",
				Command:     "promptline confirm 'Delete the database?' && dropdb prod",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("confirm", pflag.ContinueOnError)
			flagSet.BoolVar(&defaultYes, "default-yes", false, "focus yes instead of no when the prompt opens")
			flagSet.BoolVar(&keep, "keep", false, "leave the final frame on screen")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("question argument required\n\nUsage: promptline confirm <question> [flags]")
			}
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}
			logger.Debug("running confirm prompt", "default_yes", defaultYes)

			confirm := &prompt.Confirm{
				Title:       args[0],
				Default:     defaultYes,
				ClearOnExit: !keep,
			}
			answer, ok, err := confirm.Run()
			if err != nil {
				return cli.Internal("run confirm prompt: %w", err)
			}
			if !ok {
				return exitCancelled
			}
			if !answer {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
