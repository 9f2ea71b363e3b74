// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/promptline/cmd/promptline/cli"
	"github.com/bureau-foundation/promptline/lib/prompt"
)

func selectCommand() *cli.Command {
	flags := &optionFlags{}
	var title string
	var maxVisible int
	var keep bool

	return &cli.Command{
		Name:    "select",
		Summary: "Pick one option from a scrolling list",
		Description: `Run a single-selection prompt. Arrows move, "/" opens a fuzzy
search over the options, enter confirms. The chosen option is
printed on stdout.`,
		Usage: "promptline select [flags]",
		Examples: []cli.Example{
			{
				Description: "Pick a branch to check out",
				Command:     "git checkout \"$(git branch --format '%(refname:short)' | xargs -I{} echo --option {} | xargs promptline select --title 'Branch:')\"",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("select", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&title, "title", "Select an option", "prompt title")
			flagSet.IntVar(&maxVisible, "max-visible", 7, "rows shown at once")
			flagSet.BoolVar(&keep, "keep", false, "leave the final frame on screen")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			options, err := flags.load()
			if err != nil {
				return err
			}
			logger.Debug("running select prompt", "options", len(options))

			sel := &prompt.Select{
				Title:       title,
				Options:     options,
				MaxVisible:  maxVisible,
				ClearOnExit: !keep,
			}
			value, ok, err := sel.Run()
			if err != nil {
				return cli.Internal("run select prompt: %w", err)
			}
			if !ok {
				return exitCancelled
			}
			fmt.Println(value)
			return nil
		},
	}
}
