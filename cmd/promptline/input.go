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

func inputCommand() *cli.Command {
	var title string
	var initial string
	var mask string

	return &cli.Command{
		Name:    "input",
		Summary: "Read a single line of text",
		Description: `Run a text-entry prompt. Backspace edits; enter confirms; the
entered line is printed on stdout. With --mask, the echo shows the
mask character instead of the typed text (for passphrases).`,
		Usage: "promptline input [flags]",
		Examples: []cli.Example{
			{
				Description: "Read a release note",
				Command:     "promptline input --title 'Release note:'",
			},
			{
				Description: "Read a passphrase without echoing it",
				Command:     "promptline input --title 'Passphrase:' --mask '*'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("input", pflag.ContinueOnError)
			flagSet.StringVar(&title, "title", "Enter a value:", "prompt title")
			flagSet.StringVar(&initial, "initial", "", "pre-filled text")
			flagSet.StringVar(&mask, "mask", "", "echo this character instead of typed text")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			var maskRune rune
			if mask != "" {
				runes := []rune(mask)
				if len(runes) != 1 {
					return cli.Validation("--mask must be a single character, got %q", mask)
				}
				maskRune = runes[0]
			}
			logger.Debug("running input prompt", "masked", maskRune != 0)

			in := &prompt.Input{
				Title:   title,
				Initial: initial,
				Mask:    maskRune,
				// The entered value echoes in place, so clearing on
				// exit would erase the only confirmation the user
				// sees. The frame stays.
			}
			value, ok, err := in.Run()
			if err != nil {
				return cli.Internal("run input prompt: %w", err)
			}
			if !ok {
				return exitCancelled
			}
			fmt.Println(value)
			return nil
		},
	}
}
