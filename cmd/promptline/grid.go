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

func gridCommand() *cli.Command {
	flags := &optionFlags{}
	var title string
	var maxColumns int
	var balanced bool
	var keep bool

	return &cli.Command{
		Name:    "grid",
		Summary: "Pick one option from a two-dimensional grid",
		Description: `Run a grid-selection prompt. The column count adapts to the
terminal width; arrows move with wrap-around. Useful for short
labels with many options, like picking a month or a color name.`,
		Usage: "promptline grid [flags]",
		Examples: []cli.Example{
			{
				Description: "Pick a month in a roughly square layout",
				Command:     "promptline grid --balanced --option Jan --option Feb --option Mar --option Apr --option May --option Jun --option Jul --option Aug --option Sep --option Oct --option Nov --option Dec",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("grid", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&title, "title", "Select an option", "prompt title")
			flagSet.IntVar(&maxColumns, "max-columns", 0, "cap the column count (0 = fit the terminal)")
			flagSet.BoolVar(&balanced, "balanced", false, "target a roughly square layout")
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
			logger.Debug("running grid prompt", "options", len(options), "balanced", balanced)

			grid := &prompt.GridSelect{
				Title:       title,
				Options:     options,
				MaxColumns:  maxColumns,
				Balanced:    balanced,
				ClearOnExit: !keep,
			}
			value, ok, err := grid.Run()
			if err != nil {
				return cli.Internal("run grid prompt: %w", err)
			}
			if !ok {
				return exitCancelled
			}
			fmt.Println(value)
			return nil
		},
	}
}
