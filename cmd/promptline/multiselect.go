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

func multiSelectCommand() *cli.Command {
	flags := &optionFlags{}
	var title string
	var maxVisible int
	var preselect []int
	var keep bool

	return &cli.Command{
		Name:    "multiselect",
		Summary: "Pick any number of options from a checkbox list",
		Description: `Run a multi-selection prompt. Space toggles the focused option,
"a" selects all, "i" inverts, tab toggles all. Confirming with
nothing checked yields the focused option. Each chosen option is
printed on its own stdout line.`,
		Usage: "promptline multiselect [flags]",
		Examples: []cli.Example{
			{
				Description: "Pick packages to upgrade, first two preselected",
				Command:     "promptline multiselect --options-file packages.yaml --preselect 0 --preselect 1",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("multiselect", pflag.ContinueOnError)
			flags.register(flagSet)
			flagSet.StringVar(&title, "title", "Select options", "prompt title")
			flagSet.IntVar(&maxVisible, "max-visible", 7, "rows shown at once")
			flagSet.IntSliceVar(&preselect, "preselect", nil, "option index to preselect (repeatable)")
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
			logger.Debug("running multiselect prompt", "options", len(options), "preselected", len(preselect))

			multi := &prompt.MultiSelect{
				Title:       title,
				Options:     options,
				Preselected: preselect,
				MaxVisible:  maxVisible,
				ClearOnExit: !keep,
			}
			values, ok, err := multi.Run()
			if err != nil {
				return cli.Internal("run multiselect prompt: %w", err)
			}
			if !ok {
				return exitCancelled
			}
			for _, value := range values {
				fmt.Println(value)
			}
			return nil
		},
	}
}
