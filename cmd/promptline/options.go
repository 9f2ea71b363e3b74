// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/promptline/cmd/promptline/cli"
)

// optionFlags is the option-list input shared by the selection
// commands: repeatable --option flags, a YAML --options-file, or
// both (flags first, file appended).
type optionFlags struct {
	options []string
	file    string
}

// register adds the shared flags to flagSet.
func (flags *optionFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringArrayVar(&flags.options, "option", nil, "option label (repeatable)")
	flagSet.StringVar(&flags.file, "options-file", "", "YAML file containing a list of option labels")
}

// load resolves the final option list. At least one option must come
// from somewhere.
func (flags *optionFlags) load() ([]string, error) {
	options := slices.Clone(flags.options)
	if flags.file != "" {
		data, err := os.ReadFile(flags.file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, cli.NotFound("options file %s does not exist", flags.file)
			}
			return nil, cli.Internal("read options file %s: %w", flags.file, err)
		}
		var fromFile []string
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, cli.Validation("parse options file %s: %w", flags.file, err)
		}
		options = append(options, fromFile...)
	}
	if len(options) == 0 {
		return nil, cli.Validation("no options given; use --option or --options-file")
	}
	return options, nil
}
