// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bureau-foundation/promptline/cmd/promptline/cli"
)

func TestLoadOptionsFromFlags(t *testing.T) {
	flags := &optionFlags{options: []string{"red", "green"}}
	options, err := flags.load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(options, []string{"red", "green"}) {
		t.Errorf("unexpected options: %v", options)
	}
}

func TestLoadOptionsFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "- staging\n- production\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &optionFlags{options: []string{"local"}, file: path}
	options, err := flags.load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(options, []string{"local", "staging", "production"}) {
		t.Errorf("expected flag options before file options, got %v", options)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	flags := &optionFlags{file: filepath.Join(t.TempDir(), "absent.yaml")}
	_, err := flags.load()
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var commandErr *cli.CommandError
	if !errors.As(err, &commandErr) || commandErr.Category != cli.CategoryNotFound {
		t.Errorf("expected a not_found error, got %v", err)
	}
}

func TestLoadOptionsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte("not: [a list"), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := &optionFlags{file: path}
	_, err := flags.load()
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	var commandErr *cli.CommandError
	if !errors.As(err, &commandErr) || commandErr.Category != cli.CategoryValidation {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestLoadOptionsEmpty(t *testing.T) {
	flags := &optionFlags{}
	_, err := flags.load()
	if err == nil {
		t.Fatal("expected an error with no options")
	}
	var commandErr *cli.CommandError
	if !errors.As(err, &commandErr) || commandErr.Category != cli.CategoryValidation {
		t.Errorf("expected a validation error, got %v", err)
	}
}
