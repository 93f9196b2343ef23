// Copyright 2024 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/abcxyz/pkg/cli"
	"github.com/abcxyz/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/srgn-dev/srgn/flags"
	"github.com/srgn-dev/srgn/internal/driver"
	"github.com/srgn-dev/srgn/internal/walk"
)

// Command is srgn's single command: there are no subcommands, the whole CLI
// surface (spec.md §6) lives in one Flags struct and one Run method.
type Command struct {
	cli.BaseCommand
	flags flags.Flags
}

// Desc implements cli.Command.
func (c *Command) Desc() string {
	return "a grep-like tool that understands syntax and transforms what it finds"
}

func (c *Command) Help() string {
	return `
Usage: {{ COMMAND }} [options] [SCOPE] [REPLACEMENT]

srgn narrows its input to a SCOPE (a regex, literal string, or a
language-aware query) and applies the requested actions to what falls
inside that scope, leaving everything else untouched.

By default, input is read from stdin and the result is written to stdout.
A file-tree walk runs instead when --files, --hidden or --gitignored is
given, or when stdin is a terminal; --stdin-override-to forces either mode.
In a walk, every matching file under the current directory is read,
transformed, and rewritten in place.`
}

func (c *Command) Flags() *cli.FlagSet {
	set := c.NewFlagSet()
	c.flags.Register(set)
	return set
}

func (c *Command) Run(ctx context.Context, args []string) error {
	if err := c.Flags().Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	return c.realRun(ctx)
}

func (c *Command) realRun(ctx context.Context) error {
	f := &c.flags

	if f.Completions != "" {
		return printCompletions(c.Stdout(), f.Completions)
	}

	if f.Verbose {
		os.Setenv("SRGN_LOG_LEVEL", logging.LevelDebug.String())
	} else if f.LogLevel != "" {
		os.Setenv("SRGN_LOG_LEVEL", f.LogLevel)
	}
	ctx = logging.WithLogger(ctx, logging.NewFromEnv("SRGN_"))

	pipeline, err := buildPipeline(f)
	if err != nil {
		return err
	}

	d := &driver.Driver{
		Pipeline:      pipeline,
		Threads:       f.Threads,
		FailAny:       f.FailAny,
		FailNone:      f.FailNone,
		FailEmptyGlob: f.FailEmptyGlob,
		PreviewDiff:   f.PreviewDiff,
		Stdout:        c.Stdout(),
		Stderr:        c.Stderr(),
	}

	if walkMode(f) {
		walkOpts := walk.Options{Glob: f.Files, Hidden: f.Hidden, Gitignored: f.Gitignored}
		return d.RunWalk(ctx, []string{"."}, walkOpts)
	}

	return d.RunStdin(c.Stdin())
}

// walkMode decides between stdin mode and file-tree walk mode (spec.md §6).
// --stdin-override-to forces the choice explicitly; otherwise walk mode is
// implied by any walk-only flag, and falls back to auto-detecting whether
// stdin is a terminal (nothing piped in) the same way the teacher's render
// command detects an interactive terminal for its own prompts.
func walkMode(f *flags.Flags) bool {
	switch f.StdinOverrideTo {
	case "true":
		return false
	case "false":
		return true
	}
	if f.Files != "" || f.Hidden || f.Gitignored {
		return true
	}
	return isatty.IsTerminal(os.Stdin.Fd())
}
