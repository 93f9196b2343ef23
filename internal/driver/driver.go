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

package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/walk"
)

// Driver runs a Pipeline over one of two input sources (spec.md §4.9):
// standard input, read as a single buffer and written to standard output;
// or a walked file tree, each file rewritten in place. It owns the
// cross-file policy checks (--fail-any/--fail-none/--fail-empty-glob) and
// the optional --preview-diff safety net.
type Driver struct {
	Pipeline *Pipeline

	// Threads bounds walk-mode parallelism; 1 forces deterministic,
	// single-threaded processing (spec.md §5's --sorted equivalent). Values
	// below 1 are treated as 1. The host-CPU-count default comes from the
	// --threads flag's own default, not from the driver.
	Threads int

	FailAny       bool
	FailNone      bool
	FailEmptyGlob bool
	PreviewDiff   bool

	Stdout io.Writer
	Stderr io.Writer
}

// RunStdin reads all of stdin, runs the pipeline once, and writes the
// result to Stdout.
func (d *Driver) RunStdin(stdin io.Reader) error {
	buf, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if !utf8.Valid(buf) {
		return fmt.Errorf("stdin is not valid UTF-8")
	}

	result, err := d.Pipeline.Process(string(buf))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(d.Stdout, result.Output); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}

	return d.checkPolicies(result.Matched)
}

// RunWalk discovers files under roots per walkOpts, processes each
// (bounded by d.Threads workers), and rewrites changed files in place
// (skipped entirely in search mode, which only prints matches).
func (d *Driver) RunWalk(ctx context.Context, roots []string, walkOpts walk.Options) error {
	files, err := walk.Walk(roots, walkOpts)
	if err != nil {
		return err
	}
	if d.FailEmptyGlob && len(files) == 0 {
		return &errs.PolicyError{Detail: "no files matched (--fail-empty-glob)"}
	}

	var (
		mu          sync.Mutex
		anyMatched  bool
		stdoutWrite sync.Mutex
	)

	g, _ := errgroup.WithContext(ctx)
	threads := d.Threads
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)

	for _, path := range files {
		path := path
		g.Go(func() error {
			matched, err := d.processFile(path, &stdoutWrite)
			if err != nil {
				return fmt.Errorf("processing %q: %w", path, err)
			}
			if matched {
				mu.Lock()
				anyMatched = true
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return d.checkPolicies(anyMatched)
}

// processFile handles a single file: read, run the pipeline, and either
// print (search mode) or rewrite in place (only if content changed).
func (d *Driver) processFile(path string, stdoutWrite *sync.Mutex) (bool, error) {
	old, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading: %w", err)
	}
	if !utf8.Valid(old) {
		return false, fmt.Errorf("not valid UTF-8")
	}

	result, err := d.Pipeline.Process(string(old))
	if err != nil {
		return false, err
	}

	if d.Pipeline.SearchMode {
		if result.Matched {
			stdoutWrite.Lock()
			fmt.Fprintf(d.Stdout, "%s\n%s", path, result.Output)
			stdoutWrite.Unlock()
		}
		return result.Matched, nil
	}

	if result.Output == string(old) {
		return result.Matched, nil
	}

	if d.PreviewDiff {
		stdoutWrite.Lock()
		fmt.Fprintf(d.Stderr, "--- %s\n", path)
		fmt.Fprint(d.Stderr, unifiedDiff(string(old), result.Output))
		stdoutWrite.Unlock()
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat: %w", err)
	}
	if err := os.WriteFile(path, []byte(result.Output), info.Mode()); err != nil {
		return false, fmt.Errorf("writing: %w", err)
	}

	return result.Matched, nil
}

// checkPolicies applies --fail-any/--fail-none after all input has been
// processed.
func (d *Driver) checkPolicies(anyMatched bool) error {
	if d.FailAny && anyMatched {
		return &errs.PolicyError{Detail: "some input was in scope (--fail-any)"}
	}
	if d.FailNone && !anyMatched {
		return &errs.PolicyError{Detail: "no input was in scope (--fail-none)"}
	}
	return nil
}
