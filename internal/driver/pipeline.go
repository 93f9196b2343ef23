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

// Package driver wires input (stdin or a file tree) through the configured
// scopers, the scoped view, and the configured actions to output, per
// spec.md §4.9. It is intentionally thin: all the interesting behavior
// lives in internal/scope, internal/scoper, and internal/action; this
// package just sequences calls to them the way the teacher's
// templates/common/render/action.go sequences its own render steps.
package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/srgn-dev/srgn/internal/action"
	"github.com/srgn-dev/srgn/internal/scope"
)

// Pipeline is the fully-resolved, per-run configuration: which scopers
// narrow the view (language scoper first, then the general regex/literal
// scoper, matching spec.md §4.9's ordering), whether to squeeze, which
// actions to apply in order, and the output-shaping flags.
type Pipeline struct {
	// LanguageScoper narrows the view first, if a language flag was given.
	LanguageScoper scope.Scoper
	// GeneralScoper is the regex/literal SCOPE positional argument's
	// scoper (or an OR-composite of several), applied after the language
	// scoper.
	GeneralScoper scope.Scoper
	// Squeeze collapses adjacent in-scope runs after scoping.
	Squeeze bool
	// Actions are applied to in-scope content, in configured order. Empty
	// when running in search mode.
	Actions []scope.Action
	// SearchMode restricts output to in-scope lines with line numbers and
	// auto-applies a red-bold style, triggered when no actions are
	// configured and a language scoper is present (spec.md §4.9).
	SearchMode bool
	// LineNumbers prefixes each output line with its 1-based line number
	// (always on in search mode; optionally on otherwise via --line-numbers).
	LineNumbers bool
	// OnlyMatching restricts output to only the in-scope text itself,
	// dropping out-of-scope content entirely (meaningful outside search
	// mode too, as a grep -o equivalent).
	OnlyMatching bool
}

// searchStyle is the red-bold style auto-applied to in-scope text in
// search mode.
var searchStyle = action.Style{FG: color.FgRed, HasFG: true, Attributes: []color.Attribute{color.Bold}}

// Result is the outcome of running a Pipeline over one input buffer.
type Result struct {
	// Output is the buffer's new content (search-mode output is a
	// rendering of matches, not the transformed original).
	Output string
	// Matched reports whether any scope was in-scope, for --fail-any/
	// --fail-none and for deciding whether a file needs rewriting.
	Matched bool
}

// Process runs the pipeline over a single input buffer.
func (p *Pipeline) Process(input string) (Result, error) {
	b := scope.NewBuilder(input)

	if p.LanguageScoper != nil {
		if err := b.Explode(p.LanguageScoper); err != nil {
			return Result{}, err
		}
	}
	if p.GeneralScoper != nil {
		if err := b.Explode(p.GeneralScoper); err != nil {
			return Result{}, err
		}
	}

	view, err := b.Build()
	if err != nil {
		return Result{}, err
	}

	if p.Squeeze {
		view.Squeeze()
	}

	matched := view.HasAnyInScope()

	if p.SearchMode {
		if err := view.Map(searchStyle, false); err != nil {
			return Result{}, err
		}
		return Result{Output: renderSearch(view), Matched: matched}, nil
	}

	for _, act := range p.Actions {
		if err := view.Map(act, true); err != nil {
			return Result{}, err
		}
	}

	if p.OnlyMatching {
		return Result{Output: renderOnlyMatching(view), Matched: matched}, nil
	}
	if p.LineNumbers {
		return Result{Output: renderWithLineNumbers(view), Matched: matched}, nil
	}

	return Result{Output: view.Render(), Matched: matched}, nil
}

// renderSearch restricts output to lines containing an in-scope segment,
// each prefixed with its 1-based line number, matching spec.md §4.9's
// search-mode contract.
func renderSearch(view *scope.View) string {
	var sb strings.Builder
	for i, line := range view.AsLines() {
		if !line.HasAnyInScope() {
			continue
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(":")
		sb.WriteString(line.Render())
		if !strings.HasSuffix(line.Render(), "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderWithLineNumbers prefixes every line of the full (non-search-mode)
// output with its 1-based line number.
func renderWithLineNumbers(view *scope.View) string {
	var sb strings.Builder
	for i, line := range view.AsLines() {
		sb.WriteString(fmt.Sprintf("%d:%s", i+1, line.Render()))
	}
	return sb.String()
}

// renderOnlyMatching concatenates just the in-scope content, dropping
// everything out of scope.
func renderOnlyMatching(view *scope.View) string {
	var sb strings.Builder
	for _, s := range view.Scopes() {
		if s.Kind == scope.In {
			sb.WriteString(s.Content)
		}
	}
	return sb.String()
}
