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

package scoper

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/ranges"
	"github.com/srgn-dev/srgn/internal/scope"
)

// Regex scopes every non-overlapping leftmost match of a compiled regular
// expression, attaching a Context carrying the full match plus every named
// or numbered capture group that participated.
//
// coregex v1.0 has no capture-group support (its own doc says so; see
// DESIGN.md), so this deliberately uses stdlib regexp instead of coregex —
// the one component in the scoper package that is not coregex-backed.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles pattern. Construction fails with a ScoperBuildError when
// the pattern is syntactically invalid (spec.md §4.3).
func NewRegex(pattern string) (*Regex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &errs.ScoperBuildError{Kind: "regex", Detail: fmt.Sprintf("compiling %q", pattern), Wrapped: err}
	}
	return &Regex{re: re}, nil
}

// ScopeRaw returns one RangeMatch per non-overlapping leftmost match. Empty
// matches are permitted here (the regex engine allows them); it is the
// view-builder's explode step, not the scoper, that is responsible for
// dropping any resulting empty scopes (spec.md §4.5 "Empty dropping").
func (r *Regex) ScopeRaw(input string) ([]scope.RangeMatch, error) {
	names := r.re.SubexpNames()

	idxs := r.re.FindAllStringSubmatchIndex(input, -1)
	out := make([]scope.RangeMatch, 0, len(idxs))
	for _, idx := range idxs {
		matchStart, matchEnd := idx[0], idx[1]

		ctx := &scope.Context{
			FullMatch: input[matchStart:matchEnd],
			Groups:    map[string]string{},
		}
		for g := 1; g*2 < len(idx); g++ {
			gs, ge := idx[g*2], idx[g*2+1]
			if gs < 0 || ge < 0 {
				continue // group did not participate in this match
			}
			val := input[gs:ge]
			ctx.Groups[strconv.Itoa(g)] = val
			if g < len(names) && names[g] != "" {
				ctx.Groups[names[g]] = val
			}
		}

		out = append(out, scope.RangeMatch{
			Range: ranges.Range{Start: matchStart, End: matchEnd},
			Ctx:   ctx,
		})
	}
	return out, nil
}
