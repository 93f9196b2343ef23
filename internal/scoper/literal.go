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

	"github.com/coregx/coregex"
	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/ranges"
	"github.com/srgn-dev/srgn/internal/scope"
)

// Literal scopes every non-overlapping occurrence of a fixed string. It
// carries no capture context (a literal match has nothing to capture beyond
// itself), so it attaches the matched text as Context.FullMatch only — this
// lets Replacement's "$0"-style whole-match backreference still work even
// when the scope came from a literal rather than a regex.
type Literal struct {
	pattern string
	re      *coregex.Regex
}

// NewLiteral compiles pattern for literal (non-regex) matching. coregex's
// prefilter/DFA strategies make this considerably faster than an escaped
// stdlib regexp for plain substring search, which is exactly the niche its
// own package doc calls out. An empty pattern is rejected with a
// ScoperBuildError.
func NewLiteral(pattern string) (*Literal, error) {
	if pattern == "" {
		return nil, &errs.ScoperBuildError{Kind: "literal", Detail: "empty pattern"}
	}
	re, err := coregex.Compile(coregex.QuoteMeta(pattern))
	if err != nil {
		return nil, &errs.ScoperBuildError{Kind: "literal", Detail: fmt.Sprintf("compiling %q", pattern), Wrapped: err}
	}
	return &Literal{pattern: pattern, re: re}, nil
}

// ScopeRaw finds every non-overlapping occurrence of the literal pattern,
// walking match-end to match-end the same way coregex's own FindAll does
// internally (coregex v1.0 has no FindAllIndex, so the offset-tracking loop
// is reimplemented here against FindIndex).
func (l *Literal) ScopeRaw(input string) ([]scope.RangeMatch, error) {
	if l.pattern == "" {
		return nil, nil
	}

	var out []scope.RangeMatch
	b := []byte(input)
	pos := 0
	for pos <= len(b) {
		idx := l.re.FindIndex(b[pos:])
		if idx == nil {
			break
		}
		start, end := pos+idx[0], pos+idx[1]
		out = append(out, scope.RangeMatch{
			Range: ranges.Range{Start: start, End: end},
			Ctx:   &scope.Context{FullMatch: input[start:end]},
		})
		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
	return out, nil
}
