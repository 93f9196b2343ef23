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

// Package scoper implements the concrete Scoper types that narrow a scoped
// view: literal substring matching, regular expressions, and tree-sitter
// based language queries, plus a DOS-line-ending repair helper and an
// OR-composite for running several language scopers as one.
package scoper

import "github.com/srgn-dev/srgn/internal/scope"

// Composite treats a collection of scopers as a single Scoper: the union
// (merge) of their raw ranges. An empty Composite matches the entire input
// with no context, matching spec.md §4.2's "empty collection" rule.
type Composite []scope.Scoper

// ScopeRaw runs every member scoper over input and concatenates their raw
// matches; the caller (Builder.Explode, via explodeOne's normalize step)
// merges overlaps, so Composite itself does no deduplication.
func (c Composite) ScopeRaw(input string) ([]scope.RangeMatch, error) {
	if len(c) == 0 {
		return []scope.RangeMatch{{Range: wholeInput(input)}}, nil
	}

	var out []scope.RangeMatch
	for _, s := range c {
		matches, err := s.ScopeRaw(input)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}
