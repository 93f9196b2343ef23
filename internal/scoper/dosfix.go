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
	"strings"

	"github.com/srgn-dev/srgn/internal/ranges"
	"github.com/srgn-dev/srgn/internal/scope"
)

// DosFix scopes everything except \r\n sequences, treating every CRLF pair
// inside the given content as a single out-of-scope unit. It is the
// general-purpose, single-segment counterpart of the boundary-stitch repair
// Builder.applyDosFix performs for the (more common) case where a \r\n is
// split across two adjacent scopes rather than sitting inside one.
type DosFix struct{}

// ScopeRaw returns the ranges of input that are not part of a \r\n pair.
func (DosFix) ScopeRaw(input string) ([]scope.RangeMatch, error) {
	var out []scope.RangeMatch
	start := 0
	for {
		idx := strings.Index(input[start:], "\r\n")
		if idx == -1 {
			break
		}
		pos := start + idx
		if pos > start {
			out = append(out, scope.RangeMatch{Range: ranges.Range{Start: start, End: pos}})
		}
		start = pos + 2
	}
	if start < len(input) {
		out = append(out, scope.RangeMatch{Range: ranges.Range{Start: start, End: len(input)}})
	}
	return out, nil
}
