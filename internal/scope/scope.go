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

// Package scope implements the scoped view pipeline: the central data
// structure that partitions input text into alternating in-scope and
// out-of-scope segments, narrows that partition by composing scopers
// (explode), and maps actions over the in-scope portions.
package scope

import "github.com/srgn-dev/srgn/internal/ranges"

// Kind tags a Scope as in-scope or out-of-scope.
type Kind int

const (
	Out Kind = iota
	In
)

func (k Kind) String() string {
	if k == In {
		return "in"
	}
	return "out"
}

// Context is metadata carried by an in-scope segment: the full text that
// matched, plus a lookup from capture-group identifier (either a positional
// index, stringified, or a name) to the substring that group captured.
// Groups that did not participate in the match are absent from the map.
type Context struct {
	FullMatch string
	Groups    map[string]string
}

// Group looks up a capture by name or positional index (as a decimal
// string, e.g. "1"). Group "0" is the whole match: FullMatch is returned
// for it when Groups has no "0" entry. The second return value is false if
// the group did not participate in the match or does not exist.
func (c *Context) Group(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Groups[id]
	if !ok && id == "0" {
		return c.FullMatch, true
	}
	return v, ok
}

// Scope is a maximal contiguous stretch of input tagged In or Out. Content
// covers exactly the bytes of Range in the scope's current form: for a
// freshly exploded scope this is a substring of the original input; once an
// action has mapped over it, it may be an owned replacement string of
// different length. Range always refers to offsets in the *original* input
// — actions transform content, never renumber positions.
type Scope struct {
	Kind    Kind
	Content string
	Range   ranges.Range
	Ctx     *Context
}

// RangeMatch is one raw hit returned by a Scoper: a byte range local to the
// buffer the scoper was given, with optional context.
type RangeMatch struct {
	Range ranges.Range
	Ctx   *Context
}

// Scoper computes, given input bytes, the in-scope byte ranges within them.
// The returned sequence need not be sorted or disjoint; callers normalize.
type Scoper interface {
	ScopeRaw(input string) ([]RangeMatch, error)
}
