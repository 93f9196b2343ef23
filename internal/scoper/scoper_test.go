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
	"testing"

	"github.com/srgn-dev/srgn/internal/scope"
)

func TestCompositeEmptyMatchesWholeInput(t *testing.T) {
	t.Parallel()

	var c Composite
	matches, err := c.ScopeRaw("anything at all")
	if err != nil {
		t.Fatalf("ScopeRaw: %v", err)
	}
	if len(matches) != 1 || matches[0].Range.Start != 0 || matches[0].Range.End != len("anything at all") {
		t.Fatalf("expected a single whole-input match, got %+v", matches)
	}
}

func TestCompositeUnionsMembers(t *testing.T) {
	t.Parallel()

	foo, err := NewLiteral("foo")
	if err != nil {
		t.Fatalf("NewLiteral: %v", err)
	}
	bar, err := NewLiteral("bar")
	if err != nil {
		t.Fatalf("NewLiteral: %v", err)
	}

	c := Composite{foo, bar}
	matches, err := c.ScopeRaw("foo baz bar")
	if err != nil {
		t.Fatalf("ScopeRaw: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
}

func TestDosFixCoalescesCRLF(t *testing.T) {
	t.Parallel()

	var d DosFix
	matches, err := d.ScopeRaw("ab\r\ncd")
	if err != nil {
		t.Fatalf("ScopeRaw: %v", err)
	}

	var out []scope.RangeMatch
	out = append(out, matches...)
	if len(out) != 2 {
		t.Fatalf("got %d ranges, want 2 (the two non-CRLF spans)", len(out))
	}
	if out[0].Range.Start != 0 || out[0].Range.End != 2 {
		t.Errorf("first range = %+v, want {0 2}", out[0].Range)
	}
	if out[1].Range.Start != 4 || out[1].Range.End != 6 {
		t.Errorf("second range = %+v, want {4 6}", out[1].Range)
	}
}
