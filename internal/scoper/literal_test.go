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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/ranges"
)

func TestLiteralScopeRaw(t *testing.T) {
	t.Parallel()

	l, err := NewLiteral("foo")
	if err != nil {
		t.Fatalf("NewLiteral: %v", err)
	}

	matches, err := l.ScopeRaw("foo bar foo baz")
	if err != nil {
		t.Fatalf("ScopeRaw: %v", err)
	}

	var got []ranges.Range
	for _, m := range matches {
		got = append(got, m.Range)
	}
	want := []ranges.Range{{Start: 0, End: 3}, {Start: 8, End: 11}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralScopeRawRegexSpecialChars(t *testing.T) {
	t.Parallel()

	l, err := NewLiteral("a.b")
	if err != nil {
		t.Fatalf("NewLiteral: %v", err)
	}

	matches, err := l.ScopeRaw("a.b axb")
	if err != nil {
		t.Fatalf("ScopeRaw: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match (literal dot, not regex wildcard), got %d", len(matches))
	}
	if matches[0].Range != (ranges.Range{Start: 0, End: 3}) {
		t.Errorf("got range %+v, want {0 3}", matches[0].Range)
	}
}

func TestNewLiteralEmptyPattern(t *testing.T) {
	t.Parallel()

	l, err := NewLiteral("")
	if err == nil {
		t.Fatalf("expected an error for an empty pattern, got scoper %v", l)
	}
	var buildErr *errs.ScoperBuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected a ScoperBuildError, got %T: %v", err, err)
	}
	if buildErr.Kind != "literal" {
		t.Errorf("got Kind %q, want %q", buildErr.Kind, "literal")
	}
}
