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

package scope

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/srgn-dev/srgn/internal/ranges"
)

// regexScoper is a minimal stdlib-regexp-backed Scoper used only by these
// tests, so internal/scope can be tested without an import cycle on
// internal/scoper.
type regexScoper struct {
	re *regexp.Regexp
}

func (s regexScoper) ScopeRaw(input string) ([]RangeMatch, error) {
	idxs := s.re.FindAllStringIndex(input, -1)
	out := make([]RangeMatch, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, RangeMatch{Range: ranges.Range{Start: idx[0], End: idx[1]}})
	}
	return out, nil
}

func render(v *View) string { return v.Render() }

func TestExplodeReconstructs(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"hello world",
		"foo bar foo bar",
		"line one\nline two\r\n",
		"über café",
	}

	for _, input := range cases {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder(input)
			if err := b.Explode(regexScoper{re: regexp.MustCompile(`[a-z]+`)}); err != nil {
				t.Fatalf("Explode: %v", err)
			}
			v, err := b.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got := render(v); got != input {
				t.Errorf("render mismatch: got %q want %q", got, input)
			}
		})
	}
}

func TestExplodeClassification(t *testing.T) {
	t.Parallel()

	b := NewBuilder("foo bar baz")
	if err := b.Explode(regexScoper{re: regexp.MustCompile(`ba.`)}); err != nil {
		t.Fatalf("Explode: %v", err)
	}
	v, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var got []string
	for _, s := range v.scopes {
		got = append(got, s.Kind.String()+":"+s.Content)
	}
	want := []string{"out:foo ", "in:bar", "out: ", "in:baz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scopes mismatch (-want +got):\n%s", diff)
	}
}

func TestSqueeze(t *testing.T) {
	t.Parallel()

	v := &View{scopes: []Scope{
		{Kind: In, Content: "a", Range: ranges.Range{Start: 0, End: 1}},
		{Kind: In, Content: "b", Range: ranges.Range{Start: 1, End: 2}},
		{Kind: Out, Content: " ", Range: ranges.Range{Start: 2, End: 3}},
		{Kind: In, Content: "c", Range: ranges.Range{Start: 3, End: 4}},
	}}
	v.Squeeze()

	var got []string
	for _, s := range v.scopes {
		got = append(got, s.Content)
	}
	want := []string{"a", " ", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("squeeze mismatch (-want +got):\n%s", diff)
	}
}

func TestHasAnyInScope(t *testing.T) {
	t.Parallel()

	allOut := &View{scopes: []Scope{{Kind: Out, Content: "x"}}}
	if allOut.HasAnyInScope() {
		t.Error("expected no in-scope scopes")
	}

	mixed := &View{scopes: []Scope{{Kind: Out, Content: "x"}, {Kind: In, Content: "y"}}}
	if !mixed.HasAnyInScope() {
		t.Error("expected an in-scope scope")
	}
}

func TestAsLines(t *testing.T) {
	t.Parallel()

	b := NewBuilder("foo\nbar baz\nqux")
	if err := b.Explode(regexScoper{re: regexp.MustCompile(`ba.`)}); err != nil {
		t.Fatalf("Explode: %v", err)
	}
	v, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	lines := v.AsLines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := []string{"foo\n", "bar baz\n", "qux"}
	for i, line := range lines {
		if got := render(line); got != want[i] {
			t.Errorf("line %d: got %q want %q", i, got, want[i])
		}
	}
}

type upperAction struct{}

func (upperAction) Apply(content string) (string, error) { return strings.ToUpper(content), nil }

func TestMap(t *testing.T) {
	t.Parallel()

	b := NewBuilder("foo bar baz")
	if err := b.Explode(regexScoper{re: regexp.MustCompile(`ba.`)}); err != nil {
		t.Fatalf("Explode: %v", err)
	}
	v, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := v.Map(upperAction{}, false); err != nil {
		t.Fatalf("Map: %v", err)
	}
	if got, want := render(v), "foo BAR BAZ"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDosFixCoalescesSplitCRLF(t *testing.T) {
	t.Parallel()

	// A scoper that ends a match right at a \r, right before an out-of-scope
	// \n, is the exact bug applyDosFix repairs.
	b := NewBuilder("ab\r\ncd")
	if err := b.Explode(regexScoper{re: regexp.MustCompile(`ab\r`)}); err != nil {
		t.Fatalf("Explode: %v", err)
	}
	v, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for i, s := range v.scopes {
		if s.Kind == In && (len(s.Content) == 0 || s.Content[len(s.Content)-1] == '\r') {
			t.Errorf("scope %d: In scope must not end with a bare \\r after DOS fix: %q", i, s.Content)
		}
	}
	if got, want := render(v), "ab\r\ncd"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
