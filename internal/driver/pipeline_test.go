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
	"testing"

	"github.com/srgn-dev/srgn/internal/action"
	"github.com/srgn-dev/srgn/internal/scope"
	"github.com/srgn-dev/srgn/internal/scoper"
)

func mustRegex(t *testing.T, pattern string) scope.Scoper {
	t.Helper()
	re, err := scoper.NewRegex(pattern)
	if err != nil {
		t.Fatal(err)
	}
	return re
}

func TestPipelineAppliesActionsToScopedContent(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		GeneralScoper: mustRegex(t, "world"),
		Actions:       []scope.Action{action.Upper{}},
	}
	result, err := p.Process("hello world")
	if err != nil {
		t.Fatal(err)
	}
	if want := "hello WORLD"; result.Output != want {
		t.Errorf("got %q, want %q", result.Output, want)
	}
	if !result.Matched {
		t.Error("expected Matched to be true")
	}
}

func TestPipelineNoMatchLeavesContentUnchanged(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		GeneralScoper: mustRegex(t, "xyz"),
		Actions:       []scope.Action{action.Deletion{}},
	}
	result, err := p.Process("hello world")
	if err != nil {
		t.Fatal(err)
	}
	if want := "hello world"; result.Output != want {
		t.Errorf("got %q, want %q", result.Output, want)
	}
	if result.Matched {
		t.Error("expected Matched to be false")
	}
}

func TestPipelineSqueeze(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		GeneralScoper: mustRegex(t, `\s`),
		Squeeze:       true,
		Actions:       []scope.Action{action.Deletion{}},
	}
	// Squeeze alone doesn't replace text; it only drops adjacent in-scope
	// runs before actions run, so a run of 3 spaces collapses to 1 before
	// deletion empties it, leaving one separator's worth of nothing extra.
	result, err := p.Process("a   b")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ab"; result.Output != want {
		t.Errorf("got %q, want %q", result.Output, want)
	}
}

func TestPipelineReplacementWithCapture(t *testing.T) {
	t.Parallel()

	re, err := scoper.NewRegex(`(?P<name>\w+)@example\.com`)
	if err != nil {
		t.Fatal(err)
	}
	p := &Pipeline{
		GeneralScoper: re,
		Actions:       []scope.Action{action.Replacement{Template: "${name} [at] example.com"}},
	}
	result, err := p.Process("contact: alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if want := "contact: alice [at] example.com"; result.Output != want {
		t.Errorf("got %q, want %q", result.Output, want)
	}
}

func TestPipelineSearchMode(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		GeneralScoper: mustRegex(t, "needle"),
		SearchMode:    true,
	}
	result, err := p.Process("hay\nneedle\nhay")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Matched {
		t.Fatal("expected a match")
	}
	if want := "2:needle\n"; stripANSI(result.Output) != want {
		t.Errorf("got %q, want %q", stripANSI(result.Output), want)
	}
}

func TestPipelineOnlyMatching(t *testing.T) {
	t.Parallel()

	p := &Pipeline{
		GeneralScoper: mustRegex(t, `\d+`),
		OnlyMatching:  true,
	}
	result, err := p.Process("a1 b22 c333")
	if err != nil {
		t.Fatal(err)
	}
	if want := "122333"; result.Output != want {
		t.Errorf("got %q, want %q", result.Output, want)
	}
}

// stripANSI removes the color escape codes search mode's auto-style adds,
// so the test can assert on the textual content alone.
func stripANSI(s string) string {
	var out []byte
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0x1b {
			inEscape = true
			continue
		}
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
