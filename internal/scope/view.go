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
	"strings"

	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/ranges"
)

// Builder constructs a read-only partition of an input string by repeatedly
// narrowing it with Scopers. It starts with the entire input marked In scope.
// Call Build to freeze it into a writable View.
type Builder struct {
	scopes []Scope
	viewee string
}

// NewBuilder returns a Builder over the entire input, initially all In scope.
func NewBuilder(input string) *Builder {
	b := &Builder{viewee: input}
	if len(input) > 0 {
		b.scopes = []Scope{{
			Kind:    In,
			Content: input,
			Range:   ranges.Range{Start: 0, End: len(input)},
		}}
	}
	return b
}

// Explode narrows every In scope currently in the builder using scoper,
// replacing each with a finer partition of In/Out scopes. Out scopes are
// carried through unchanged (narrowing is monotone: what's Out never comes
// back). Returns an InvariantViolationError if the result cannot be
// concatenated back into the original input, which indicates a scoper bug.
func (b *Builder) Explode(scoper Scoper) error {
	next := make([]Scope, 0, len(b.scopes))

	for _, s := range b.scopes {
		if s.Range.IsEmpty() {
			continue
		}

		if s.Kind == Out {
			next = append(next, s)
			continue
		}

		matches, err := scoper.ScopeRaw(s.Content)
		if err != nil {
			return err
		}

		exploded, err := explodeOne(s, matches)
		if err != nil {
			return err
		}
		next = append(next, exploded...)
	}

	b.scopes = next
	return b.checkReconstruction()
}

// explodeOne classifies every byte of s.Content as In (covered by some raw
// match) or Out, carrying context from the covering match, and emits the
// resulting contiguous runs translated back to s.Range's (global) offsets.
func explodeOne(s Scope, matches []RangeMatch) ([]Scope, error) {
	content := s.Content
	n := len(content)
	if n == 0 {
		return nil, nil
	}

	covered := make([]bool, n)
	covering := make([]*Context, n)
	normalized := normalize(matches, n)
	for _, m := range normalized {
		for i := m.Range.Start; i < m.Range.End; i++ {
			covered[i] = true
			covering[i] = m.Ctx
		}
	}

	var out []Scope
	runStart := 0
	for i := 1; i <= n; i++ {
		boundary := i == n || covered[i] != covered[runStart] || covering[i] != covering[runStart]
		if !boundary {
			continue
		}

		kind := Out
		var ctx *Context
		if covered[runStart] {
			kind = In
			ctx = covering[runStart]
		}

		out = append(out, Scope{
			Kind:    kind,
			Content: content[runStart:i],
			Range:   ranges.Range{Start: s.Range.Start + runStart, End: s.Range.Start + i},
			Ctx:     ctx,
		})
		runStart = i
	}

	return out, nil
}

// normalize sorts raw matches by start offset, clamps them to [0, n), drops
// empty ranges, and merges any that overlap (the earlier one's context wins,
// matching leftmost-match precedence of the underlying scopers).
func normalize(matches []RangeMatch, n int) []RangeMatch {
	clamped := make([]RangeMatch, 0, len(matches))
	for _, m := range matches {
		r := m.Range
		if r.Start < 0 {
			r.Start = 0
		}
		if r.End > n {
			r.End = n
		}
		if r.IsEmpty() {
			continue
		}
		clamped = append(clamped, RangeMatch{Range: r, Ctx: m.Ctx})
	}

	sortRangeMatches(clamped)

	var out []RangeMatch
	for _, m := range clamped {
		if len(out) > 0 && m.Range.Start < out[len(out)-1].Range.End {
			last := &out[len(out)-1]
			if m.Range.End > last.Range.End {
				last.Range.End = m.Range.End
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

func sortRangeMatches(m []RangeMatch) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && m[j].Range.Start < m[j-1].Range.Start; j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}

// checkReconstruction verifies the current scopes concatenate back to the
// original input byte-for-byte. This is the only programmatic assertion
// failure in the core: a violation means a scoper is buggy.
func (b *Builder) checkReconstruction() error {
	var sb strings.Builder
	for _, s := range b.scopes {
		sb.WriteString(s.Content)
	}
	if sb.String() != b.viewee {
		return &errs.InvariantViolationError{
			Detail: "exploding scopes produced a view that does not reconstruct the original input",
		}
	}
	return nil
}

// Build applies the DOS-line-ending repair and freezes the builder into a
// writable View.
func (b *Builder) Build() (*View, error) {
	if err := b.applyDosFix(); err != nil {
		return nil, err
	}
	return &View{scopes: b.scopes}, nil
}

// applyDosFix inspects adjacent In/Out pairs for a split CRLF (an In ending
// in \r followed by an Out starting with \n) and, if found, moves the
// trailing \r out of the In scope and prepends it to the following Out
// scope, coalescing the CRLF into a single out-of-scope unit. Scopers have
// no visibility past the boundary of the segment they're given, so this
// repair is done directly at the builder level rather than through the
// generic Scoper/explode machinery; see internal/scoper.DosFix for the
// general-purpose, single-segment variant of the same idea.
func (b *Builder) applyDosFix() error {
	for i := 0; i+1 < len(b.scopes); i++ {
		left, right := b.scopes[i], b.scopes[i+1]
		if left.Kind != In || right.Kind != Out {
			continue
		}
		if !strings.HasSuffix(left.Content, "\r") || !strings.HasPrefix(right.Content, "\n") {
			continue
		}

		newLeftContent := left.Content[:len(left.Content)-1]
		newRightContent := left.Content[len(left.Content)-1:] + right.Content
		newRight := Scope{
			Kind:    Out,
			Content: newRightContent,
			Range:   ranges.Range{Start: left.Range.End - 1, End: right.Range.End},
		}

		if newLeftContent == "" {
			b.scopes = append(b.scopes[:i], append([]Scope{newRight}, b.scopes[i+2:]...)...)
		} else {
			newLeft := Scope{
				Kind:    In,
				Content: newLeftContent,
				Range:   ranges.Range{Start: left.Range.Start, End: left.Range.End - 1},
				Ctx:     left.Ctx,
			}
			b.scopes = append(b.scopes[:i], append([]Scope{newLeft, newRight}, b.scopes[i+2:]...)...)
		}

		return b.checkReconstruction()
	}
	return nil
}

// Action is a pure content transform applied to each In scope. Most actions
// are context-free and infallible; Apply covers that case uniformly (errors
// are always nil for such actions, but the signature stays uniform so View.Map
// doesn't need a separate infallible path).
type Action interface {
	Apply(content string) (string, error)
}

// ContextAction is an Action that can additionally use the match context
// (full match plus named/numbered capture groups) of the scope it is
// applied to. Replacement is the one action in spec.md that needs this;
// everything else only ever implements Action.
type ContextAction interface {
	Action
	ApplyWithContext(content string, ctx *Context) (string, error)
}

// View is a frozen, writable scoped partition of some input. It is produced
// by Builder.Build and supports squeezing, line-splitting, and mapping
// actions over its In scopes.
type View struct {
	scopes []Scope
}

// Scopes returns the current scope sequence in original byte order. Callers
// must not mutate the returned slice's elements' Range.
func (v *View) Scopes() []Scope {
	return v.scopes
}

// HasAnyInScope reports whether any scope in the view is currently In.
func (v *View) HasAnyInScope() bool {
	for _, s := range v.scopes {
		if s.Kind == In {
			return true
		}
	}
	return false
}

// Squeeze removes any In scope that is immediately preceded by another In
// scope, keeping only the first of each run. Contexts of dropped scopes are
// discarded. Out scopes are untouched.
func (v *View) Squeeze() {
	if len(v.scopes) == 0 {
		return
	}

	out := make([]Scope, 0, len(v.scopes))
	prevIn := false
	for _, s := range v.scopes {
		if s.Kind == In && prevIn {
			continue
		}
		out = append(out, s)
		prevIn = s.Kind == In
	}
	v.scopes = out
}

// AsLines splits the view at \n boundaries using split-inclusive semantics
// (the \n stays attached to the line it terminates): each scope's content is
// sliced on newlines, the first chunk joins the current (last) line, and
// every subsequent chunk starts a new line. In/Out status and context are
// preserved per chunk.
func (v *View) AsLines() []*View {
	var lines []*View
	var current []Scope

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, &View{scopes: current})
			current = nil
		}
	}

	for _, s := range v.scopes {
		chunks := splitInclusive(s.Content, '\n')
		offset := s.Range.Start
		for i, chunk := range chunks {
			if chunk == "" {
				continue
			}
			piece := Scope{
				Kind:    s.Kind,
				Content: chunk,
				Range:   ranges.Range{Start: offset, End: offset + len(chunk)},
				Ctx:     s.Ctx,
			}
			offset += len(chunk)

			if i > 0 {
				flush()
			}
			current = append(current, piece)

			if strings.HasSuffix(chunk, "\n") {
				flush()
			}
		}
	}
	flush()

	return lines
}

// splitInclusive splits s on every occurrence of sep, keeping sep attached to
// the end of the preceding chunk (unlike strings.Split, which discards it).
func splitInclusive(s string, sep byte) []string {
	if s == "" {
		return nil
	}

	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// Map applies action to every In scope's content, replacing Content with the
// result while preserving Range and Ctx. When useContext is true and a scope
// carries context, and action implements ContextAction, the context-aware
// method is used; this may fail (e.g. a replacement references an undefined
// capture group), and the first such failure aborts the map. Scopes are
// processed in original byte order.
func (v *View) Map(action Action, useContext bool) error {
	for i := range v.scopes {
		s := &v.scopes[i]
		if s.Kind != In {
			continue
		}

		var (
			result string
			err    error
		)
		if ca, ok := action.(ContextAction); ok && useContext && s.Ctx != nil {
			result, err = ca.ApplyWithContext(s.Content, s.Ctx)
		} else {
			result, err = action.Apply(s.Content)
		}
		if err != nil {
			return err
		}
		s.Content = result
	}
	return nil
}

// Render concatenates all scope contents in order, producing the view's
// current text.
func (v *View) Render() string {
	var sb strings.Builder
	for _, s := range v.scopes {
		sb.WriteString(s.Content)
	}
	return sb.String()
}
