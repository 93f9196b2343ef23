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

package action

import (
	"strings"

	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/scope"
)

// Replacement is the one context-aware action: its Template string is
// parsed for back-references to capture groups — "$1", "$name", "${1}",
// "${name}" — each resolved against the scope's Context at apply time and
// substituted in; "$$" escapes to a literal "$". A reference to a group
// that didn't participate in the match is an error, per spec.md §4.7 and
// §7's "action build error" (raised lazily, at apply time, because capture
// knowledge is per-match).
//
// This is grounded on the teacher's regex-name-lookup action
// (templates/commands/render/action_regexnamelookup.go), which resolves
// named capture groups against template variables; the difference here is
// that the scoper (not this action) already did the regex match and
// attached its Context, so Replacement only needs to parse its own template
// string and look references up — there's no regexp.Expand call, since
// Context.Group covers both named and positional lookups uniformly and
// regexp.Expand only understands $name/${name}, not the distinct "$1 means
// group 1" vs "$one means group named one" disambiguation spec.md asks for.
type Replacement struct {
	Template string
}

// Apply treats the template as if no context were available: every
// back-reference fails with UndefinedCaptureError, since there's nothing to
// resolve them against. Scopers that attach no context (Literal carries
// only a whole-match, LanguageScoper carries none) still go through
// ApplyWithContext via View.Map whenever the scope has *some* context; this
// path only triggers for the unusual case of a context-free scope reaching
// a Replacement action directly.
func (r Replacement) Apply(content string) (string, error) {
	return r.ApplyWithContext(content, nil)
}

// ApplyWithContext substitutes every back-reference in Template using ctx,
// ignoring content itself (the replacement fully replaces what was in
// scope, it doesn't transform it).
func (r Replacement) ApplyWithContext(_ string, ctx *scope.Context) (string, error) {
	var sb strings.Builder
	runes := []rune(r.Template)
	i := 0
	for i < len(runes) {
		if runes[i] != '$' || i+1 >= len(runes) {
			sb.WriteRune(runes[i])
			i++
			continue
		}

		next := runes[i+1]
		switch {
		case next == '$':
			sb.WriteByte('$')
			i += 2

		case next == '{':
			end := i + 2
			for end < len(runes) && runes[end] != '}' {
				end++
			}
			if end >= len(runes) {
				// Unterminated "${": treat literally, no group to resolve.
				sb.WriteRune(runes[i])
				i++
				continue
			}
			id := string(runes[i+2 : end])
			val, ok := ctx.Group(id)
			if !ok {
				return "", &errs.UndefinedCaptureError{Group: id}
			}
			sb.WriteString(val)
			i = end + 1

		case isDigit(next):
			// Positional reference: a greedy run of digits. "$1x" is group
			// "1" followed by the literal "x", not group "1x".
			end := i + 1
			for end < len(runes) && isDigit(runes[end]) {
				end++
			}
			id := string(runes[i+1 : end])
			val, ok := ctx.Group(id)
			if !ok {
				return "", &errs.UndefinedCaptureError{Group: id}
			}
			sb.WriteString(val)
			i = end

		case isIdentRune(next):
			// Named reference: a run of identifier characters.
			end := i + 1
			for end < len(runes) && isIdentRune(runes[end]) {
				end++
			}
			id := string(runes[i+1 : end])
			val, ok := ctx.Group(id)
			if !ok {
				return "", &errs.UndefinedCaptureError{Group: id}
			}
			sb.WriteString(val)
			i = end

		default:
			sb.WriteRune(runes[i])
			i++
		}
	}
	return sb.String(), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r)
}
