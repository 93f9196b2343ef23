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

package symbols

import "strings"

// Substitute performs the greedy, single-pass, longest-match symbol
// substitution of spec.md §4.8. It reads input one rune at a time, looking
// ahead as far as a candidate sequence allows and backtracking by exactly
// one rune ("pushback") whenever the lookahead doesn't pan out — e.g.
// having read "--" and then a rune that's neither "-" nor ">" means only
// the en dash substitution applies, and the just-read rune must be put back
// for the next iteration to consider.
//
// A run of "https://" absorbs runes verbatim (no substitution happens
// inside it) up to the next space or quote, so that URLs survive symbol
// substitution unmangled; seeing "https://" and then immediately running
// out of input without a following space/quote also leaves everything
// absorbed so far untouched (the "pivot point" case in the test table:
// "https://->" is emitted as-is, since by the time "->" is reached the
// scanner is already inside URL-absorption mode and never re-enters the
// dash/arrow states for it).
func Substitute(input string) string {
	runes := []rune(input)
	pos := 0
	var out strings.Builder
	out.Grow(len(input))

outer:
	for {
		var stack []rune

		fetch := func() (rune, bool) {
			if pos >= len(runes) {
				out.WriteString(string(stack))
				return 0, false
			}
			r := runes[pos]
			pos++
			stack = append(stack, r)
			return r, true
		}
		undo := func() {
			pos--
			stack = stack[:len(stack)-1]
		}
		replace := func(r rune) {
			stack = stack[:0]
			stack = append(stack, r)
		}

		c, ok := fetch()
		if !ok {
			break outer
		}

		switch c {
		case '-':
			c2, ok := fetch()
			if !ok {
				break outer
			}
			switch c2 {
			case '-':
				// Be greedy, could be the last character.
				replace('–')
				c3, ok := fetch()
				if !ok {
					break outer
				}
				switch c3 {
				case '-':
					replace('—')
				case '>':
					replace('⟶')
				default:
					undo()
				}
			case '>':
				replace('→')
			default:
				undo()
			}

		case '<':
			c2, ok := fetch()
			if !ok {
				break outer
			}
			switch c2 {
			case '-':
				// Be greedy, could be the last character.
				replace('←')
				c3, ok := fetch()
				if !ok {
					break outer
				}
				switch c3 {
				case '-':
					replace('⟵')
				case '>':
					replace('↔')
				default:
					undo()
				}
			case '=':
				replace('≤')
			default:
				undo()
			}

		case '>':
			c2, ok := fetch()
			if !ok {
				break outer
			}
			if c2 == '=' {
				replace('≥')
			} else {
				undo()
			}

		case '!':
			c2, ok := fetch()
			if !ok {
				break outer
			}
			if c2 == '=' {
				replace('≠')
			} else {
				undo()
			}

		case '=':
			c2, ok := fetch()
			if !ok {
				break outer
			}
			if c2 == '>' {
				replace('⇒')
			} else {
				undo()
			}

		case 'h':
			if !absorbURL(fetch, undo) {
				break outer
			}

		default:
			// No substitution; stack holds just c, flushed below.
		}

		out.WriteString(string(stack))
	}

	return out.String()
}

// absorbURL implements the "h" branch: only a literal "https://" prefix
// triggers URL absorption; anything else backtracks one rune at a time via
// undo, exactly like every other branch. Returns false if input ran out
// before the branch resolved (caller must then stop entirely, matching the
// 'outer-labeled fetch in the original).
func absorbURL(fetch func() (rune, bool), undo func()) bool {
	for _, want := range []rune{'t', 't', 'p', 's', ':', '/', '/'} {
		c, ok := fetch()
		if !ok {
			return false
		}
		if c != want {
			undo()
			return true
		}
	}

	for {
		c, ok := fetch()
		if !ok {
			return false
		}
		if c == ' ' || c == '"' {
			return true
		}
	}
}
