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

// Package symbols implements the greedy, longest-match ASCII-to-Unicode
// symbol substitution table (spec.md §4.8): "--" becomes "–", "->" becomes
// "→", and so on, plus its exact inverse.
package symbols

import "strings"

// Table lists every supported ASCII input sequence alongside its Unicode
// substitution, shorter sequences before longer ones sharing their prefix.
// It exists as documentation only: Invert uses the inverse map below, and
// Substitute itself is a hand-written state machine (see substitute.go)
// rather than a table scan, mirroring the original's own approach.
var Table = []struct {
	ASCII   string
	Unicode rune
}{
	{"--", '–'},
	{"---", '—'},
	{"->", '→'},
	{"-->", '⟶'},
	{"<-", '←'},
	{"<--", '⟵'},
	{"<->", '↔'},
	{"=>", '⇒'},
	{"<=", '≤'},
	{">=", '≥'},
	{"!=", '≠'},
}

// inverse maps each Unicode symbol back to its canonical ASCII sequence.
// Unlike the forward direction, this is unambiguous: every symbol here has
// exactly one ASCII spelling it's substituted from.
var inverse = map[rune]string{
	'–': "--",
	'—': "---",
	'→': "->",
	'⟶': "-->",
	'←': "<-",
	'⟵': "<--",
	'↔': "<->",
	'⇒': "=>",
	'≤': "<=",
	'≥': ">=",
	'≠': "!=",
}

// Invert replaces every occurrence of a supported Unicode symbol with its
// ASCII source sequence. Substituting then inverting returns input that
// holds none of Table's symbols unchanged. Inverting then substituting is
// not always the identity: adjacent symbols can merge into a different
// sequence ("–→" inverts to "--->", which substitutes to "—>").
func Invert(input string) string {
	var out strings.Builder
	out.Grow(len(input))
	for _, r := range input {
		if ascii, ok := inverse[r]; ok {
			out.WriteString(ascii)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
