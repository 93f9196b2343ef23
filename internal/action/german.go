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

import "github.com/srgn-dev/srgn/internal/german"

// GermanMode selects how German decides between an ASCII digraph spelling
// and its substituted Unicode form.
type GermanMode int

const (
	// PreferOriginal keeps a word as typed whenever both its original and
	// substituted spellings are valid dictionary words (e.g. "Masse" vs
	// "Maße" — substituting would silently change meaning), and otherwise
	// substitutes.
	PreferOriginal GermanMode = iota
	// Naive always substitutes, skipping the dictionary check entirely.
	Naive
)

// German is the locale substitution action of spec.md §4.7.
type German struct {
	Mode GermanMode
}

func (g German) Apply(content string) (string, error) {
	if g.Mode == Naive {
		return german.Substitute(content), nil
	}

	words := german.SplitWords(content)
	var sb []byte
	for _, w := range words {
		if !german.HasDigraph(w) {
			sb = append(sb, w...)
			continue
		}

		substituted := german.Substitute(w)
		if german.IsKnownWord(w) && german.IsKnownWord(substituted) {
			sb = append(sb, w...)
		} else {
			sb = append(sb, substituted...)
		}
	}
	return string(sb), nil
}
