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
	"unicode"
)

// Upper renders in Unicode uppercase, with the German sharp-s ß pre-mapped
// to capital ẞ. stdlib's strings.ToUpper alone would map ß to "SS", losing
// the 1:1 character correspondence the capital ẞ (U+1E9E) exists to
// preserve, so the substitution happens first.
type Upper struct{}

func (Upper) Apply(content string) (string, error) {
	return strings.ToUpper(strings.ReplaceAll(content, "ß", "ẞ")), nil
}

// Lower renders in Unicode lowercase.
type Lower struct{}

func (Lower) Apply(content string) (string, error) {
	return strings.ToLower(content), nil
}

// Titlecase renders in titlecase per English conventions: the first and
// last word of the input are always capitalized; everything else is
// capitalized unless it's a "small word" (article, conjunction, or short
// preposition) that stays lowercase mid-phrase. Words that already contain
// internal capitals (e.g. an acronym or "miXeD caSe") are left untouched,
// matching the observed behavior of the reference titlecase crate this is
// ported from.
type Titlecase struct{}

// smallWords stays lowercase unless first or last in the input. This is the
// conventional English titlecase small-words list (articles, coordinating
// conjunctions, and short prepositions).
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "en": true, "for": true, "if": true, "in": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "v": true, "v.": true,
	"via": true, "vs": true, "vs.": true, "nor": true, "per": true,
}

func (Titlecase) Apply(content string) (string, error) {
	words := splitWords(content)
	for i, w := range words {
		if w.sep {
			continue
		}
		words[i].text = titlecaseWord(w.text, i == firstWordIndex(words), i == lastWordIndex(words))
	}
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.text)
	}
	return sb.String(), nil
}

type wordPiece struct {
	text string
	sep  bool // true if this piece is whitespace/punctuation between words
}

// splitWords breaks content into alternating word and separator pieces,
// splitting on whitespace. Punctuation stays attached to its neighboring
// word (e.g. "dog's" and "🐕" stay intact), matching the reference
// implementation's word-boundary behavior.
func splitWords(content string) []wordPiece {
	var pieces []wordPiece
	runes := []rune(content)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			start := i
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			pieces = append(pieces, wordPiece{text: string(runes[start:i]), sep: true})
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		pieces = append(pieces, wordPiece{text: string(runes[start:i])})
	}
	return pieces
}

func firstWordIndex(words []wordPiece) int {
	for i, w := range words {
		if !w.sep {
			return i
		}
	}
	return -1
}

func lastWordIndex(words []wordPiece) int {
	for i := len(words) - 1; i >= 0; i-- {
		if !words[i].sep {
			return i
		}
	}
	return -1
}

// titlecaseWord capitalizes a single word unless it's mixed-case already
// (has a non-initial uppercase letter, left alone as presumably
// intentional) or it's a small word not in first/last position.
func titlecaseWord(word string, isFirst, isLast bool) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	// Leading punctuation (e.g. a straight quote) shouldn't block
	// capitalization of the letter after it.
	letterStart := 0
	for letterStart < len(runes) && !unicode.IsLetter(runes[letterStart]) {
		letterStart++
	}
	if letterStart == len(runes) {
		return word
	}

	core, coreStart := wordCore(runes, letterStart)

	if hasInternalUpper(core) {
		return word
	}

	lower := strings.ToLower(core)
	if !isFirst && !isLast && smallWords[lower] {
		return string(runes[:coreStart]) + lower + string(runes[coreStart+len([]rune(core)):])
	}

	capitalized := capitalizeFirst(lower)
	return string(runes[:coreStart]) + capitalized + string(runes[coreStart+len([]rune(core)):])
}

// wordCore extracts the run of letters (and internal apostrophes, e.g.
// "dog's") starting at letterStart, stopping at trailing punctuation/emoji.
func wordCore(runes []rune, letterStart int) (string, int) {
	end := letterStart
	for end < len(runes) && (unicode.IsLetter(runes[end]) || (runes[end] == '\'' && end+1 < len(runes) && unicode.IsLetter(runes[end+1]))) {
		end++
	}
	return string(runes[letterStart:end]), letterStart
}

func hasInternalUpper(core string) bool {
	runes := []rune(core)
	for i, r := range runes {
		if i == 0 {
			continue
		}
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
