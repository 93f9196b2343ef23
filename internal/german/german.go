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

// Package german implements the locale substitution of spec.md §4.7's
// German action: ASCII digraph spellings of umlauts and the sharp s
// ("oe"/"ae"/"ue"/"ss") are mapped to their proper Unicode forms
// ("ö"/"ä"/"ü"/"ß"), gated by a small embedded word list that lets
// PreferOriginal mode tell a real digraph-spelled word (which should stay
// as typed) from an ASCII keyboard's workaround for an umlaut (which
// should not).
//
// Per spec.md §1's Non-goals, the embedded list is intentionally small — a
// demonstration dictionary, not a production one. Everything beyond it
// falls back to always substituting, since a larger dictionary is an
// external collaborator outside this repo's scope.
package german

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
	"unicode"

	"github.com/coregx/coregex"
)

//go:embed data/words.txt
var wordListData []byte

var wordSet = loadWordSet(wordListData)

func loadWordSet(data []byte) map[string]bool {
	set := make(map[string]bool)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			set[strings.ToLower(w)] = true
		}
	}
	return set
}

// IsKnownWord reports whether word (case-insensitively) is in the embedded
// demonstration dictionary.
func IsKnownWord(word string) bool {
	return wordSet[strings.ToLower(word)]
}

// digraphs maps every supported ASCII spelling to its Unicode substitution,
// longest (none, here — all are two characters) and most-specific first.
// Both cases are listed explicitly because German capitalization of a
// digraph isn't a simple per-rune uppercase of the lowercase mapping (e.g.
// "AE" capitalizes to "Ä", not to two uppercase runes).
var digraphs = []struct {
	ascii   string
	unicode string
}{
	{"ae", "ä"}, {"Ae", "Ä"}, {"AE", "Ä"},
	{"oe", "ö"}, {"Oe", "Ö"}, {"OE", "Ö"},
	{"ue", "ü"}, {"Ue", "Ü"}, {"UE", "Ü"},
	{"ss", "ß"},
}

var digraphRegex = compileDigraphPattern()

func compileDigraphPattern() *coregex.Regex {
	alts := make([]string, len(digraphs))
	for i, d := range digraphs {
		alts[i] = coregex.QuoteMeta(d.ascii)
	}
	re, err := coregex.Compile(strings.Join(alts, "|"))
	if err != nil {
		// The pattern is a fixed alternation of escaped literals; it cannot
		// fail to compile.
		panic(err)
	}
	return re
}

func digraphFor(ascii string) string {
	for _, d := range digraphs {
		if d.ascii == ascii {
			return d.unicode
		}
	}
	return ascii
}

// Substitute performs the digraph replacement across input unconditionally
// (no dictionary check), matching non-overlapping occurrences left to
// right the same way internal/scoper.Literal walks coregex's FindIndex.
func Substitute(input string) string {
	var sb strings.Builder
	b := []byte(input)
	pos := 0
	for pos <= len(b) {
		idx := digraphRegex.FindIndex(b[pos:])
		if idx == nil {
			sb.WriteString(input[pos:])
			break
		}
		start, end := pos+idx[0], pos+idx[1]
		sb.WriteString(input[pos:start])
		sb.WriteString(digraphFor(input[start:end]))
		pos = end
	}
	return sb.String()
}

// HasDigraph reports whether word contains any substitutable ASCII digraph.
func HasDigraph(word string) bool {
	return digraphRegex.MatchString(word)
}

// SplitWords breaks s into alternating letter and non-letter runs, which is
// the granularity PreferOriginal mode makes its keep-or-substitute decision
// at (a whole word, not an isolated digraph).
func SplitWords(s string) []string {
	var words []string
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		isLetter := unicode.IsLetter(runes[i])
		start := i
		for i < len(runes) && unicode.IsLetter(runes[i]) == isLetter {
			i++
		}
		words = append(words, string(runes[start:i]))
	}
	return words
}
