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

import "testing"

func TestSubstituteBaseCases(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":    "",
		" ":   " ",
		"--":  "–",
		"---": "—",
		"->":  "→",
		"-->": "⟶",
		"<-":  "←",
		"<--": "⟵",
		"<->": "↔",
		"=>":  "⇒",
		"<=":  "≤",
		">=":  "≥",
		"!=":  "≠",
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSubstituteNeighboringSingleLetter(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"A-": "A-", "A--": "A–", "A---": "A—",
		"-A": "-A", "--A": "–A", "---A": "—A",
		"A->": "A→", "A-->": "A⟶", "A<->": "A↔", "A=>": "A⇒",
		"<-A": "←A", "<--A": "⟵A", "=>A": "⇒A",
		"A<=": "A≤", "A>=": "A≥", "A!=": "A≠",
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSubstituteSentences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"I breathe -- I live.":    "I breathe – I live.",
		"To think---to breathe.":  "To think—to breathe.",
		"A joke --> A laugh.":     "A joke ⟶ A laugh.",
		"A <= B => C":             "A ≤ B ⇒ C",
		"->In->Out->":             "→In→Out→",
		"A -- B":                  "A – B",
		"A --- B":                 "A — B",
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSubstituteDisruptingSymbols(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"-X-":       "-X-",
		"--X--":     "–X–",
		"---X---":   "—X—",
		"-X>":       "-X>",
		"->X->":     "→X→",
		"--X-->":    "–X⟶",
		"---X-->":   "—X⟶",
		"<-X-":      "←X-",
		"<--X--":    "⟵X–",
		"<--X-->":   "⟵X⟶",
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSubstituteAmbiguousSequences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"----":      "—-",
		"-----":     "—–",
		"------":    "——",
		">->":       ">→",
		"->->":      "→→",
		"->-->":     "→⟶",
		"->--->":    "→—>",
		"->--->->":  "→—>→",
		"<-<-":      "←←",
		"<-<--":     "←⟵",
		"<-<---":    "←⟵-",
		"<-<---<":   "←⟵-<",
		"<->->":     "↔→",
		"<-<->->":   "←↔→",
		"<=<=":      "≤≤",
		"<=<=<=":    "≤≤≤",
		">=>=":      "≥≥",
		">=>=>=":    "≥≥≥",
		">=<=":      "≥≤",
		">=<=<=":    "≥≤≤",
		"!=!=":      "≠≠",
		"!=!=!=":    "≠≠≠",
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSubstituteExistingSymbolsPassThrough(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"–", "—", "→", "←", "⟶", "⟵", "↔", "⇒", "≠", "≤", "≥"} {
		if got := Substitute(s); got != s {
			t.Errorf("Substitute(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestSubstituteURLs(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://www.example.com":     "https://www.example.com",
		"https://www.example.com/":    "https://www.example.com/",
		"https://www.example.com/->":  "https://www.example.com/->",
		`"https://www.example.com/"->`: `"https://www.example.com/"→`,
		"https://www.example.com/ ->": "https://www.example.com/ →",
		"h->":                         "h→",
		"ht->":                        "ht→",
		"htt->":                       "htt→",
		"http->":                      "http→",
		"https->":                     "https→",
		"https:->":                    "https:→",
		"https:/->":                   "https:/→",
		"https://->":                  "https://->", // pivot point: already inside absorption
	}
	for input, want := range cases {
		if got := Substitute(input); got != want {
			t.Errorf("Substitute(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestInvertIsInverseOfSubstitute(t *testing.T) {
	t.Parallel()

	for _, ascii := range []string{"--", "---", "->", "-->", "<-", "<--", "<->", "=>", "<=", ">=", "!="} {
		substituted := Substitute(ascii)
		if got := Invert(substituted); got != ascii {
			t.Errorf("Invert(Substitute(%q)) = %q, want %q", ascii, got, ascii)
		}
	}
}

func TestInvertPassesThroughUnknownRunes(t *testing.T) {
	t.Parallel()

	if got, want := Invert("hello → world, unrelated"), "hello -> world, unrelated"; got != want {
		t.Errorf("Invert = %q, want %q", got, want)
	}
}
