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

import "testing"

func TestNormalization(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"café":      "cafe",
		"naïve":     "naive",
		"Müller":    "Muller",
		"plain":     "plain",
		"Zürich":    "Zurich",
	}
	for input, want := range cases {
		got, err := Normalization{}.Apply(input)
		if err != nil {
			t.Fatalf("Normalization.Apply(%q) error: %v", input, err)
		}
		if got != want {
			t.Errorf("Normalization.Apply(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizationIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"café", "hello", "naïve résumé"} {
		once, err := Normalization{}.Apply(s)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Normalization{}.Apply(once)
		if err != nil {
			t.Fatal(err)
		}
		if once != twice {
			t.Errorf("Normalization not idempotent on %q: %q != %q", s, once, twice)
		}
	}
}
