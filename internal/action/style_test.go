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
	"testing"

	"github.com/fatih/color"
)

func TestStyleWrapsEachLineIndependently(t *testing.T) {
	t.Parallel()
	color.NoColor = false

	s := Style{FG: color.FgRed, HasFG: true}
	got, err := s.Apply("one\ntwo\n")
	if err != nil {
		t.Fatal(err)
	}

	// Each line gets its own reset sequence rather than one spanning both.
	if count := strings.Count(got, "\x1b[0m"); count != 2 {
		t.Errorf("expected 2 reset sequences (one per line), got %d in %q", count, got)
	}
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("expected original text preserved, got %q", got)
	}
}

func TestStyleNoAttributesPassesThroughText(t *testing.T) {
	t.Parallel()
	color.NoColor = true

	s := Style{}
	got, err := s.Apply("plain text")
	if err != nil {
		t.Fatal(err)
	}
	if want := "plain text"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
