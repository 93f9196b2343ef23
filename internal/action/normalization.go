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
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalization renders into Unicode Normalization Form D (decomposing
// precomposed characters like "é" into "e" + combining acute accent), then
// strips the resulting combining marks. "café" becomes "cafe"; "naïve"
// becomes "naive".
type Normalization struct{}

// stripMn is the idiomatic golang.org/x/text recipe for accent stripping:
// decompose (NFD) then remove every rune in the Unicode "Mn" (mark,
// nonspacing) category, built once and reused across calls.
var stripMn = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func (Normalization) Apply(content string) (string, error) {
	result, _, err := transform.String(stripMn, content)
	if err != nil {
		return "", err
	}
	return result, nil
}
