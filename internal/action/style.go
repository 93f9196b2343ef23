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

	"github.com/fatih/color"
)

// Style wraps in-scope content in ANSI escape codes for a foreground color,
// background color, and any number of text attributes (bold, underline,
// ...). It operates split-inclusive on "\n": that's the only way terminal
// coloring gets a chance to reset after each line and relaunch correctly on
// the next one, otherwise escape codes dragged across a line boundary can
// fail to render in some terminals. This encodes knowledge Style arguably
// shouldn't have, but the view's AsLines already exists for exactly this,
// so the line split happens here via splitInclusiveNewline on a style-local
// basis rather than threading scope.View through this package.
type Style struct {
	FG         color.Attribute
	HasFG      bool
	BG         color.Attribute
	HasBG      bool
	Attributes []color.Attribute
}

func (s Style) Apply(content string) (string, error) {
	attrs := make([]color.Attribute, 0, len(s.Attributes)+2)
	if s.HasFG {
		attrs = append(attrs, s.FG)
	}
	if s.HasBG {
		attrs = append(attrs, s.BG)
	}
	attrs = append(attrs, s.Attributes...)
	c := color.New(attrs...)

	lines := splitInclusiveNewline(content)
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(c.Sprint(line))
	}
	return sb.String(), nil
}

// splitInclusiveNewline splits s on "\n", keeping it attached to the end of
// the preceding line, mirroring scope.View.AsLines' split-inclusive
// semantics at the single-scope granularity Style operates on.
func splitInclusiveNewline(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
