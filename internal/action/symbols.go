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

import "github.com/srgn-dev/srgn/internal/symbols"

// Symbols replaces ASCII arrow/comparison sequences ("->", "!=", ...) with
// their Unicode equivalents, per the greedy longest-match algorithm in
// internal/symbols.
type Symbols struct{}

func (Symbols) Apply(content string) (string, error) {
	return symbols.Substitute(content), nil
}

// SymbolsInversion is the exact inverse of Symbols over its supported
// symbol set.
type SymbolsInversion struct{}

func (SymbolsInversion) Apply(content string) (string, error) {
	return symbols.Invert(content), nil
}
