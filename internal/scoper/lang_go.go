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

package scoper

import (
	"fmt"

	"github.com/smacker/go-tree-sitter/golang"
)

// GoPrepared names Go's built-in prepared queries.
type GoPrepared int

const (
	GoComments GoPrepared = iota
	GoStrings
	GoImports
	GoStructTags
)

func (p GoPrepared) query() Query {
	switch p {
	case GoComments:
		return Query{Name: "Comments", Source: "(comment) @comment"}
	case GoStrings:
		return Query{Name: "Strings", Source: fmt.Sprintf(`
			[
				(raw_string_literal)
				(interpreted_string_literal)
				(import_spec (interpreted_string_literal) @%[1]s)
				(field_declaration tag: (raw_string_literal) @%[1]s)
			]
			@string`, IgnoreSentinel)}
	case GoImports:
		return Query{Name: "Imports", Source: `(import_spec path: (interpreted_string_literal) @path)`}
	case GoStructTags:
		return Query{Name: "StructTags", Source: `(field_declaration tag: (raw_string_literal) @tag)`}
	default:
		return Query{}
	}
}

// NewGo returns a LanguageScoper for Go using a prepared query.
func NewGo(p GoPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("Go", []string{"go"}, nil, golang.GetLanguage(), p.query())
}

// NewGoCustom returns a LanguageScoper for Go using a custom query string.
func NewGoCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("Go", []string{"go"}, nil, golang.GetLanguage(), Query{Source: source})
}
