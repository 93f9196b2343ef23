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

import "github.com/smacker/go-tree-sitter/rust"

// RustPrepared names Rust's built-in prepared queries.
type RustPrepared int

const (
	RustComments RustPrepared = iota
	RustDocComments
	RustUses
	RustStrings
)

func (p RustPrepared) query() Query {
	switch p {
	case RustComments:
		return Query{Name: "Comments", Source: `
			[
				(line_comment)+ @line
				(block_comment)
				(#not-match? @line "^///")
			]
			@comment`}
	case RustDocComments:
		return Query{Name: "DocComments", Source: `
			(
				(line_comment)+ @line
				(#match? @line "^///")
			)`}
	case RustUses:
		return Query{Name: "Uses", Source: `
			(scoped_identifier
				path: [
					(scoped_identifier)
					(identifier)
				] @use)
			(scoped_use_list
				path: [
					(scoped_identifier)
					(identifier)
				] @use)
			(use_wildcard (scoped_identifier) @use)`}
	case RustStrings:
		return Query{Name: "Strings", Source: `
			[
				(string_literal)
				(raw_string_literal)
			]
			@string`}
	default:
		return Query{}
	}
}

// NewRust returns a LanguageScoper for Rust using a prepared query.
func NewRust(p RustPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("Rust", []string{"rs"}, nil, rust.GetLanguage(), p.query())
}

// NewRustCustom returns a LanguageScoper for Rust using a custom query string.
func NewRustCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("Rust", []string{"rs"}, nil, rust.GetLanguage(), Query{Source: source})
}
