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

	"github.com/smacker/go-tree-sitter/csharp"
)

// CSharpPrepared names C#'s built-in prepared queries.
type CSharpPrepared int

const (
	CSharpComments CSharpPrepared = iota
	CSharpStrings
	CSharpUsings
)

func (p CSharpPrepared) query() Query {
	switch p {
	case CSharpComments:
		return Query{Name: "Comments", Source: "(comment) @comment"}
	case CSharpUsings:
		return Query{Name: "Usings", Source: `(using_directive [(identifier) (qualified_name)] @import)`}
	case CSharpStrings:
		return Query{Name: "Strings", Source: fmt.Sprintf(`
			[
				(interpolated_string_expression (interpolation) @%[1]s)
				(string_literal)
				(raw_string_literal)
				(verbatim_string_literal)
			]
			@string`, IgnoreSentinel)}
	default:
		return Query{}
	}
}

// NewCSharp returns a LanguageScoper for C# using a prepared query.
func NewCSharp(p CSharpPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("C#", []string{"cs"}, nil, csharp.GetLanguage(), p.query())
}

// NewCSharpCustom returns a LanguageScoper for C# using a custom query string.
func NewCSharpCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("C#", []string{"cs"}, nil, csharp.GetLanguage(), Query{Source: source})
}
