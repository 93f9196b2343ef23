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

	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TypeScriptPrepared names TypeScript's built-in prepared queries. Not
// present in original_source (the upstream srgn supports TypeScript via a
// separate, unretrieved module); spec.md §4.4 names TypeScript as a
// supported language, so this set is modeled directly on the Go/C# sibling
// queries above using tree-sitter-typescript's grammar node names.
type TypeScriptPrepared int

const (
	TypeScriptComments TypeScriptPrepared = iota
	TypeScriptStrings
	TypeScriptImports
	TypeScriptFunctionNames
)

func (p TypeScriptPrepared) query() Query {
	switch p {
	case TypeScriptComments:
		return Query{Name: "Comments", Source: "(comment) @comment"}
	case TypeScriptStrings:
		return Query{Name: "Strings", Source: fmt.Sprintf(`
			[
				(string)
				(template_string (template_substitution) @%[1]s)
			]
			@string`, IgnoreSentinel)}
	case TypeScriptImports:
		return Query{Name: "Imports", Source: `
			(import_statement
				source: (string) @path)`}
	case TypeScriptFunctionNames:
		return Query{Name: "FunctionNames", Source: `
			[
				(function_declaration name: (identifier) @function-name)
				(method_definition name: (property_identifier) @function-name)
			]`}
	default:
		return Query{}
	}
}

// NewTypeScript returns a LanguageScoper for TypeScript using a prepared query.
func NewTypeScript(p TypeScriptPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("TypeScript", []string{"ts"}, nil, typescript.GetLanguage(), p.query())
}

// NewTypeScriptCustom returns a LanguageScoper for TypeScript using a custom query string.
func NewTypeScriptCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("TypeScript", []string{"ts"}, nil, typescript.GetLanguage(), Query{Source: source})
}
