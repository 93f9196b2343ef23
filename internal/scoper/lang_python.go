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

	"github.com/smacker/go-tree-sitter/python"
)

// PythonPrepared names Python's built-in prepared queries.
type PythonPrepared int

const (
	PythonComments PythonPrepared = iota
	PythonStrings
	PythonImports
	PythonDocStrings
	PythonFunctionNames
	PythonFunctionCalls
	PythonClass
)

func (p PythonPrepared) query() Query {
	switch p {
	case PythonComments:
		return Query{Name: "Comments", Source: "(comment) @comment"}
	case PythonStrings:
		return Query{Name: "Strings", Source: "(string_content) @string"}
	case PythonImports:
		return Query{Name: "Imports", Source: `
			[
				(import_statement
						name: (dotted_name) @dn)
				(import_from_statement
						module_name: (dotted_name) @dn)
				(import_from_statement
						module_name: (dotted_name) @dn
							(wildcard_import))
				(import_statement(
					aliased_import
						name: (dotted_name) @dn))
				(import_from_statement
					module_name: (relative_import) @ri)
			]`}
	case PythonDocStrings:
		return Query{Name: "DocStrings", Source: fmt.Sprintf(`
			(
				(expression_statement
					(string
						(string_start) @%[1]s
						(string_content) @string
						(#match? @%[1]s "^\"\"\"")
					)
				)
			)`, IgnoreSentinel)}
	case PythonFunctionNames:
		return Query{Name: "FunctionNames", Source: `
			(function_definition
				name: (identifier) @function-name
			)`}
	case PythonFunctionCalls:
		return Query{Name: "FunctionCalls", Source: `
			(call
				function: (identifier) @function-name
			)`}
	case PythonClass:
		return Query{Name: "Class", Source: "(class_definition) @class"}
	default:
		return Query{}
	}
}

// NewPython returns a LanguageScoper for Python using a prepared query.
func NewPython(p PythonPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("Python", []string{"py"}, []string{"python", "python3"}, python.GetLanguage(), p.query())
}

// NewPythonCustom returns a LanguageScoper for Python using a custom query string.
func NewPythonCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("Python", []string{"py"}, []string{"python", "python3"}, python.GetLanguage(), Query{Source: source})
}
