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

	"github.com/smacker/go-tree-sitter/hcl"
)

// HclPrepared names HCL's built-in prepared queries. Several of these use
// tree-sitter's `@a.b` capture-name syntax (undocumented but accepted) to
// keep the sentinel capture name unique across the whole query, per
// original_source/src/scoping/langs/hcl.rs's comment on the subject.
type HclPrepared int

const (
	HclVariables HclPrepared = iota
	HclResourceNames
	HclResourceTypes
	HclDataNames
	HclDataSources
	HclComments
	HclStrings
)

func (p HclPrepared) query() Query {
	switch p {
	case HclVariables:
		return Query{Name: "Variables", Source: fmt.Sprintf(`
			[
				(block
					(identifier) @%[1]s.declaration
					(string_lit (template_literal) @name.declaration)
					(#match? @%[1]s.declaration "variable")
				)
				(
					(variable_expr
						(identifier) @%[1]s.usage
						(#match? @%[1]s.usage "var")
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]`, IgnoreSentinel)}
	case HclResourceNames:
		return Query{Name: "ResourceNames", Source: fmt.Sprintf(`
			[
				(block
					(identifier) @%[1]s.declaration
					(string_lit)
					(string_lit (template_literal) @name.declaration)
					(#match? @%[1]s.declaration "resource")
				)
				(
					(variable_expr
						(identifier) @%[1]s.usage
						(#not-any-of? @%[1]s.usage
							"var"
							"data"
							"count"
							"module"
							"local"
						)
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]`, IgnoreSentinel)}
	case HclResourceTypes:
		return Query{Name: "ResourceTypes", Source: fmt.Sprintf(`
			[
				(block
					(identifier) @%[1]s.declaration
					(string_lit (template_literal) @name.type)
					(string_lit)
					(#match? @%[1]s.declaration "resource")
				)
				(
					(variable_expr
						.
						(identifier) @name.usage
						(#not-any-of? @name.usage
							"var"
							"data"
							"count"
							"module"
							"local"
						)
					)
					.
					(get_attr
						(identifier)
					)
				)
			]`, IgnoreSentinel)}
	case HclDataNames:
		return Query{Name: "DataNames", Source: fmt.Sprintf(`
			[
				(block
					(identifier) @%[1]s.declaration
					(string_lit)
					(string_lit (template_literal) @name.declaration)
					(#match? @%[1]s.declaration "data")
				)
				(
					(variable_expr
						(identifier) @%[1]s.usage
						(#match? @%[1]s.usage "data")
					)
					.
					(get_attr
						(identifier)
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]`, IgnoreSentinel)}
	case HclDataSources:
		return Query{Name: "DataSources", Source: fmt.Sprintf(`
			[
				(block
					(identifier) @%[1]s.declaration
					(string_lit (template_literal) @name.provider)
					(string_lit)
					(#match? @%[1]s.declaration "data")
				)
				(
					(variable_expr
						(identifier) @%[1]s.usage
						(#match? @%[1]s.usage "data")
					)
					.
					(get_attr
						(identifier) @name.provider
					)
					.
					(get_attr
						(identifier)
					)
				)
			]`, IgnoreSentinel)}
	case HclComments:
		return Query{Name: "Comments", Source: "(comment) @comment"}
	case HclStrings:
		return Query{Name: "Strings", Source: `
			[
				(literal_value
					(string_lit
						(template_literal) @string.literal
					)
				)
				(quoted_template
					(template_literal) @string.template_literal
				)
				(heredoc_template
					(template_literal) @string.heredoc_literal
				)
			]`}
	default:
		return Query{}
	}
}

// NewHcl returns a LanguageScoper for HCL using a prepared query.
func NewHcl(p HclPrepared) (*LanguageScoper, error) {
	return NewLanguageScoper("HCL", []string{"hcl", "tf"}, nil, hcl.GetLanguage(), p.query())
}

// NewHclCustom returns a LanguageScoper for HCL using a custom query string.
func NewHclCustom(source string) (*LanguageScoper, error) {
	return NewLanguageScoper("HCL", []string{"hcl", "tf"}, nil, hcl.GetLanguage(), Query{Source: source})
}
