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

package main

import (
	"fmt"

	"github.com/srgn-dev/srgn/internal/scoper"
)

func parsePythonPrepared(name string) (scoper.PythonPrepared, error) {
	switch name {
	case "comments":
		return scoper.PythonComments, nil
	case "strings":
		return scoper.PythonStrings, nil
	case "imports":
		return scoper.PythonImports, nil
	case "doc-strings":
		return scoper.PythonDocStrings, nil
	default:
		return 0, fmt.Errorf("unknown --python value %q", name)
	}
}

func parseGoPrepared(name string) (scoper.GoPrepared, error) {
	switch name {
	case "comments":
		return scoper.GoComments, nil
	case "strings":
		return scoper.GoStrings, nil
	case "imports":
		return scoper.GoImports, nil
	case "struct-tags":
		return scoper.GoStructTags, nil
	default:
		return 0, fmt.Errorf("unknown --go value %q", name)
	}
}

func parseRustPrepared(name string) (scoper.RustPrepared, error) {
	switch name {
	case "comments":
		return scoper.RustComments, nil
	case "doc-comments":
		return scoper.RustDocComments, nil
	case "uses":
		return scoper.RustUses, nil
	case "strings":
		return scoper.RustStrings, nil
	default:
		return 0, fmt.Errorf("unknown --rust value %q", name)
	}
}

func parseCSharpPrepared(name string) (scoper.CSharpPrepared, error) {
	switch name {
	case "comments":
		return scoper.CSharpComments, nil
	case "strings":
		return scoper.CSharpStrings, nil
	case "usings":
		return scoper.CSharpUsings, nil
	default:
		return 0, fmt.Errorf("unknown --csharp value %q", name)
	}
}

func parseHclPrepared(name string) (scoper.HclPrepared, error) {
	switch name {
	case "variables":
		return scoper.HclVariables, nil
	case "resource-names":
		return scoper.HclResourceNames, nil
	case "resource-types":
		return scoper.HclResourceTypes, nil
	case "data-names":
		return scoper.HclDataNames, nil
	default:
		return 0, fmt.Errorf("unknown --hcl value %q", name)
	}
}

func parseTypeScriptPrepared(name string) (scoper.TypeScriptPrepared, error) {
	switch name {
	case "comments":
		return scoper.TypeScriptComments, nil
	case "strings":
		return scoper.TypeScriptStrings, nil
	case "imports":
		return scoper.TypeScriptImports, nil
	case "function-names":
		return scoper.TypeScriptFunctionNames, nil
	default:
		return 0, fmt.Errorf("unknown --typescript value %q", name)
	}
}
