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

	"github.com/srgn-dev/srgn/flags"
	"github.com/srgn-dev/srgn/internal/action"
	"github.com/srgn-dev/srgn/internal/driver"
	"github.com/srgn-dev/srgn/internal/scope"
	"github.com/srgn-dev/srgn/internal/scoper"
)

// buildPipeline resolves parsed flags into a driver.Pipeline: the language
// scoper (at most one), the general scope pattern, the ordered action list,
// and the output-shaping switches.
func buildPipeline(f *flags.Flags) (*driver.Pipeline, error) {
	langScoper, err := languageScoper(f)
	if err != nil {
		return nil, err
	}

	generalScoper, err := generalScoper(f)
	if err != nil {
		return nil, err
	}

	actions, err := actionList(f)
	if err != nil {
		return nil, err
	}

	searchMode := len(actions) == 0 && langScoper != nil

	return &driver.Pipeline{
		LanguageScoper: langScoper,
		GeneralScoper:  generalScoper,
		Squeeze:        f.Squeeze,
		Actions:        actions,
		SearchMode:     searchMode,
		LineNumbers:    f.LineNumbers,
		OnlyMatching:   f.OnlyMatching,
	}, nil
}

// generalScoper builds the SCOPE positional's scoper: a literal matcher if
// -L was given, else a regex. A \r\n split at the end of one of its
// matches is left to scope.Builder.Build's DOS-line-ending repair. An empty
// SCOPE means the global scope: no general scoper runs at all, equivalent
// to scoper.Composite{}'s "match everything" rule.
func generalScoper(f *flags.Flags) (scope.Scoper, error) {
	if f.Scope == "" {
		return nil, nil
	}

	var s scope.Scoper
	var err error
	if f.Literal {
		s, err = scoper.NewLiteral(f.Scope)
	} else {
		s, err = scoper.NewRegex(f.Scope)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// languageScoper builds the at-most-one language scoper selected by flags,
// preferring a custom query over a prepared one when both are given for the
// same language.
func languageScoper(f *flags.Flags) (scope.Scoper, error) {
	selected := 0
	var s scope.Scoper
	var err error

	use := func(built scope.Scoper, buildErr error) {
		selected++
		s, err = built, buildErr
	}

	switch {
	case f.PythonQuery != "":
		use(scoper.NewPythonCustom(f.PythonQuery))
	case f.Python != "":
		p, perr := parsePythonPrepared(f.Python)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewPython(p))
	}
	switch {
	case f.GoQuery != "":
		use(scoper.NewGoCustom(f.GoQuery))
	case f.Go != "":
		p, perr := parseGoPrepared(f.Go)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewGo(p))
	}
	switch {
	case f.RustQuery != "":
		use(scoper.NewRustCustom(f.RustQuery))
	case f.Rust != "":
		p, perr := parseRustPrepared(f.Rust)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewRust(p))
	}
	switch {
	case f.CSharpQuery != "":
		use(scoper.NewCSharpCustom(f.CSharpQuery))
	case f.CSharp != "":
		p, perr := parseCSharpPrepared(f.CSharp)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewCSharp(p))
	}
	switch {
	case f.HclQuery != "":
		use(scoper.NewHclCustom(f.HclQuery))
	case f.Hcl != "":
		p, perr := parseHclPrepared(f.Hcl)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewHcl(p))
	}
	switch {
	case f.TypeScriptQuery != "":
		use(scoper.NewTypeScriptCustom(f.TypeScriptQuery))
	case f.TypeScript != "":
		p, perr := parseTypeScriptPrepared(f.TypeScript)
		if perr != nil {
			return nil, perr
		}
		use(scoper.NewTypeScript(p))
	}

	if selected > 1 {
		return nil, fmt.Errorf("at most one language scoper may be selected, got %d", selected)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// actionList builds the ordered action list from flags. Action flags are
// booleans with no position, so the order is fixed: deletion, upper, lower,
// titlecase, normalization, German, symbols, symbols inversion, and the
// replacement last.
func actionList(f *flags.Flags) ([]scope.Action, error) {
	var actions []scope.Action

	if f.Delete {
		actions = append(actions, action.Deletion{})
	}
	if f.Upper {
		actions = append(actions, action.Upper{})
	}
	if f.Lower {
		actions = append(actions, action.Lower{})
	}
	if f.Titlecase {
		actions = append(actions, action.Titlecase{})
	}
	if f.Normalize {
		actions = append(actions, action.Normalization{})
	}
	if f.German {
		mode := action.PreferOriginal
		if f.GermanNaive {
			mode = action.Naive
		}
		actions = append(actions, action.German{Mode: mode})
	}
	if f.Symbols {
		actions = append(actions, action.Symbols{})
	}
	if f.SymbolsInvert {
		actions = append(actions, action.SymbolsInversion{})
	}
	if f.HasReplacement() {
		actions = append(actions, action.Replacement{Template: f.Replacement})
	}

	return actions, nil
}
