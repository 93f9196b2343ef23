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

// Package flags declares the srgn command-line surface (spec.md §6) as a
// single cli.FlagSet-backed struct, the way the teacher splits each
// subcommand's flags into their own *Flags type with a Register method.
package flags

import (
	"runtime"

	"github.com/abcxyz/pkg/cli"
	"github.com/posener/complete/v2/predict"
)

// Flags is the fully-parsed command line: scope, actions, scopers, I/O, and
// output-shaping options. There is only one srgn command (no subcommands),
// so unlike the teacher's per-subcommand split, everything lives in one
// struct.
type Flags struct {
	// Positional arguments:

	// Scope is the SCOPE regex/literal pattern. Empty means the global
	// scope (the entire input, spec.md §6).
	Scope string
	// Replacement is the REPLACEMENT positional, present only when the
	// replacement action is enabled.
	Replacement    string
	hasReplacement bool

	// Action flags:

	Upper         bool
	Lower         bool
	Titlecase     bool
	Normalize     bool
	German        bool
	Symbols       bool
	SymbolsInvert bool
	Delete        bool
	Squeeze       bool

	GermanPreferOriginal bool
	GermanNaive          bool

	// Scoper flags (at most one language may be selected, spec.md §6):

	Literal bool

	Python          string
	PythonQuery     string
	Go              string
	GoQuery         string
	Rust            string
	RustQuery       string
	CSharp          string
	CSharpQuery     string
	Hcl             string
	HclQuery        string
	TypeScript      string
	TypeScriptQuery string

	// I/O flags:

	Files           string
	FailEmptyGlob   bool
	Hidden          bool
	Gitignored      bool
	StdinOverrideTo string
	Threads         int

	// Failure triggers:

	FailAny  bool
	FailNone bool

	// Output shaping:

	LineNumbers  bool
	OnlyMatching bool
	PreviewDiff  bool

	// Logging:

	LogLevel string
	Verbose  bool

	// Shell completions:

	Completions string
}

// Register declares every flag section onto set.
func (f *Flags) Register(set *cli.FlagSet) {
	f.registerActionFlags(set)
	f.registerScoperFlags(set)
	f.registerIOFlags(set)
	f.registerOutputFlags(set)
	f.registerMiscFlags(set)

	set.AfterParse(func(existingErr error) error {
		// SCOPE and REPLACEMENT are the only two positionals (spec.md §6);
		// file/directory discovery in walk mode goes through --files
		// rather than bare positional paths, matching the teacher's own
		// preference for explicit glob flags over ambiguous trailing args.
		args := set.Args()
		if len(args) >= 1 {
			f.Scope = args[0]
		}
		if len(args) >= 2 {
			f.Replacement = args[1]
			f.hasReplacement = true
		}
		return existingErr
	})
}

// HasReplacement reports whether a REPLACEMENT positional was given,
// enabling the replacement action (spec.md §6).
func (f *Flags) HasReplacement() bool { return f.hasReplacement }

func (f *Flags) registerActionFlags(set *cli.FlagSet) {
	s := set.NewSection("ACTIONS")

	s.BoolVar(&cli.BoolVar{
		Name:   "upper",
		Aliases: []string{"u"},
		Target: &f.Upper,
		Usage:  "Uppercase the content of every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "lower",
		Aliases: []string{"l"},
		Target: &f.Lower,
		Usage:  "Lowercase the content of every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "titlecase",
		Aliases: []string{"t"},
		Target: &f.Titlecase,
		Usage:  "Titlecase the content of every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "normalize",
		Aliases: []string{"n"},
		Target: &f.Normalize,
		Usage:  "Normalize (NFD-decompose, strip combining marks, NFC-recompose) every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "german",
		Target: &f.German,
		Usage:  "Substitute German digraphs (ae/oe/ue/ss) with their Umlaut/ß equivalents in every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:    "symbols",
		Aliases: []string{"S"},
		Target:  &f.Symbols,
		Usage:   "Replace common symbol sequences (e.g. \"->\") with their Unicode equivalents in every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "invert-symbols",
		Target: &f.SymbolsInvert,
		Usage:  "Invert the --symbols substitution (Unicode symbol back to its ASCII sequence) in every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:    "delete",
		Aliases: []string{"d"},
		Target:  &f.Delete,
		Usage:   "Delete the content of every scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:    "squeeze",
		Aliases: []string{"s"},
		Target:  &f.Squeeze,
		Usage:   "Collapse adjacent in-scope runs to their first occurrence before applying actions.",
	})

	g := set.NewSection("GERMAN OPTIONS")
	g.BoolVar(&cli.BoolVar{
		Name:   "german-prefer-original",
		Target: &f.GermanPreferOriginal,
		Usage:  "When both the original and substituted spelling are valid German words, keep the original (default).",
	})
	g.BoolVar(&cli.BoolVar{
		Name:   "german-naive",
		Target: &f.GermanNaive,
		Usage:  "Always substitute German digraphs, without consulting the dictionary.",
	})
}

func (f *Flags) registerScoperFlags(set *cli.FlagSet) {
	s := set.NewSection("SCOPE OPTIONS")
	s.BoolVar(&cli.BoolVar{
		Name:    "literal-string",
		Aliases: []string{"L"},
		Target:  &f.Literal,
		Usage:   "Treat SCOPE as a literal string instead of a regular expression.",
	})

	l := set.NewSection("LANGUAGE SCOPERS (at most one)")
	l.StringVar(&cli.StringVar{
		Name:    "python",
		Target:  &f.Python,
		Predict: predict.Set([]string{"comments", "strings", "imports", "doc-strings"}),
		Usage:   "Scope Python source using a prepared query: comments|strings|imports|doc-strings.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "python-query",
		Target: &f.PythonQuery,
		Usage:  "Scope Python source using a custom tree-sitter query.",
	})
	l.StringVar(&cli.StringVar{
		Name:    "go",
		Target:  &f.Go,
		Predict: predict.Set([]string{"comments", "strings", "imports", "struct-tags"}),
		Usage:   "Scope Go source using a prepared query: comments|strings|imports|struct-tags.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "go-query",
		Target: &f.GoQuery,
		Usage:  "Scope Go source using a custom tree-sitter query.",
	})
	l.StringVar(&cli.StringVar{
		Name:    "rust",
		Target:  &f.Rust,
		Predict: predict.Set([]string{"comments", "doc-comments", "uses", "strings"}),
		Usage:   "Scope Rust source using a prepared query: comments|doc-comments|uses|strings.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "rust-query",
		Target: &f.RustQuery,
		Usage:  "Scope Rust source using a custom tree-sitter query.",
	})
	l.StringVar(&cli.StringVar{
		Name:    "csharp",
		Target:  &f.CSharp,
		Predict: predict.Set([]string{"comments", "strings", "usings"}),
		Usage:   "Scope C# source using a prepared query: comments|strings|usings.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "csharp-query",
		Target: &f.CSharpQuery,
		Usage:  "Scope C# source using a custom tree-sitter query.",
	})
	l.StringVar(&cli.StringVar{
		Name:    "hcl",
		Target:  &f.Hcl,
		Predict: predict.Set([]string{"variables", "resource-names", "resource-types", "data-names"}),
		Usage:   "Scope HCL source using a prepared query: variables|resource-names|resource-types|data-names.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "hcl-query",
		Target: &f.HclQuery,
		Usage:  "Scope HCL source using a custom tree-sitter query.",
	})
	l.StringVar(&cli.StringVar{
		Name:    "typescript",
		Target:  &f.TypeScript,
		Predict: predict.Set([]string{"comments", "strings", "imports", "function-names"}),
		Usage:   "Scope TypeScript source using a prepared query: comments|strings|imports|function-names.",
	})
	l.StringVar(&cli.StringVar{
		Name:   "typescript-query",
		Target: &f.TypeScriptQuery,
		Usage:  "Scope TypeScript source using a custom tree-sitter query.",
	})
}

func (f *Flags) registerIOFlags(set *cli.FlagSet) {
	s := set.NewSection("I/O OPTIONS")
	s.StringVar(&cli.StringVar{
		Name:    "files",
		Example: "*.go",
		Target:  &f.Files,
		Predict: predict.Files("*"),
		Usage:   "Restrict a file-tree walk to files whose base name matches this glob.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "fail-empty-glob",
		Target: &f.FailEmptyGlob,
		Usage:  "Exit nonzero if --files matched no file.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "hidden",
		Target: &f.Hidden,
		Usage:  "Include hidden (dotfile) paths in a file-tree walk.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "gitignored",
		Target: &f.Gitignored,
		Usage:  "Include paths a .gitignore would otherwise exclude.",
	})
	s.StringVar(&cli.StringVar{
		Name:    "stdin-override-to",
		Target:  &f.StdinOverrideTo,
		Predict: predict.Set([]string{"true", "false"}),
		Usage:   "Force stdin mode on (\"true\") or off (\"false\"), overriding auto-detection.",
	})
	s.IntVar(&cli.IntVar{
		Name:    "threads",
		Target:  &f.Threads,
		Default: runtime.NumCPU(),
		Usage:   "Number of files to process concurrently in walk mode; 1 forces deterministic ordering.",
	})

	p := set.NewSection("FAILURE TRIGGERS")
	p.BoolVar(&cli.BoolVar{
		Name:   "fail-any",
		Target: &f.FailAny,
		Usage:  "Exit nonzero if anything was in scope.",
	})
	p.BoolVar(&cli.BoolVar{
		Name:   "fail-none",
		Target: &f.FailNone,
		Usage:  "Exit nonzero if nothing was in scope.",
	})
}

func (f *Flags) registerOutputFlags(set *cli.FlagSet) {
	s := set.NewSection("OUTPUT OPTIONS")
	s.BoolVar(&cli.BoolVar{
		Name:   "line-numbers",
		Target: &f.LineNumbers,
		Usage:  "Prefix every output line with its 1-based line number.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "only-matching",
		Target: &f.OnlyMatching,
		Usage:  "Print only in-scope content, dropping everything out of scope.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:   "preview-diff",
		Target: &f.PreviewDiff,
		Usage:  "Print a diff of each changed file to stderr before rewriting it (walk mode only).",
	})
}

func (f *Flags) registerMiscFlags(set *cli.FlagSet) {
	s := set.NewSection("LOGGING OPTIONS")
	s.StringVar(&cli.StringVar{
		Name:    "log-level",
		Example: "info",
		Target:  &f.LogLevel,
		Predict: predict.Set([]string{"debug", "info", "warn", "error"}),
		Usage:   "How verbose to log; any of debug|info|warn|error.",
	})
	s.BoolVar(&cli.BoolVar{
		Name:    "verbose",
		Aliases: []string{"v"},
		Target:  &f.Verbose,
		Usage:   "Shorthand for --log-level=debug.",
	})

	c := set.NewSection("SHELL COMPLETIONS")
	c.StringVar(&cli.StringVar{
		Name:    "completions",
		Target:  &f.Completions,
		Predict: predict.Set([]string{"bash", "zsh", "fish"}),
		Usage:   "Print a shell completion script for the given shell and exit.",
	})
}
