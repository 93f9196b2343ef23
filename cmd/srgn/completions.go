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
	"io"
	"os"
	"path/filepath"
)

// printCompletions writes a shell completion script for shell to w. Flag
// completion itself is driven by the posener/complete/v2 predictors
// registered on each flags.Flags field (see flags/flags.go); what differs
// per shell is only the boilerplate that wires COMP_LINE/COMP_POINT into
// an invocation of this same binary, which is what gets printed here.
func printCompletions(w io.Writer, shell string) error {
	bin := filepath.Base(os.Args[0])

	switch shell {
	case "bash":
		fmt.Fprintf(w, "complete -C %s %s\n", os.Args[0], bin)
	case "zsh":
		fmt.Fprintf(w, "autoload -U compinit && compinit\ncomplete -o nospace -C %s %s\n", os.Args[0], bin)
	case "fish":
		fmt.Fprintf(w, "function __complete_%s\n    set -lx COMP_LINE (commandline -cp)\n    %s\nend\ncomplete -f -c %s -a '(__complete_%s)'\n", bin, os.Args[0], bin, bin)
	default:
		return fmt.Errorf("unknown --completions shell %q, want one of bash|zsh|fish", shell)
	}
	return nil
}
