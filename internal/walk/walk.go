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

// Package walk implements spec.md §4.9/§5's directory discovery: a
// recursive, hidden-file- and gitignore-aware file walker feeding the
// driver's worker pool. It mirrors the teacher's walkAndModify
// (templates/common/render/action.go) in spirit — recurse, dedupe, visit —
// but as a pure path-discovery step, since srgn's per-file read/transform/
// write cycle (including --preview-diff) lives in internal/driver instead.
package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/karrick/godirwalk"
	ignore "github.com/sabhiram/go-gitignore"
)

// Options configures a walk.
type Options struct {
	// Glob, if non-empty, restricts results to paths whose base name
	// matches this glob pattern (spec.md's --files GLOB).
	Glob string
	// Hidden includes dotfiles and dot-directories when true; by default
	// they're skipped, matching common recursive-search tool conventions
	// (ripgrep, fd) that the spec's --hidden flag opts out of.
	Hidden bool
	// Gitignored includes files a .gitignore would otherwise exclude when
	// true. By default, a candidate's own directory and every ancestor up to
	// the filesystem root is checked for a .gitignore and matches are
	// excluded.
	Gitignored bool
}

// Walk recursively discovers regular files under roots (each of which may
// itself be a single file), applying Options' filters, and returns the
// matched paths sorted for deterministic output. A file reachable through
// more than one root is only returned once.
func Walk(roots []string, opts Options) ([]string, error) {
	var compiled glob.Glob
	if opts.Glob != "" {
		g, err := glob.Compile(opts.Glob, '/')
		if err != nil {
			return nil, err
		}
		compiled = g
	}

	ignoreCache := newGitignoreCache()
	seen := make(map[string]bool)
	var out []string

	visit := func(path string, isDir bool) error {
		if seen[path] {
			return nil
		}

		if !opts.Hidden && hasHiddenComponent(path) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !opts.Gitignored && ignoreCache.isIgnored(path) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			return nil
		}

		if compiled != nil && !compiled.Match(filepath.Base(path)) {
			return nil
		}

		seen[path] = true
		out = append(out, path)
		return nil
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if err := visit(root, false); err != nil && err != filepath.SkipDir {
				return nil, err
			}
			continue
		}

		err = godirwalk.Walk(root, &godirwalk.Options{
			Callback: func(osPathname string, de *godirwalk.Dirent) error {
				return visit(osPathname, de.IsDir())
			},
			Unsorted: true,
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

// hasHiddenComponent reports whether any path component (other than "." or
// "..") starts with a dot.
func hasHiddenComponent(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// gitignoreCache lazily loads and caches the .gitignore found in each
// directory a path is checked against, so a deep tree doesn't re-read the
// same .gitignore file once per descendant.
type gitignoreCache struct {
	perDir map[string]*ignore.GitIgnore
}

func newGitignoreCache() *gitignoreCache {
	return &gitignoreCache{perDir: make(map[string]*ignore.GitIgnore)}
}

// isIgnored reports whether path is excluded by a .gitignore in path's own
// directory or any ancestor, checked from the nearest directory outward (a
// closer .gitignore's rule wins, matching real git behavior for the common
// non-overriding case).
func (c *gitignoreCache) isIgnored(path string) bool {
	dir := filepath.Dir(path)
	for {
		if gi := c.gitignoreFor(dir); gi != nil && gi.MatchesPath(path) {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return false
}

func (c *gitignoreCache) gitignoreFor(dir string) *ignore.GitIgnore {
	if gi, ok := c.perDir[dir]; ok {
		return gi
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		gi = nil
	}
	c.perDir[dir] = gi
	return gi
}
