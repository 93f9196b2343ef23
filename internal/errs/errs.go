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

// Package errs contains error types shared across srgn's packages. It's
// named this way to avoid colliding with "errors" (stdlib), "error" (a
// builtin type), and "err" (a common variable name).
package errs

import "fmt"

// ScoperBuildError wraps a failure constructing a scoper: an invalid regex,
// an empty literal, or an invalid tree-sitter query.
type ScoperBuildError struct {
	Kind    string // "regex", "literal", "language"
	Detail  string
	Wrapped error
}

func (e *ScoperBuildError) Error() string {
	return fmt.Sprintf("failed to build %s scoper: %s", e.Kind, e.Detail)
}

func (e *ScoperBuildError) Unwrap() error { return e.Wrapped }

func (e *ScoperBuildError) Is(other error) bool {
	_, ok := other.(*ScoperBuildError)
	return ok
}

// UndefinedCaptureError is returned when a replacement string references a
// capture group (by name or index) that did not participate in the match.
type UndefinedCaptureError struct {
	Group string
}

func (e *UndefinedCaptureError) Error() string {
	return fmt.Sprintf("replacement references undefined capture group %q", e.Group)
}

func (e *UndefinedCaptureError) Is(other error) bool {
	_, ok := other.(*UndefinedCaptureError)
	return ok
}

// InvariantViolationError indicates a scoper produced ranges that, after
// explode, fail to reconstruct the original input byte-for-byte. This means
// the scoper is buggy; it is the only programmatic assertion failure in the
// core view pipeline.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation in scoped view (this is a bug, please report it): %s", e.Detail)
}

func (e *InvariantViolationError) Is(other error) bool {
	_, ok := other.(*InvariantViolationError)
	return ok
}

// PolicyError is returned when a --fail-any/--fail-none/--fail-empty-glob
// user policy is triggered.
type PolicyError struct {
	Detail string
}

func (e *PolicyError) Error() string { return e.Detail }

func (e *PolicyError) Is(other error) bool {
	_, ok := other.(*PolicyError)
	return ok
}
