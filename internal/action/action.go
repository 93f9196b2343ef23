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

// Package action implements the ten content transforms of spec.md §4.7/§4.8,
// every one of them a scope.Action (and, for Replacement, a
// scope.ContextAction).
package action

// Deletion removes every in-scope character. It is the simplest action:
// whatever is in scope disappears.
type Deletion struct{}

// Apply always returns the empty string: deletion has no partial form.
func (Deletion) Apply(string) (string, error) {
	return "", nil
}
