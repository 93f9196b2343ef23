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

package action

import (
	"errors"
	"testing"

	"github.com/srgn-dev/srgn/internal/errs"
	"github.com/srgn-dev/srgn/internal/scope"
)

func TestReplacementPositional(t *testing.T) {
	t.Parallel()

	ctx := &scope.Context{
		FullMatch: "2024-01-15",
		Groups:    map[string]string{"0": "2024-01-15", "1": "2024", "2": "01", "3": "15"},
	}
	r := Replacement{Template: "$3/$2/$1"}
	got, err := r.ApplyWithContext("2024-01-15", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := "15/01/2024"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplacementNamed(t *testing.T) {
	t.Parallel()

	ctx := &scope.Context{
		FullMatch: "Alice",
		Groups:    map[string]string{"0": "Alice", "1": "Alice", "person": "Alice"},
	}
	r := Replacement{Template: "Hello, ${person}!"}
	got, err := r.ApplyWithContext("Alice", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Hello, Alice!"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplacementDollarEscape(t *testing.T) {
	t.Parallel()

	r := Replacement{Template: "$$5 and $$$1"}
	ctx := &scope.Context{Groups: map[string]string{"1": "free"}}
	got, err := r.ApplyWithContext("", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := "$5 and $free"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplacementDigitsGreedyStop(t *testing.T) {
	t.Parallel()

	r := Replacement{Template: "$1x"}
	ctx := &scope.Context{Groups: map[string]string{"1": "A"}}
	got, err := r.ApplyWithContext("", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Ax"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplacementUndefinedCapture(t *testing.T) {
	t.Parallel()

	r := Replacement{Template: "$missing"}
	ctx := &scope.Context{Groups: map[string]string{}}
	_, err := r.ApplyWithContext("", ctx)
	if err == nil {
		t.Fatal("expected error for undefined capture group")
	}
	var target *errs.UndefinedCaptureError
	if !errors.As(err, &target) {
		t.Errorf("error %v is not an UndefinedCaptureError", err)
	}
}

func TestReplacementApplyWithoutContext(t *testing.T) {
	t.Parallel()

	r := Replacement{Template: "$1"}
	_, err := r.Apply("irrelevant")
	if err == nil {
		t.Fatal("expected error when no context is available")
	}
}
