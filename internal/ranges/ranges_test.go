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

package ranges

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Set
		want Set
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   Set{{0, 5}},
			want: Set{{0, 5}},
		},
		{
			name: "touching is merged",
			in:   Set{{0, 5}, {5, 10}},
			want: Set{{0, 10}},
		},
		{
			name: "overlapping is merged",
			in:   Set{{0, 5}, {3, 10}},
			want: Set{{0, 10}},
		},
		{
			name: "disjoint stays disjoint",
			in:   Set{{0, 5}, {6, 10}},
			want: Set{{0, 5}, {6, 10}},
		},
		{
			name: "out of order input",
			in:   Set{{6, 10}, {0, 5}},
			want: Set{{0, 5}, {6, 10}},
		},
		{
			name: "fully contained range collapses",
			in:   Set{{0, 10}, {2, 4}},
			want: Set{{0, 10}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Merge(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Set
		want Set
	}{
		{
			name: "no subtrahend",
			a:    Set{{0, 10}},
			b:    nil,
			want: Set{{0, 10}},
		},
		{
			name: "subtract middle leaves two pieces",
			a:    Set{{0, 10}},
			b:    Set{{3, 5}},
			want: Set{{0, 3}, {5, 10}},
		},
		{
			name: "subtract prefix",
			a:    Set{{0, 10}},
			b:    Set{{0, 3}},
			want: Set{{3, 10}},
		},
		{
			name: "subtract suffix",
			a:    Set{{0, 10}},
			b:    Set{{7, 10}},
			want: Set{{0, 7}},
		},
		{
			name: "subtract all",
			a:    Set{{0, 10}},
			b:    Set{{0, 10}},
			want: nil,
		},
		{
			name: "subtract superset",
			a:    Set{{3, 7}},
			b:    Set{{0, 10}},
			want: nil,
		},
		{
			name: "disjoint subtrahend is no-op",
			a:    Set{{0, 5}},
			b:    Set{{10, 20}},
			want: Set{{0, 5}},
		},
		{
			name: "multiple b ranges carve multiple holes",
			a:    Set{{0, 20}},
			b:    Set{{2, 4}, {10, 12}},
			want: Set{{0, 2}, {4, 10}, {12, 20}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Difference(tc.a, tc.b)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRangeHelpers(t *testing.T) {
	t.Parallel()

	r := Range{Start: 2, End: 5}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if r.IsEmpty() {
		t.Errorf("IsEmpty() = true, want false")
	}
	if !r.Contains(2) || !r.Contains(4) || r.Contains(5) || r.Contains(1) {
		t.Errorf("Contains() boundary behavior wrong")
	}
	if !(Range{3, 3}).IsEmpty() {
		t.Errorf("zero-length range should be empty")
	}
}
