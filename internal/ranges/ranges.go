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

// Package ranges implements a small ordered-interval algebra over byte
// offsets: union (merge of touching/overlapping intervals) and
// set-difference. It underlies the scoped view's classification of bytes as
// in-scope or out-of-scope.
package ranges

import "sort"

// Range is a half-open byte interval [Start, End) into some input buffer.
type Range struct {
	Start, End int
}

// Len reports the number of bytes the range spans.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range spans zero bytes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Contains reports whether offset i falls within the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Set is an ordered sequence of ranges. After Merge, a Set is disjoint,
// sorted by Start, and contains no two touching or overlapping ranges: the
// end of one is always strictly less than the start of the next.
type Set []Range

// Insert appends a range to the set without canonicalizing it. Call Merge
// before relying on the sorted/disjoint invariant.
func (s Set) Insert(r Range) Set {
	if r.IsEmpty() {
		return s
	}
	return append(s, r)
}

// Merge sorts the set by Start and folds every touching or overlapping pair
// into a single range, returning a new canonicalized Set. Touching counts as
// overlapping: a range ending where the next begins is coalesced.
func Merge(s Set) Set {
	if len(s) == 0 {
		return nil
	}

	sorted := make(Set, len(s))
	copy(sorted, s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make(Set, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if r.IsEmpty() {
			continue
		}
		if cur.End >= r.Start {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)

	if out[0].IsEmpty() && len(out) > 1 {
		out = out[1:]
	} else if out[0].IsEmpty() {
		return nil
	}
	return out
}

// Difference computes a - b: the portions of every range in a not covered by
// any range in b. Both a and b must already be merged (sorted, disjoint,
// non-touching); passing unmerged input is a precondition violation and
// yields deterministic but unspecified results.
func Difference(a, b Set) Set {
	if len(b) == 0 {
		out := make(Set, len(a))
		copy(out, a)
		return out
	}

	var out Set
	for _, r := range a {
		remaining := []Range{r}
		for _, sub := range b {
			var next []Range
			for _, rem := range remaining {
				next = append(next, subtractOne(rem, sub)...)
			}
			remaining = next
			if len(remaining) == 0 {
				break
			}
		}
		for _, rem := range remaining {
			if !rem.IsEmpty() {
				out = append(out, rem)
			}
		}
	}
	return out
}

// subtractOne removes sub from r, returning zero, one, or two remaining
// pieces of r.
func subtractOne(r, sub Range) []Range {
	if sub.End <= r.Start || sub.Start >= r.End {
		return []Range{r}
	}

	var out []Range
	if sub.Start > r.Start {
		out = append(out, Range{Start: r.Start, End: sub.Start})
	}
	if sub.End < r.End {
		out = append(out, Range{Start: sub.End, End: r.End})
	}
	return out
}
