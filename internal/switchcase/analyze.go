// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package switchcase

import (
	"cmp"
	"context"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/stmtsema/apint"
	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
)

// caseValue is a case bound converted to the type of the switch condition.
type caseValue struct {
	value apint.Int
	stmt  *ast.CaseStmt
}

// Analyze checks the case labels of a completed switch statement.
//
// Scalar values and ranges are sorted separately, so duplicates are adjacent scalars and
// overlaps are found by binary search. Any conflict invalidates the whole switch; the
// offending case is not removed.
func Analyze(ctx context.Context, sink diag.Sink, sw *ast.SwitchStmt) (valid bool) {
	defer trace.StartRegion(ctx, "SwitchCases").End()

	typ := sw.Cond.Type()
	if !typ.IsInteger() {
		sink.Report(diag.New(diag.RequiresInteger, sw.Cond.Pos(), typ.String()).WithRange(sw.Cond))

		return false
	}

	width, signed := typ.Width(), typ.IsSigned()
	valid = true

	var (
		first   *ast.DefaultStmt
		scalars []caseValue
		ranges  []caseValue
	)

	for _, c := range sw.Cases {
		switch c := c.(type) {
		case *ast.DefaultStmt:
			if first != nil {
				sink.Report(diag.New(diag.MultipleDefault, c.Default).
					WithNote(diag.FirstLabel, first.Default))

				valid = false

				continue
			}

			first = c

		case *ast.CaseStmt:
			c.Lo = convert(sink, c.Lo, width, signed, c.LHS)

			if c.IsRange() {
				ranges = append(ranges, caseValue{value: c.Lo, stmt: c})
			} else {
				scalars = append(scalars, caseValue{value: c.Lo, stmt: c})
			}
		}
	}

	slices.SortStableFunc(scalars, func(a, b caseValue) int {
		return cmp.Or(a.value.Cmp(b.value), cmp.Compare(a.stmt.LHS.Pos(), b.stmt.LHS.Pos()))
	})

	for i := 1; i < len(scalars); i++ {
		prev, cur := scalars[i-1], scalars[i]
		if prev.value.Cmp(cur.value) != 0 {
			continue
		}

		sink.Report(diag.New(diag.DuplicateCase, cur.stmt.LHS.Pos(), cur.value.String()).
			WithRange(cur.stmt.LHS).
			WithNote(diag.PreviousCase, prev.stmt.LHS.Pos()))

		valid = false
	}

	if len(ranges) == 0 {
		return valid
	}

	nonEmpty := ranges[:0]
	for _, r := range ranges {
		c := r.stmt
		c.Hi = convert(sink, c.Hi, width, signed, c.RHS)

		if c.Lo.Cmp(c.Hi) > 0 {
			sink.Report(diag.New(diag.CaseEmptyRange, c.LHS.Pos()).WithRange(span{c.LHS.Pos(), c.RHS.End()}))

			continue
		}

		nonEmpty = append(nonEmpty, r)
	}

	ranges = nonEmpty

	slices.SortStableFunc(ranges, func(a, b caseValue) int { return a.value.Cmp(b.value) })

	for i, r := range ranges {
		if overlap, ok := findOverlap(scalars, ranges, i); ok {
			sink.Report(diag.New(diag.DuplicateCase, r.stmt.LHS.Pos(), overlap.value.String()).
				WithRange(r.stmt.LHS).
				WithNote(diag.PreviousCase, overlap.stmt.Pos()))

			valid = false
		}
	}

	return valid
}

// findOverlap returns the case value overlapping the range at index i, if any.
// Later checks take precedence.
func findOverlap(scalars, ranges []caseValue, i int) (overlap caseValue, found bool) {
	lo, hi := ranges[i].stmt.Lo, ranges[i].stmt.Hi

	// first scalar >= lo
	low, _ := slices.BinarySearchFunc(scalars, lo, func(e caseValue, t apint.Int) int { return e.value.Cmp(t) })
	if low < len(scalars) && scalars[low].value.Cmp(hi) < 0 {
		overlap, found = scalars[low], true
	}

	// first scalar > hi
	high, _ := slices.BinarySearchFunc(scalars[low:], hi, func(e caseValue, t apint.Int) int {
		if e.value.Cmp(t) <= 0 {
			return -1
		}

		return 1
	})
	if high += low; high > 0 && scalars[high-1].value.Cmp(lo) >= 0 {
		overlap, found = scalars[high-1], true
	}

	if i > 0 {
		if prev := ranges[i-1].stmt; lo.Cmp(prev.Hi) <= 0 {
			overlap, found = caseValue{value: prev.Hi, stmt: prev}, true
		}
	}

	return overlap, found
}

func convert(sink diag.Sink, v apint.Int, width uint, signed bool, at ast.Expr) apint.Int {
	r, over, ok := apint.Renormalize(v, width, signed)
	if ok {
		sink.Report(diag.New(diag.CaseOverflow, at.Pos(), over.From.String(), over.To.String()).WithRange(at))
	}

	return r
}
