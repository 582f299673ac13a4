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

package switchcase_test

import (
	"go/token"
	"slices"
	"testing"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	. "fillmore-labs.com/stmtsema/internal/switchcase"
	"fillmore-labs.com/stmtsema/internal/testsource"
)

// label describes a case label: a scalar when lo == hi and !rng, a range otherwise.
type label struct {
	lo, hi int64
	rng    bool
	def    bool
}

func scalar(v int64) label   { return label{lo: v, hi: v} }
func rng(lo, hi int64) label { return label{lo: lo, hi: hi, rng: true} }
func dflt() label            { return label{def: true} }

func buildSwitch(cond *testsource.Type, labels ...label) *ast.SwitchStmt {
	sw := &ast.SwitchStmt{Switch: 1, Cond: testsource.Var(8, "x", cond)}

	pos := token.Pos(20)
	for _, l := range labels {
		if l.def {
			sw.Cases = append(sw.Cases, &ast.DefaultStmt{Default: pos, Colon: pos + 7})
			pos += 20

			continue
		}

		lhs := testsource.Const(pos+5, l.lo, testsource.Int32)
		c := &ast.CaseStmt{Case: pos, LHS: lhs, Colon: pos + 15, Lo: *lhs.Value}

		if l.rng {
			rhs := testsource.Const(pos+10, l.hi, testsource.Int32)
			c.Ellipsis, c.RHS, c.Hi = pos+8, rhs, *rhs.Value
		}

		sw.Cases = append(sw.Cases, c)
		pos += 20
	}

	return sw
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		cond   *testsource.Type
		labels []label
		valid  bool
		ids    []diag.ID
	}{
		{"duplicate_scalar", testsource.Int32, []label{scalar(1), scalar(1)}, false, []diag.ID{diag.DuplicateCase}},
		{"scalar_before_range", testsource.Int32, []label{scalar(1), rng(3, 5)}, true, nil},
		{"scalar_in_range", testsource.Int32, []label{scalar(4), rng(3, 5)}, false, []diag.ID{diag.DuplicateCase}},
		{"scalar_at_range_end", testsource.Int32, []label{scalar(5), rng(3, 5)}, false, []diag.ID{diag.DuplicateCase}},
		{"scalar_at_range_start", testsource.Int32, []label{rng(3, 5), scalar(3)}, false, []diag.ID{diag.DuplicateCase}},
		{"single_value_range", testsource.Int32, []label{scalar(5), rng(5, 5)}, false, []diag.ID{diag.DuplicateCase}},
		{"adjacent_ranges", testsource.Int32, []label{rng(1, 3), rng(4, 6)}, true, nil},
		{"overlapping_ranges", testsource.Int32, []label{rng(1, 5), rng(3, 8)}, false, []diag.ID{diag.DuplicateCase}},
		{"empty_range", testsource.Int32, []label{rng(5, 2)}, true, []diag.ID{diag.CaseEmptyRange}},
		{"empty_range_no_overlap", testsource.Int32, []label{scalar(3), rng(5, 2)}, true, []diag.ID{diag.CaseEmptyRange}},
		{"multiple_default", testsource.Int32, []label{dflt(), scalar(1), dflt()}, false, []diag.ID{diag.MultipleDefault}},
		{"single_default", testsource.Int32, []label{scalar(1), dflt(), rng(2, 9), scalar(10)}, true, nil},
		{"triple_duplicate", testsource.Int32, []label{scalar(7), scalar(7), scalar(7)}, false, []diag.ID{diag.DuplicateCase, diag.DuplicateCase}},
		{"negative_values", testsource.Int32, []label{rng(-10, -1), scalar(0), scalar(-1)}, false, []diag.ID{diag.DuplicateCase}},
		{"overflow_to_duplicate", testsource.Char, []label{scalar(300), scalar(44)}, false, []diag.ID{diag.CaseOverflow, diag.DuplicateCase}},
		{"negative_to_wider_unsigned", testsource.ULong, []label{scalar(-1), scalar(1)}, true, []diag.ID{diag.CaseOverflow}},
		{"negative_reinterpreted_unsigned", testsource.Uint32, []label{scalar(-1), scalar(1)}, true, nil},
		{"not_integer", testsource.Double, []label{scalar(1)}, false, []diag.ID{diag.RequiresInteger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sink diag.Collector

			sw := buildSwitch(tt.cond, tt.labels...)

			if got := Analyze(t.Context(), &sink, sw); got != tt.valid {
				t.Errorf("Got valid %t, expected %t", got, tt.valid)
			}

			if got := sink.IDs(); !slices.Equal(got, tt.ids) {
				t.Errorf("Got diagnostics %v, expected %v", got, tt.ids)
			}
		})
	}
}

func TestDuplicateLocation(t *testing.T) {
	t.Parallel()

	var sink diag.Collector

	sw := buildSwitch(testsource.Int32, scalar(1), scalar(2), scalar(1))
	Analyze(t.Context(), &sink, sw)

	got := sink.All()
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(got))
	}

	first, third := sw.Cases[0].(*ast.CaseStmt), sw.Cases[2].(*ast.CaseStmt)

	d := got[0]
	if d.Pos != third.LHS.Pos() {
		t.Errorf("Got duplicate reported at %d, expected the later case at %d", d.Pos, third.LHS.Pos())
	}

	if len(d.Notes) != 1 || d.Notes[0].Pos != first.LHS.Pos() {
		t.Errorf("Got notes %+v, expected the earlier case at %d", d.Notes, first.LHS.Pos())
	}

	if got, want := d.Message(), "duplicate case value '1'"; got != want {
		t.Errorf("Got message %q, expected %q", got, want)
	}
}

func TestOverlappingRangeReportsPreviousHigh(t *testing.T) {
	t.Parallel()

	var sink diag.Collector

	sw := buildSwitch(testsource.Int32, rng(3, 8), rng(1, 5))
	Analyze(t.Context(), &sink, sw)

	got := sink.All()
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(got))
	}

	later := sw.Cases[0].(*ast.CaseStmt) // sorts after 1...5
	earlier := sw.Cases[1].(*ast.CaseStmt)

	if got[0].Pos != later.LHS.Pos() || got[0].Notes[0].Pos != earlier.Pos() {
		t.Errorf("Got overlap at %d with note at %d", got[0].Pos, got[0].Notes[0].Pos)
	}

	if got, want := got[0].Message(), "duplicate case value '5'"; got != want {
		t.Errorf("Got message %q, expected %q", got, want)
	}
}

func TestConvertedValuesStored(t *testing.T) {
	t.Parallel()

	sw := buildSwitch(testsource.Long, rng(-2, 2))
	Analyze(t.Context(), diag.Discard, sw)

	c := sw.Cases[0].(*ast.CaseStmt)
	if c.Lo.Width() != 64 || c.Hi.Width() != 64 || !c.Lo.Signed() {
		t.Errorf("Got bounds of width %d/%d, expected 64", c.Lo.Width(), c.Hi.Width())
	}
}
