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

package label_test

import (
	"testing"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	. "fillmore-labs.com/stmtsema/internal/label"
)

func TestForwardReference(t *testing.T) {
	t.Parallel()

	var (
		r    Resolver
		sink diag.Collector
	)

	refs := []*ast.LabelStmt{r.Reference("out", 10), r.Reference("out", 20), r.Reference("out", 30)}

	body := &ast.NullStmt{Semi: 45}

	res := r.Define(&sink, "out", 40, body)
	if res.Outcome != ast.OK {
		t.Fatalf("Got outcome %s, expected ok", res.Outcome)
	}

	for i, ref := range refs {
		if ref != res.Stmt {
			t.Errorf("Got distinct record for reference %d", i)
		}
	}

	if l := refs[0]; l.Stmt != body || l.Ident != 40 {
		t.Errorf("Got label at %d with body %v, expected definition at 40", l.Ident, l.Stmt)
	}

	if ids := sink.IDs(); len(ids) != 0 {
		t.Errorf("Got diagnostics %v, expected none", ids)
	}

	if u := r.Undefined(); len(u) != 0 {
		t.Errorf("Got %d undefined labels, expected none", len(u))
	}
}

func TestRedefinition(t *testing.T) {
	t.Parallel()

	var (
		r    Resolver
		sink diag.Collector
	)

	first := &ast.NullStmt{Semi: 5}
	second := &ast.NullStmt{Semi: 25}

	res1 := r.Define(&sink, "again", 1, first)
	res2 := r.Define(&sink, "again", 20, second)

	if res2.Outcome != ast.Recovered || res2.Stmt != second {
		t.Errorf("Got %s %v, expected the inner statement", res2.Outcome, res2.Stmt)
	}

	if l, _ := r.Lookup("again"); l != res1.Stmt || l.Stmt != first {
		t.Error("Expected the first definition to stay reachable through the label")
	}

	got := sink.All()
	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(got))
	}

	d := got[0]
	if d.ID != diag.RedefinitionOfLabel || d.Pos != 20 {
		t.Errorf("Got %s at %d, expected %s at 20", d.ID, d.Pos, diag.RedefinitionOfLabel)
	}

	if len(d.Notes) != 1 || d.Notes[0].ID != diag.PreviousDefinition || d.Notes[0].Pos != 1 {
		t.Errorf("Got notes %+v, expected previous definition at 1", d.Notes)
	}
}

func TestUndefined(t *testing.T) {
	t.Parallel()

	var (
		r    Resolver
		sink diag.Collector
	)

	r.Reference("b", 3)
	r.Define(&sink, "a", 5, &ast.NullStmt{Semi: 6})
	r.Reference("c", 7)
	r.Reference("b", 9)

	u := r.Undefined()
	if len(u) != 2 || u[0].Name != "b" || u[1].Name != "c" {
		t.Fatalf("Got undefined %v, expected b and c", u)
	}

	if u[0].Ident != 3 {
		t.Errorf("Got first reference of b at %d, expected 3", u[0].Ident)
	}

	if r.Len() != 3 {
		t.Errorf("Got %d labels, expected 3", r.Len())
	}
}
