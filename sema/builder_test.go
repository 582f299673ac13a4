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

package sema_test

import (
	"go/token"
	"slices"
	"testing"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/config"
	"fillmore-labs.com/stmtsema/internal/testsource"
	. "fillmore-labs.com/stmtsema/sema"
)

var _ Semantics = testsource.Semantics{}

var intFunc = Func{Name: "f", Pos: 1, Result: testsource.Int32}

func newBuilder(t *testing.T, fn Func, opts ...Option) (*Builder, *diag.Collector) {
	t.Helper()

	var sink diag.Collector

	env := Env{Sink: &sink, Semantics: testsource.Semantics{}}

	return New(opts...).Function(t.Context(), env, fn), &sink
}

func expectIDs(t *testing.T, sink *diag.Collector, want ...diag.ID) {
	t.Helper()

	if got := sink.IDs(); !slices.Equal(got, want) {
		t.Errorf("Got diagnostics %v, expected %v", got, want)
	}
}

func TestGotoBeforeLabel(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	g1 := b.Goto(10, "out", 15).Stmt.(*ast.GotoStmt)
	g2 := b.Goto(20, "out", 25).Stmt.(*ast.GotoStmt)

	sub := b.Null(41).Stmt
	res := b.Label(30, "out", sub)

	l, ok := res.Stmt.(*ast.LabelStmt)
	if !ok {
		t.Fatalf("Got %T, expected *ast.LabelStmt", res.Stmt)
	}

	if g1.Label != l || g2.Label != l {
		t.Error("Expected every goto to refer to the defined label")
	}

	if l.Ident != 30 || l.Stmt != sub {
		t.Errorf("Got label at %d with %v, expected definition at 30", l.Ident, l.Stmt)
	}

	s := b.Finish()
	if s.Errors != 0 || s.Labels != 1 {
		t.Errorf("Got %d errors and %d labels, expected 0 and 1", s.Errors, s.Labels)
	}

	expectIDs(t, sink)
}

func TestLabelRedefinition(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	first := b.Label(10, "again", b.Null(17).Stmt)

	sub := b.Null(27).Stmt
	second := b.Label(20, "again", sub)

	if second.Outcome != ast.Recovered || second.Stmt != sub {
		t.Errorf("Got %v with %v, expected the recovered sub-statement", second.Outcome, second.Stmt)
	}

	g := b.Goto(30, "again", 35).Stmt.(*ast.GotoStmt)
	if g.Label != first.Stmt {
		t.Error("Expected goto to refer to the first definition")
	}

	b.Finish()

	expectIDs(t, sink, diag.RedefinitionOfLabel)

	all := sink.All()
	if len(all) != 1 || len(all[0].Notes) != 1 || all[0].Notes[0].Pos != 10 {
		t.Errorf("Got %v, expected one note at the first definition", all)
	}
}

func TestUndeclaredLabel(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	g := b.Goto(10, "nowhere", 15).Stmt.(*ast.GotoStmt)

	s := b.Finish()

	expectIDs(t, sink, diag.UndeclaredLabel)

	if _, ok := g.Label.Stmt.(*ast.NullStmt); !ok {
		t.Errorf("Got label statement %T, expected *ast.NullStmt placeholder", g.Label.Stmt)
	}

	if s.Errors != 1 {
		t.Errorf("Got %d errors, expected 1", s.Errors)
	}

	if again := b.Finish(); again != s {
		t.Errorf("Got %+v on second Finish, expected %+v", again, s)
	}

	expectIDs(t, sink, diag.UndeclaredLabel)
}

func TestBreakContinue(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)
	scopes := b.Scopes()

	if res := b.Break(10, scopes); res.Valid() || res.Stmt != nil {
		t.Errorf("Got %+v, expected invalid break without statement", res)
	}

	if res := b.Continue(20, scopes); res.Valid() || res.Stmt != nil {
		t.Errorf("Got %+v, expected invalid continue without statement", res)
	}

	expectIDs(t, sink, diag.BreakNotInLoopOrSwitch, diag.ContinueNotInLoop)
	sink.Reset()

	old := scopes.EnterSwitch()
	if res := b.Break(30, scopes); !res.Valid() {
		t.Error("Expected break in switch to be valid")
	}

	if res := b.Continue(40, scopes); res.Valid() {
		t.Error("Expected continue in switch to be invalid")
	}

	scopes.Leave(old)

	old = scopes.EnterLoop()
	if res := b.Continue(50, scopes); !res.Valid() {
		t.Error("Expected continue in loop to be valid")
	}

	scopes.Leave(old)

	expectIDs(t, sink, diag.ContinueNotInLoop)
}

func TestReturn(t *testing.T) {
	t.Parallel()

	voidFunc := Func{Name: "v", Pos: 1, Result: testsource.Void}

	tests := [...]struct {
		name     string
		fn       Func
		std      config.Standard
		x        ast.Expr
		ids      []diag.ID
		severity diag.Severity
		outcome  ast.Outcome
	}{
		{"value_from_void", voidFunc, config.C99, testsource.Const(20, 1, testsource.Int32), []diag.ID{diag.ReturnHasExpr}, diag.SeverityWarning, ast.Recovered},
		{"void_from_void", voidFunc, config.C99, testsource.Call(20, 25, testsource.Void), []diag.ID{diag.ReturnHasExpr}, diag.SeverityWarning, ast.Recovered},
		{"missing_c99", intFunc, config.C99, nil, []diag.ID{diag.ReturnMissingExpr}, diag.SeverityWarning, ast.Recovered},
		{"missing_c89", intFunc, config.C89, nil, []diag.ID{diag.ReturnMissingExprC90}, diag.SeverityWarning, ast.Recovered},
		{"missing_cxx", intFunc, config.CXX, nil, []diag.ID{diag.ReturnMissingExprCXX}, diag.SeverityError, ast.Recovered},
		{"matching", intFunc, config.C99, testsource.Const(20, 0, testsource.Int32), nil, 0, ast.OK},
		{"pointer_from_int", Func{Name: "p", Result: testsource.IntP}, config.C99, testsource.Const(20, 3, testsource.Int32), []diag.ID{diag.ReturnPointerFromInt}, diag.SeverityWarning, ast.Recovered},
		{"struct_from_int", Func{Name: "s", Result: testsource.Struct("s")}, config.C99, testsource.Const(20, 3, testsource.Int32), []diag.ID{diag.ReturnIncompatible}, diag.SeverityError, ast.Recovered},
		{"stack_address", Func{Name: "p", Result: testsource.IntP}, config.C99, testsource.AddrOf(20, "local", testsource.Int32), []diag.ID{diag.ReturnStackAddress}, diag.SeverityWarning, ast.Recovered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, sink := newBuilder(t, tt.fn, WithStandard(tt.std))

			res := b.Return(10, tt.x)
			if res.Outcome != tt.outcome {
				t.Errorf("Got outcome %v, expected %v", res.Outcome, tt.outcome)
			}

			ret, ok := res.Stmt.(*ast.ReturnStmt)
			if !ok {
				t.Fatalf("Got %T, expected *ast.ReturnStmt", res.Stmt)
			}

			if ret.Result != tt.x {
				t.Errorf("Got result %v, expected %v", ret.Result, tt.x)
			}

			expectIDs(t, sink, tt.ids...)

			if all := sink.All(); len(all) > 0 && all[0].Severity != tt.severity {
				t.Errorf("Got severity %v, expected %v", all[0].Severity, tt.severity)
			}
		})
	}
}

func TestForInitDeclarations(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	init := b.Decl([]ast.Decl{
		testsource.LocalWith(15, "s", ast.Static),
		testsource.Local(20, "i"),
		testsource.Typedef(25, "T"),
	}, 10, 30).Stmt

	cond := testsource.Var(35, "i", testsource.Int32)

	res := b.For(5, init, cond, nil, 40, b.Null(42).Stmt)
	if _, ok := res.Stmt.(*ast.ForStmt); !ok || res.Outcome != ast.Recovered {
		t.Errorf("Got %T (%v), expected recovered *ast.ForStmt", res.Stmt, res.Outcome)
	}

	expectIDs(t, sink, diag.NonVariableDeclInFor, diag.NonVariableDeclInFor)

	all := sink.All()
	if len(all) == 2 && (all[0].Pos != 15 || all[1].Pos != 25) {
		t.Errorf("Got diagnostics at %d and %d, expected 15 and 25", all[0].Pos, all[1].Pos)
	}
}

func TestConditions(t *testing.T) {
	t.Parallel()

	s := testsource.Var(10, "s", testsource.Struct("pair"))
	arr := testsource.Var(10, "a", testsource.Array(testsource.Int32, 4))

	b, sink := newBuilder(t, intFunc)

	if res := b.If(5, s, b.Expr(testsource.Call(20, 25, testsource.Void)).Stmt, token.NoPos, nil); res.Valid() {
		t.Error("Expected if on a structure to be invalid")
	}

	if res := b.While(5, arr, b.Null(20).Stmt); !res.Valid() {
		t.Error("Expected while on a decayed array to be valid")
	}

	if res := b.Do(5, b.Null(7).Stmt, 9, s, 20); res.Valid() {
		t.Error("Expected do on a structure to be invalid")
	}

	if res := b.For(5, nil, s, nil, 20, b.Null(22).Stmt); res.Valid() {
		t.Error("Expected for on a structure to be invalid")
	}

	if res := b.For(5, nil, nil, nil, 20, b.Null(22).Stmt); !res.Valid() {
		t.Error("Expected for without condition to be valid")
	}

	expectIDs(t, sink, diag.RequiresScalar, diag.RequiresScalar, diag.RequiresScalar)

	for _, d := range sink.All() {
		if d.Pos != 5 {
			t.Errorf("Got %v at %d, expected the statement keyword at 5", d.ID, d.Pos)
		}
	}
}

func TestEmptyBody(t *testing.T) {
	t.Parallel()

	x := testsource.Var(8, "x", testsource.Int32)

	tests := [...]struct {
		name string
		opts []Option
		els  bool
		ids  []diag.ID
	}{
		{"warned", nil, false, []diag.ID{diag.EmptyBody}},
		{"with_else", nil, true, nil},
		{"disabled", []Option{WithWarning(config.EmptyBody, false)}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, sink := newBuilder(t, intFunc, tt.opts...)

			var els ast.Stmt
			if tt.els {
				els = b.Null(30).Stmt
			}

			if res := b.If(1, x, b.Null(12).Stmt, 20, els); res.Outcome != ast.OK {
				t.Errorf("Got outcome %v, expected ok", res.Outcome)
			}

			expectIDs(t, sink, tt.ids...)
		})
	}
}

func TestCompound(t *testing.T) {
	t.Parallel()

	a := testsource.Var(20, "a", testsource.Int32)
	one := testsource.Const(24, 1, testsource.Int32)
	sum := testsource.Binary(a, 22, one, testsource.Int32)

	tests := [...]struct {
		name     string
		opts     []Option
		stmtExpr bool
		ids      []diag.ID
		severity diag.Severity
	}{
		{"c99", nil, false, []diag.ID{diag.UnusedValue}, diag.SeverityWarning},
		{"statement_expression", nil, true, nil, 0},
		{"werror", []Option{WithWarningsAsErrors(true)}, false, []diag.ID{diag.UnusedValue}, diag.SeverityError},
		{"unused_disabled", []Option{WithWarning(config.UnusedValue, false)}, false, nil, 0},
		{"c89", []Option{WithStandard(config.C89)}, false, []diag.ID{diag.UnusedValue}, diag.SeverityWarning},
		{"c89_pedantic", []Option{WithStandard(config.C89), WithPedantic(true)}, false, []diag.ID{diag.MixedDeclarations, diag.UnusedValue}, diag.SeverityWarning},
		{"c89_pedantic_errors", []Option{WithStandard(config.C89), WithPedanticErrors(true)}, false, []diag.ID{diag.MixedDeclarations, diag.UnusedValue}, diag.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, sink := newBuilder(t, intFunc, tt.opts...)

			list := []ast.Stmt{
				b.Decl([]ast.Decl{testsource.Local(5, "a")}, 1, 7).Stmt,
				b.Expr(testsource.Call(10, 15, testsource.Void)).Stmt,
				b.Decl([]ast.Decl{testsource.Local(18, "b")}, 16, 19).Stmt,
				b.Expr(sum).Stmt,
			}

			res := b.Compound(0, list, 30, tt.stmtExpr)
			if res.Outcome != ast.OK {
				t.Errorf("Got outcome %v, expected ok", res.Outcome)
			}

			expectIDs(t, sink, tt.ids...)

			all := sink.All()
			if len(all) == 0 {
				return
			}

			if all[0].Severity != tt.severity {
				t.Errorf("Got severity %v, expected %v", all[0].Severity, tt.severity)
			}

			last := all[len(all)-1]
			if last.ID == diag.UnusedValue && last.Pos != 22 {
				t.Errorf("Got unused value at %d, expected the operator at 22", last.Pos)
			}

			if all[0].ID == diag.MixedDeclarations && all[0].Pos != 18 {
				t.Errorf("Got mixed declaration at %d, expected 18", all[0].Pos)
			}
		})
	}
}

func TestDecl(t *testing.T) {
	t.Parallel()

	b, _ := newBuilder(t, intFunc)

	if res := b.Decl(nil, 1, 2); res.Valid() || res.Stmt != nil {
		t.Errorf("Got %+v, expected invalid empty declaration", res)
	}
}

func TestAsm(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	x := testsource.Var(20, "x", testsource.Int32)
	s := &ast.AsmStmt{
		Asm:      1,
		Template: ast.StringLit{ValuePos: 5, Value: "nop"},
		Outputs:  []ast.AsmOperand{{Constraint: ast.StringLit{ValuePos: 12, Value: "=r"}, X: x}},
		Clobbers: []ast.StringLit{{ValuePos: 30, Value: "rax"}},
		Rparen:   40,
	}

	if res := b.Asm(s); res.Stmt != s || res.Outcome != ast.OK {
		t.Errorf("Got %+v, expected the valid statement", res)
	}

	s.Clobbers = append(s.Clobbers, ast.StringLit{ValuePos: 35, Value: "r99"})

	if res := b.Asm(s); res.Valid() {
		t.Error("Expected unknown clobber to invalidate the statement")
	}

	expectIDs(t, sink, diag.UnknownRegisterName)
}

func TestObjCStatements(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	c1 := b.Catch(20, 28, b.Null(27).Stmt, b.Null(30).Stmt, nil).Stmt.(*ast.CatchStmt)
	c2 := b.Catch(40, 48, nil, b.Null(50).Stmt, c1).Stmt
	c3 := b.Catch(60, 68, nil, b.Null(70).Stmt, c1).Stmt

	if c2 != c1 || c3 != c1 {
		t.Error("Expected appended catch clauses to return the chain head")
	}

	if c1.Next == nil || c1.Next.Next == nil || c1.Next.Next.At != 60 {
		t.Error("Expected catch clauses in source order")
	}

	fin := b.Finally(80, b.Null(90).Stmt).Stmt.(*ast.FinallyStmt)

	res := b.Try(1, b.Throw(10, nil, 15).Stmt, c1, fin)
	if try, ok := res.Stmt.(*ast.TryStmt); !ok || try.Catch != c1 || try.Finally != fin {
		t.Errorf("Got %+v, expected try with catch chain and finally", res.Stmt)
	}

	expectIDs(t, sink)
}

func TestFinishSummary(t *testing.T) {
	t.Parallel()

	b, sink := newBuilder(t, intFunc)

	b.Expr(testsource.Call(1, 5, testsource.Void))
	b.Return(10, nil)
	b.Break(20, b.Scopes())
	b.StartSwitch(30, testsource.Var(35, "x", testsource.Int32))

	s := b.Finish()

	want := Summary{Function: "f", Statements: 3, Recovered: 1, Invalid: 1, Errors: 2, Warnings: 1}
	if s != want {
		t.Errorf("Got %+v, expected %+v", s, want)
	}

	expectIDs(t, sink, diag.ReturnMissingExpr, diag.BreakNotInLoopOrSwitch, diag.InternalError)
}
