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

package sema

import (
	"go/token"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/switchcase"
)

// StartSwitch opens a switch statement on cond after integer promotions. Case and default
// labels built until the matching [Builder.FinishSwitch] attach to it.
func (b *Builder) StartSwitch(pos token.Pos, cond ast.Expr) *ast.SwitchStmt {
	sw := &ast.SwitchStmt{Switch: pos, Cond: b.sem.UnaryConversion(cond)}
	b.switches.Push(sw)

	return sw
}

// Case builds a case label with an optional GNU range bound rhs.
//
// Outside of a switch, or with a non-constant value, the label is dropped and sub is
// returned as replacement. A non-constant rhs is dropped and the label recovers as a
// single value case.
func (b *Builder) Case(pos token.Pos, lhs ast.Expr, ellipsis token.Pos, rhs ast.Expr, colon token.Pos, sub ast.Stmt) ast.Result {
	if _, ok := b.switches.Top(); !ok {
		b.engine.Report(diag.New(diag.CaseNotInSwitch, pos))

		return b.record(ast.Fail(sub))
	}

	lo, at, ok := b.sem.IntegerConstant(lhs)
	if !ok {
		b.engine.Report(diag.New(diag.CaseNotConstant, at).WithRange(lhs))

		return b.record(ast.Fail(sub))
	}

	c := &ast.CaseStmt{Case: pos, LHS: lhs, Colon: colon, Body: sub, Lo: lo}
	outcome := ast.OK

	if rhs != nil {
		if hi, at, ok := b.sem.IntegerConstant(rhs); ok {
			c.Ellipsis, c.RHS, c.Hi = ellipsis, rhs, hi
			b.engine.Report(diag.New(diag.GNUCaseRange, ellipsis))
		} else {
			b.engine.Report(diag.New(diag.CaseNotConstant, at).WithRange(rhs))

			outcome = ast.Recovered
		}
	}

	b.switches.Attach(c)

	return b.record(ast.Result{Stmt: c, Outcome: outcome})
}

// Default builds a default label.
func (b *Builder) Default(pos, colon token.Pos, sub ast.Stmt) ast.Result {
	d := &ast.DefaultStmt{Default: pos, Colon: colon, Body: sub}
	if !b.switches.Attach(d) {
		b.engine.Report(diag.New(diag.DefaultNotInSwitch, pos))

		return b.record(ast.Fail(sub))
	}

	return b.record(ast.Ok(d))
}

// FinishSwitch closes sw with its body and checks the case labels.
//
// Duplicate values, overlapping ranges and multiple defaults invalidate the whole switch;
// the result then still carries sw. A non-integer condition yields no statement.
func (b *Builder) FinishSwitch(sw *ast.SwitchStmt, body ast.Stmt) ast.Result {
	sw.Body = body

	if !b.switches.Pop(sw) {
		diag.Internal(b.engine, sw, "switch statement closed out of order")
	}

	if !sw.Cond.Type().IsInteger() {
		switchcase.Analyze(b.ctx, b.engine, sw)

		return b.record(ast.Fail(nil))
	}

	if !switchcase.Analyze(b.ctx, b.engine, sw) {
		return b.record(ast.Fail(sw))
	}

	return b.record(ast.Ok(sw))
}
