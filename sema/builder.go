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
	"context"
	"go/token"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/config"
	"fillmore-labs.com/stmtsema/internal/jump"
	"fillmore-labs.com/stmtsema/internal/label"
	"fillmore-labs.com/stmtsema/internal/switchcase"
	"fillmore-labs.com/stmtsema/target"
)

// Builder constructs the statements of one function body.
//
// It owns the labels and open switch statements of the body. A Builder is not safe for
// concurrent use.
type Builder struct {
	ctx    context.Context
	region *trace.Region
	logger *slog.Logger

	engine   *diag.Engine
	sem      Semantics
	target   target.Info
	language config.BitMask[config.Language]
	fn       Func

	labels   label.Resolver
	switches switchcase.Stack
	scopes   jump.Scopes

	built, recovered, invalid int
	finished                  bool
}

// Scopes returns a break and continue target tracker for front ends without their own.
func (b *Builder) Scopes() *jump.Scopes { return &b.scopes }

// Diagnostics returns the policy engine the builder reports to.
func (b *Builder) Diagnostics() *diag.Engine { return b.engine }

func (b *Builder) record(r ast.Result) ast.Result {
	b.built++

	switch r.Outcome {
	case ast.Recovered:
		b.recovered++

	case ast.Invalid:
		b.invalid++
	}

	return r
}

// Expr builds an expression statement.
func (b *Builder) Expr(x ast.Expr) ast.Result {
	return b.record(ast.Ok(&ast.ExprStmt{X: x}))
}

// Null builds an empty statement.
func (b *Builder) Null(semi token.Pos) ast.Result {
	return b.record(ast.Ok(&ast.NullStmt{Semi: semi}))
}

// Decl builds a declaration statement. A statement without declarators is invalid.
func (b *Builder) Decl(decls []ast.Decl, start, end token.Pos) ast.Result {
	if len(decls) == 0 {
		return b.record(ast.Fail(nil))
	}

	return b.record(ast.Ok(&ast.DeclStmt{Start: start, Finish: end, Decls: decls}))
}

// If builds an if statement. els is nil without else branch.
func (b *Builder) If(pos token.Pos, cond ast.Expr, then ast.Stmt, elsePos token.Pos, els ast.Stmt) ast.Result {
	cond, ok := jump.Condition(b.engine, b.sem, pos, cond, diag.RequiresScalar)
	if !ok {
		return b.record(ast.Fail(nil))
	}

	if null, ok := then.(*ast.NullStmt); ok && els == nil {
		b.engine.Report(diag.New(diag.EmptyBody, null.Semi))
	}

	return b.record(ast.Ok(&ast.IfStmt{If: pos, Cond: cond, Then: then, ElsePos: elsePos, Else: els}))
}

// While builds a while loop.
func (b *Builder) While(pos token.Pos, cond ast.Expr, body ast.Stmt) ast.Result {
	cond, ok := jump.Condition(b.engine, b.sem, pos, cond, diag.RequiresScalar)
	if !ok {
		return b.record(ast.Fail(nil))
	}

	return b.record(ast.Ok(&ast.WhileStmt{While: pos, Cond: cond, Body: body}))
}

// Do builds a do-while loop.
func (b *Builder) Do(pos token.Pos, body ast.Stmt, whilePos token.Pos, cond ast.Expr, semi token.Pos) ast.Result {
	cond, ok := jump.Condition(b.engine, b.sem, pos, cond, diag.RequiresScalar)
	if !ok {
		return b.record(ast.Fail(nil))
	}

	return b.record(ast.Ok(&ast.DoStmt{Do: pos, Body: body, While: whilePos, Cond: cond, Semi: semi}))
}

// For builds a for loop. init, cond and post are optional.
//
// Declarations in init that are not local variables are reported, but the loop is still built.
func (b *Builder) For(pos token.Pos, init ast.Stmt, cond, post ast.Expr, rparen token.Pos, body ast.Stmt) ast.Result {
	outcome := ast.OK
	if jump.ForInit(b.engine, init) > 0 {
		outcome = ast.Recovered
	}

	if cond != nil {
		var ok bool
		if cond, ok = jump.Condition(b.engine, b.sem, pos, cond, diag.RequiresScalar); !ok {
			return b.record(ast.Fail(nil))
		}
	}

	s := &ast.ForStmt{For: pos, Init: init, Cond: cond, Post: post, Rparen: rparen, Body: body}

	return b.record(ast.Result{Stmt: s, Outcome: outcome})
}

// ForEach builds a loop over a collection.
func (b *Builder) ForEach(pos token.Pos, elem ast.Stmt, coll ast.Expr, rparen token.Pos, body ast.Stmt) ast.Result {
	outcome := ast.OK
	if jump.ForInit(b.engine, elem) > 0 {
		outcome = ast.Recovered
	}

	s := &ast.ForEachStmt{For: pos, Element: elem, Collection: coll, Rparen: rparen, Body: body}

	return b.record(ast.Result{Stmt: s, Outcome: outcome})
}

// Goto builds a jump to label name referenced at labelPos. The label may be defined later.
func (b *Builder) Goto(pos token.Pos, name string, labelPos token.Pos) ast.Result {
	l := b.labels.Reference(name, labelPos)

	return b.record(ast.Ok(&ast.GotoStmt{Goto: pos, LabelPos: labelPos, Label: l}))
}

// IndirectGoto builds a jump to a computed address.
func (b *Builder) IndirectGoto(pos, star token.Pos, dest ast.Expr) ast.Result {
	return b.record(ast.Ok(&ast.IndirectGotoStmt{Goto: pos, Star: star, Target: dest}))
}

// Continue builds a continue statement, using scope to find the enclosing loop.
func (b *Builder) Continue(pos token.Pos, scope ast.Scope) ast.Result {
	if !jump.Continue(b.engine, scope, pos) {
		return b.record(ast.Fail(nil))
	}

	return b.record(ast.Ok(&ast.ContinueStmt{Continue: pos}))
}

// Break builds a break statement, using scope to find the enclosing loop or switch.
func (b *Builder) Break(pos token.Pos, scope ast.Scope) ast.Result {
	if !jump.Break(b.engine, scope, pos) {
		return b.record(ast.Fail(nil))
	}

	return b.record(ast.Ok(&ast.BreakStmt{Break: pos}))
}

// Label defines label name at pos labeling sub.
//
// A redefinition is reported and yields sub in place of the label.
func (b *Builder) Label(pos token.Pos, name string, sub ast.Stmt) ast.Result {
	return b.record(b.labels.Define(b.engine, name, pos, sub))
}
