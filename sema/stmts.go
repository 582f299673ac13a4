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
	"fillmore-labs.com/stmtsema/internal/asmcheck"
	"fillmore-labs.com/stmtsema/internal/retcheck"
)

// Return builds a return statement with an optional result x.
func (b *Builder) Return(pos token.Pos, x ast.Expr) ast.Result {
	fn := retcheck.Function{Name: b.fn.Name, Result: b.fn.Result}

	return b.record(retcheck.Check(b.engine, b.sem, b.language, fn, pos, x))
}

// Asm validates an inline assembly statement against the target.
func (b *Builder) Asm(s *ast.AsmStmt) ast.Result {
	return b.record(asmcheck.Check(b.engine, b.target, b.sem, s))
}

// Try builds a try block with optional catch chain and finally block.
func (b *Builder) Try(at token.Pos, body ast.Stmt, catch *ast.CatchStmt, finally *ast.FinallyStmt) ast.Result {
	return b.record(ast.Ok(&ast.TryStmt{At: at, Body: body, Catch: catch, Finally: finally}))
}

// Catch builds a catch clause. When chain is not nil the clause is appended to it and the
// head of chain is returned.
func (b *Builder) Catch(at, rparen token.Pos, param, body ast.Stmt, chain *ast.CatchStmt) ast.Result {
	c := &ast.CatchStmt{At: at, Rparen: rparen, Param: param, Body: body}
	if chain == nil {
		return b.record(ast.Ok(c))
	}

	last := chain
	for last.Next != nil {
		last = last.Next
	}

	last.Next = c

	return b.record(ast.Ok(chain))
}

// Finally builds a finally block.
func (b *Builder) Finally(at token.Pos, body ast.Stmt) ast.Result {
	return b.record(ast.Ok(&ast.FinallyStmt{At: at, Body: body}))
}

// Throw builds a throw statement. x is nil for a rethrow.
func (b *Builder) Throw(at token.Pos, x ast.Expr, semi token.Pos) ast.Result {
	return b.record(ast.Ok(&ast.ThrowStmt{At: at, X: x, Semi: semi}))
}
