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
	"fillmore-labs.com/stmtsema/internal/config"
)

// Compound builds a braced statement list. stmtExpr marks the body of a GNU statement
// expression, whose last expression is its value.
func (b *Builder) Compound(lbrace token.Pos, list []ast.Stmt, rbrace token.Pos, stmtExpr bool) ast.Result {
	if !b.language.Enabled(config.C99Features) {
		b.mixedDeclarations(list)
	}

	for i, s := range list {
		es, ok := s.(*ast.ExprStmt)
		if !ok || (stmtExpr && i == len(list)-1) {
			continue
		}

		b.unusedValue(es.X)
	}

	return b.record(ast.Ok(&ast.CompoundStmt{Lbrace: lbrace, List: list, Rbrace: rbrace}))
}

// mixedDeclarations reports the first declaration following a statement.
func (b *Builder) mixedDeclarations(list []ast.Stmt) {
	i := 0
	for i < len(list) && isDecl(list[i]) {
		i++
	}

	for i < len(list) && !isDecl(list[i]) {
		i++
	}

	if i == len(list) {
		return
	}

	ds := list[i].(*ast.DeclStmt)
	b.engine.Report(diag.New(diag.MixedDeclarations, ds.Decls[0].Pos()))
}

func isDecl(s ast.Stmt) bool {
	_, ok := s.(*ast.DeclStmt)

	return ok
}

// unusedValue reports an expression statement computing a value without side effects.
func (b *Builder) unusedValue(x ast.Expr) {
	if x.Type().IsVoid() || b.sem.HasSideEffects(x) {
		return
	}

	pos := x.Pos()
	if op, ok := ast.Unparen(x).(ast.Operation); ok {
		pos = op.OpPos()
	}

	b.engine.Report(diag.New(diag.UnusedValue, pos).WithRange(x))
}
