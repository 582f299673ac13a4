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

// Package retcheck checks return statements against the result type of the enclosing function.
package retcheck

import (
	"go/token"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/internal/config"
)

// Classifier answers the expression queries of return checking.
type Classifier interface {
	Compatibility(dst ast.Type, x ast.Expr) ast.Compatibility
	LocalAddress(x ast.Expr) (name string, ok bool)
}

// Function is the enclosing function of a return statement.
type Function struct {
	Name   string
	Result ast.Type
}

var compatibilityDiagnostics = [...]diag.ID{
	ast.Incompatible:                        diag.ReturnIncompatible,
	ast.PointerFromInt:                      diag.ReturnPointerFromInt,
	ast.IntFromPointer:                      diag.ReturnIntFromPointer,
	ast.IncompatiblePointer:                 diag.ReturnIncompatiblePointer,
	ast.CompatiblePointerDiscardsQualifiers: diag.ReturnDiscardsQualifiers,
}

// Check builds a return statement at pos returning x, which may be nil.
//
// Mismatches are reported but never prevent construction; the outcome is [ast.Recovered]
// when a diagnostic was emitted.
func Check(sink diag.Sink, c Classifier, lang config.BitMask[config.Language], fn Function, pos token.Pos, x ast.Expr) ast.Result {
	ret := &ast.ReturnStmt{Return: pos, Result: x}

	switch {
	case fn.Result.IsVoid():
		if x == nil {
			return ast.Ok(ret)
		}

		sink.Report(diag.New(diag.ReturnHasExpr, pos, fn.Name).WithRange(x))

		return ast.Recover(ret)

	case x == nil:
		id := diag.ReturnMissingExprC90
		switch {
		case lang.Enabled(config.CPlusPlus):
			id = diag.ReturnMissingExprCXX

		case lang.Enabled(config.C99Features):
			id = diag.ReturnMissingExpr
		}

		sink.Report(diag.New(id, pos, fn.Name))

		return ast.Recover(ret)
	}

	outcome := ast.OK

	if compat := c.Compatibility(fn.Result, x); compat != ast.Compatible {
		id := diag.ReturnIncompatible
		if int(compat) < len(compatibilityDiagnostics) {
			id = compatibilityDiagnostics[compat]
		}

		sink.Report(diag.New(id, pos, x.Type().String(), fn.Result.String()).WithRange(x))

		outcome = ast.Recovered
	}

	if name, ok := c.LocalAddress(x); ok {
		sink.Report(diag.New(diag.ReturnStackAddress, x.Pos(), name).WithRange(x))

		outcome = ast.Recovered
	}

	return ast.Result{Stmt: ret, Outcome: outcome}
}
