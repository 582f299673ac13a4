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

package jump

import (
	"go/token"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
)

// Converter applies the default conversions to an expression.
type Converter interface {
	DefaultConversion(x ast.Expr) ast.Expr
}

// Break reports a break at pos outside any loop or switch.
func Break(sink diag.Sink, scope ast.Scope, pos token.Pos) bool {
	if _, ok := scope.Breakable(); ok {
		return true
	}

	sink.Report(diag.New(diag.BreakNotInLoopOrSwitch, pos))

	return false
}

// Continue reports a continue at pos outside any loop.
func Continue(sink diag.Sink, scope ast.Scope, pos token.Pos) bool {
	if _, ok := scope.Continuable(); ok {
		return true
	}

	sink.Report(diag.New(diag.ContinueNotInLoop, pos))

	return false
}

// ForInit reports every entity declared by a for loop initializer that is not a local
// variable with automatic storage. It returns the number of offending declarations.
func ForInit(sink diag.Sink, init ast.Stmt) int {
	ds, ok := init.(*ast.DeclStmt)
	if !ok {
		return 0
	}

	bad := 0
	for _, d := range ds.Decls {
		if ast.HasLocalStorage(d) {
			continue
		}

		sink.Report(diag.New(diag.NonVariableDeclInFor, d.Pos(), d.Name()))
		bad++
	}

	return bad
}

// Condition applies the default conversions to the controlling expression of the statement
// at pos and requires the result to be scalar. id is reported at pos otherwise.
func Condition(sink diag.Sink, conv Converter, pos token.Pos, x ast.Expr, id diag.ID) (ast.Expr, bool) {
	x = conv.DefaultConversion(x)

	if t := x.Type(); !t.IsScalar() {
		sink.Report(diag.New(id, pos, t.String()).WithRange(x))

		return x, false
	}

	return x, true
}
