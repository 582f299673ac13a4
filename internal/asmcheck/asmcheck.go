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

// Package asmcheck validates the operands and clobbers of inline assembly statements.
package asmcheck

import (
	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/target"
)

// Classifier answers the expression queries of inline assembly checking.
type Classifier interface {
	IsLvalue(x ast.Expr) bool
}

// Check validates s against the target. The first invalid operand or clobber is
// reported and makes the statement invalid.
func Check(sink diag.Sink, t target.Info, c Classifier, s *ast.AsmStmt) ast.Result {
	for _, out := range s.Outputs {
		if !t.ValidateOutputConstraint(out.Constraint.Value) {
			sink.Report(diag.New(diag.InvalidOutputConstraint, out.Constraint.Pos(), out.Constraint.Value).
				WithRange(out.Constraint))

			return ast.Fail(nil)
		}

		if !c.IsLvalue(out.X) {
			x := ast.Unparen(out.X)
			sink.Report(diag.New(diag.InvalidLvalueInAsmOutput, x.Pos()).WithRange(x))

			return ast.Fail(nil)
		}
	}

	for _, in := range s.Inputs {
		if !t.ValidateInputConstraint(in.Constraint.Value, len(s.Outputs)) {
			sink.Report(diag.New(diag.InvalidInputConstraint, in.Constraint.Pos(), in.Constraint.Value).
				WithRange(in.Constraint))

			return ast.Fail(nil)
		}

		if typ := in.X.Type(); typ.IsVoid() {
			x := ast.Unparen(in.X)
			sink.Report(diag.New(diag.InvalidTypeInAsmInput, x.Pos(), typ.String()).WithRange(x))

			return ast.Fail(nil)
		}
	}

	for _, clobber := range s.Clobbers {
		if !t.IsValidRegisterName(clobber.Value) {
			sink.Report(diag.New(diag.UnknownRegisterName, clobber.Pos(), clobber.Value).WithRange(clobber))

			return ast.Fail(nil)
		}
	}

	return ast.Ok(s)
}
