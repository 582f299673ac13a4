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

package ccfront

import (
	"go/token"

	"modernc.org/cc/v3"

	"fillmore-labs.com/stmtsema/ast"
)

// asm lowers a GNU inline assembly statement. Operands are "constraint" (expression)
// pairs, which cc parses as a call of the constraint string literal.
func (l *lowerer) asm(n *cc.AsmStatement) ast.Stmt {
	a := n.Asm
	if a == nil {
		return l.b.Null(l.at(n.Token)).Stmt
	}

	s := &ast.AsmStmt{
		Asm:      l.at(a.Token),
		Volatile: volatile(a.AsmQualifierList),
		Template: ast.StringLit{ValuePos: l.at(a.Token3), Value: a.Token3.Value.String()},
		Rparen:   l.at(a.Token4),
	}

	section := 0
	for args := a.AsmArgList; args != nil; args = args.AsmArgList {
		for it := args.AsmExpressionList; it != nil; it = it.AsmExpressionList {
			switch section {
			case 0:
				s.Outputs = append(s.Outputs, l.asmOperand(it))

			case 1:
				s.Inputs = append(s.Inputs, l.asmOperand(it))

			case 2:
				if lit, ok := l.stringLit(it.AssignmentExpression); ok {
					s.Clobbers = append(s.Clobbers, lit)
				}
			}
		}

		section++
	}

	return l.or(l.b.Asm(s), s.Asm)
}

func volatile(q *cc.AsmQualifierList) bool {
	for ; q != nil; q = q.AsmQualifierList {
		if q.AsmQualifier != nil && q.AsmQualifier.Case == cc.AsmQualifierVolatile {
			return true
		}
	}

	return false
}

func (l *lowerer) asmOperand(n *cc.AsmExpressionList) ast.AsmOperand {
	var op ast.AsmOperand

	if n.AsmIndex != nil {
		op.Name = firstIdent(n.AsmIndex.Expression)
	}

	var call *cc.PostfixExpression

	cc.Inspect(n.AssignmentExpression, func(m cc.Node, enter bool) bool {
		if x, ok := m.(*cc.PostfixExpression); ok && enter && call == nil && x.Case == cc.PostfixExpressionCall {
			call = x
		}

		return call == nil
	})

	if call == nil {
		op.Constraint, _ = l.stringLit(n.AssignmentExpression)
		op.X = l.assign(n.AssignmentExpression, token.NoPos)

		return op
	}

	op.Constraint, _ = l.stringLit(call.PostfixExpression)

	if args := call.ArgumentExpressionList; args != nil && args.AssignmentExpression != nil {
		op.X = l.assign(args.AssignmentExpression, l.at(call.Token2))
	} else {
		op.X = l.assign(n.AssignmentExpression, l.at(call.Token2))
	}

	return op
}

// stringLit returns the first narrow string literal below n.
func (l *lowerer) stringLit(n cc.Node) (ast.StringLit, bool) {
	var lit *cc.PrimaryExpression

	cc.Inspect(n, func(m cc.Node, enter bool) bool {
		if x, ok := m.(*cc.PrimaryExpression); ok && enter && lit == nil && x.Case == cc.PrimaryExpressionString {
			lit = x
		}

		return lit == nil
	})

	if lit == nil {
		return ast.StringLit{}, false
	}

	return ast.StringLit{ValuePos: l.at(lit.Token), Value: lit.Token.Value.String()}, true
}

func firstIdent(n cc.Node) string {
	var name string

	cc.Inspect(n, func(m cc.Node, enter bool) bool {
		if x, ok := m.(*cc.PrimaryExpression); ok && enter && name == "" && x.Case == cc.PrimaryExpressionIdent {
			name = x.Token.Value.String()
		}

		return name == ""
	})

	return name
}
