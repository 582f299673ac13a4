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
	"fillmore-labs.com/stmtsema/internal/jump"
	"fillmore-labs.com/stmtsema/sema"
)

// lowerer feeds the statements of one function definition to a [sema.Builder].
type lowerer struct {
	b      *sema.Builder
	pos    positions
	scopes *jump.Scopes
}

func (l *lowerer) at(tok cc.Token) token.Pos { return l.pos.of(tok.Position()) }

// or returns the statement of r, or an empty statement at pos when r carries none.
func (l *lowerer) or(r ast.Result, pos token.Pos) ast.Stmt {
	return r.Or(&ast.NullStmt{Semi: pos})
}

func (l *lowerer) compound(n *cc.CompoundStatement) ast.Stmt {
	var list []ast.Stmt

	for it := n.BlockItemList; it != nil; it = it.BlockItemList {
		if s := l.blockItem(it.BlockItem); s != nil {
			list = append(list, s)
		}
	}

	lbrace := l.at(n.Token)

	return l.or(l.b.Compound(lbrace, list, l.at(n.Token2), false), lbrace)
}

func (l *lowerer) blockItem(n *cc.BlockItem) ast.Stmt {
	if n == nil {
		return nil
	}

	switch n.Case {
	case cc.BlockItemDecl:
		return l.declaration(n.Declaration)

	case cc.BlockItemStmt:
		return l.stmt(n.Statement)

	default:
		return nil
	}
}

func (l *lowerer) declaration(n *cc.Declaration) ast.Stmt {
	var decls []ast.Decl

	for it := n.InitDeclaratorList; it != nil; it = it.InitDeclaratorList {
		if it.InitDeclarator == nil || it.InitDeclarator.Declarator == nil {
			continue
		}

		decls = append(decls, l.decl(it.InitDeclarator.Declarator))
	}

	start := l.pos.of(n.Position())

	return l.b.Decl(decls, start, l.at(n.Token)+1).Stmt
}

func (l *lowerer) stmt(n *cc.Statement) ast.Stmt {
	if n == nil {
		return nil
	}

	switch n.Case {
	case cc.StatementLabeled:
		return l.labeled(n.LabeledStatement)

	case cc.StatementCompound:
		return l.compound(n.CompoundStatement)

	case cc.StatementExpr:
		es := n.ExpressionStatement
		semi := l.at(es.Token)

		if es.Expression == nil {
			return l.b.Null(semi).Stmt
		}

		return l.b.Expr(l.expr(es.Expression, semi)).Stmt

	case cc.StatementSelection:
		return l.selection(n.SelectionStatement)

	case cc.StatementIteration:
		return l.iteration(n.IterationStatement)

	case cc.StatementJump:
		return l.jump(n.JumpStatement)

	case cc.StatementAsm:
		return l.asm(n.AsmStatement)

	default:
		return nil
	}
}

func (l *lowerer) labeled(n *cc.LabeledStatement) ast.Stmt {
	pos := l.at(n.Token)
	sub := l.stmt(n.Statement)

	switch n.Case {
	case cc.LabeledStatementLabel:
		if sub == nil {
			sub = &ast.NullStmt{Semi: l.at(n.Token2)}
		}

		return l.or(l.b.Label(pos, n.Token.Value.String(), sub), pos)

	case cc.LabeledStatementCaseLabel:
		colon := l.at(n.Token2)
		lhs := l.constant(n.ConstantExpression, colon)

		return l.or(l.b.Case(pos, lhs, token.NoPos, nil, colon, sub), pos)

	case cc.LabeledStatementRange:
		ellipsis, colon := l.at(n.Token2), l.at(n.Token3)
		lhs := l.constant(n.ConstantExpression, ellipsis)
		rhs := l.constant(n.ConstantExpression2, colon)

		return l.or(l.b.Case(pos, lhs, ellipsis, rhs, colon, sub), pos)

	case cc.LabeledStatementDefault:
		return l.or(l.b.Default(pos, l.at(n.Token2), sub), pos)

	default:
		return sub
	}
}

func (l *lowerer) selection(n *cc.SelectionStatement) ast.Stmt {
	pos, rparen := l.at(n.Token), l.at(n.Token3)
	cond := l.expr(n.Expression, rparen)

	switch n.Case {
	case cc.SelectionStatementIf:
		return l.b.If(pos, cond, l.stmt(n.Statement), token.NoPos, nil).Stmt

	case cc.SelectionStatementIfElse:
		then := l.stmt(n.Statement)

		return l.b.If(pos, cond, then, l.at(n.Token4), l.stmt(n.Statement2)).Stmt

	case cc.SelectionStatementSwitch:
		sw := l.b.StartSwitch(pos, cond)

		old := l.scopes.EnterSwitch()
		body := l.stmt(n.Statement)
		l.scopes.Leave(old)

		return l.b.FinishSwitch(sw, body).Stmt

	default:
		return nil
	}
}

func (l *lowerer) iteration(n *cc.IterationStatement) ast.Stmt {
	pos := l.at(n.Token)

	old := l.scopes.EnterLoop()
	body := l.stmt(n.Statement)
	l.scopes.Leave(old)

	switch n.Case {
	case cc.IterationStatementWhile:
		return l.b.While(pos, l.expr(n.Expression, l.at(n.Token3)), body).Stmt

	case cc.IterationStatementDo:
		rparen := l.at(n.Token4)

		return l.b.Do(pos, body, l.at(n.Token2), l.expr(n.Expression, rparen), l.at(n.Token5)).Stmt

	case cc.IterationStatementFor:
		var init ast.Stmt
		if n.Expression != nil {
			init = l.b.Expr(l.expr(n.Expression, l.at(n.Token3))).Stmt
		}

		rparen := l.at(n.Token5)
		cond := l.optExpr(n.Expression2, l.at(n.Token4))
		post := l.optExpr(n.Expression3, rparen)

		return l.b.For(pos, init, cond, post, rparen, body).Stmt

	case cc.IterationStatementForDecl:
		init := l.declaration(n.Declaration)
		rparen := l.at(n.Token4)
		cond := l.optExpr(n.Expression, l.at(n.Token3))
		post := l.optExpr(n.Expression2, rparen)

		return l.b.For(pos, init, cond, post, rparen, body).Stmt

	default:
		return body
	}
}

func (l *lowerer) jump(n *cc.JumpStatement) ast.Stmt {
	pos := l.at(n.Token)

	switch n.Case {
	case cc.JumpStatementGoto:
		return l.b.Goto(pos, n.Token2.Value.String(), l.at(n.Token2)).Stmt

	case cc.JumpStatementGotoExpr:
		return l.b.IndirectGoto(pos, l.at(n.Token2), l.expr(n.Expression, l.at(n.Token3))).Stmt

	case cc.JumpStatementContinue:
		return l.b.Continue(pos, l.scopes).Stmt

	case cc.JumpStatementBreak:
		return l.b.Break(pos, l.scopes).Stmt

	case cc.JumpStatementReturn:
		return l.b.Return(pos, l.optExpr(n.Expression, l.at(n.Token2))).Stmt

	default:
		return nil
	}
}

func (l *lowerer) expr(n *cc.Expression, end token.Pos) *expr {
	return &expr{
		pos:  l.pos.of(n.Position()),
		end:  end,
		op:   n.Operand,
		typ:  operandType(n.Operand),
		pure: n.IsSideEffectsFree,
	}
}

// optExpr returns nil for an absent expression, keeping the interface nil.
func (l *lowerer) optExpr(n *cc.Expression, end token.Pos) ast.Expr {
	if n == nil {
		return nil
	}

	return l.expr(n, end)
}

func (l *lowerer) assign(n *cc.AssignmentExpression, end token.Pos) *expr {
	return &expr{
		pos:  l.pos.of(n.Position()),
		end:  end,
		op:   n.Operand,
		typ:  operandType(n.Operand),
		pure: n.IsSideEffectsFree,
	}
}

func (l *lowerer) constant(n *cc.ConstantExpression, end token.Pos) *expr {
	return &expr{
		pos:  l.pos.of(n.Position()),
		end:  end,
		op:   n.Operand,
		typ:  operandType(n.Operand),
		pure: true,
	}
}

func operandType(op cc.Operand) ctype {
	if op == nil {
		return ctype{}
	}

	return ctype{op.Type()}
}
