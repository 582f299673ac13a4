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

package ast

import (
	"go/token"

	"fillmore-labs.com/stmtsema/apint"
)

// Stmt is a validated statement node.
type Stmt interface {
	Pos() token.Pos // position of the first character belonging to the node
	End() token.Pos // position of the first character immediately after the node
	Kind() Kind
	stmtNode()
}

// SwitchCase is a case or default label attached to a [SwitchStmt].
type SwitchCase interface {
	Stmt
	SubStmt() Stmt
	switchCase()
}

type (
	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		X Expr
	}

	// NullStmt is an empty statement consisting of a single semicolon.
	NullStmt struct {
		Semi token.Pos
	}

	// DeclStmt declares one or more entities in block scope.
	DeclStmt struct {
		Start, Finish token.Pos
		Decls         []Decl // declarators in source order
	}

	// CompoundStmt is a braced statement list.
	CompoundStmt struct {
		Lbrace token.Pos
		List   []Stmt
		Rbrace token.Pos
	}

	// IfStmt is an if statement with an optional else branch.
	IfStmt struct {
		If      token.Pos
		Cond    Expr
		Then    Stmt
		ElsePos token.Pos
		Else    Stmt // nil without else branch
	}

	// SwitchStmt is a switch statement.
	SwitchStmt struct {
		Switch token.Pos
		Cond   Expr // after integer promotions
		Body   Stmt
		Cases  []SwitchCase // case and default labels in source order
	}

	// CaseStmt is a case label, optionally a GNU case range when RHS is set.
	CaseStmt struct {
		Case     token.Pos
		LHS      Expr
		Ellipsis token.Pos
		RHS      Expr // nil for a scalar case
		Colon    token.Pos
		Body     Stmt

		// Lo and Hi are the evaluated constants of LHS and RHS. Hi is only meaningful when RHS != nil.
		Lo, Hi apint.Int
	}

	// DefaultStmt is a default label.
	DefaultStmt struct {
		Default token.Pos
		Colon   token.Pos
		Body    Stmt
	}

	// WhileStmt is a while loop.
	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
	}

	// DoStmt is a do-while loop.
	DoStmt struct {
		Do    token.Pos
		Body  Stmt
		While token.Pos
		Cond  Expr
		Semi  token.Pos
	}

	// ForStmt is a for loop. Every clause is optional.
	ForStmt struct {
		For    token.Pos
		Init   Stmt
		Cond   Expr
		Post   Expr
		Rparen token.Pos
		Body   Stmt
	}

	// ForEachStmt is a for loop over a collection.
	ForEachStmt struct {
		For        token.Pos
		Element    Stmt // declaration or expression statement
		Collection Expr
		Rparen     token.Pos
		Body       Stmt
	}

	// GotoStmt jumps to a label of the enclosing function.
	GotoStmt struct {
		Goto     token.Pos
		LabelPos token.Pos
		Label    *LabelStmt // shared with the label definition
	}

	// IndirectGotoStmt jumps to a computed address.
	IndirectGotoStmt struct {
		Goto   token.Pos
		Star   token.Pos
		Target Expr
	}

	// LabelStmt is a labeled statement. Stmt is nil while the label is only
	// referenced by goto statements.
	LabelStmt struct {
		Ident token.Pos
		Name  string
		Stmt  Stmt
	}

	// ContinueStmt is a continue statement.
	ContinueStmt struct {
		Continue token.Pos
	}

	// BreakStmt is a break statement.
	BreakStmt struct {
		Break token.Pos
	}

	// ReturnStmt is a return statement with an optional result.
	ReturnStmt struct {
		Return token.Pos
		Result Expr
	}

	// AsmStmt is a GNU inline assembly statement.
	AsmStmt struct {
		Asm      token.Pos
		Volatile bool
		Template StringLit
		Outputs  []AsmOperand
		Inputs   []AsmOperand
		Clobbers []StringLit
		Rparen   token.Pos
	}

	// TryStmt is a try block with optional catch chain and finally block.
	TryStmt struct {
		At      token.Pos
		Body    Stmt
		Catch   *CatchStmt
		Finally *FinallyStmt
	}

	// CatchStmt is one catch clause. Clauses of a try block are chained through Next.
	CatchStmt struct {
		At     token.Pos
		Rparen token.Pos
		Param  Stmt // nil for a catch-all
		Body   Stmt
		Next   *CatchStmt
	}

	// FinallyStmt is a finally block.
	FinallyStmt struct {
		At   token.Pos
		Body Stmt
	}

	// ThrowStmt throws X, or rethrows the current exception when X is nil.
	ThrowStmt struct {
		At token.Pos
		X  Expr
		// Semi is the end of the statement.
		Semi token.Pos
	}
)

// AsmOperand is an output or input operand of an [AsmStmt].
type AsmOperand struct {
	Name       string // symbolic name, may be empty
	Constraint StringLit
	X          Expr
}

// StringLit is a narrow string literal with its unquoted value.
type StringLit struct {
	ValuePos token.Pos // position of the opening quote
	Value    string
}

// Pos returns the position of the opening quote.
func (s StringLit) Pos() token.Pos { return s.ValuePos }

// End returns the position after the closing quote.
func (s StringLit) End() token.Pos {
	if !s.ValuePos.IsValid() {
		return token.NoPos
	}

	return s.ValuePos + token.Pos(len(s.Value)+2)
}

func (s *ExprStmt) Pos() token.Pos         { return s.X.Pos() }
func (s *NullStmt) Pos() token.Pos         { return s.Semi }
func (s *DeclStmt) Pos() token.Pos         { return s.Start }
func (s *CompoundStmt) Pos() token.Pos     { return s.Lbrace }
func (s *IfStmt) Pos() token.Pos           { return s.If }
func (s *SwitchStmt) Pos() token.Pos       { return s.Switch }
func (s *CaseStmt) Pos() token.Pos         { return s.Case }
func (s *DefaultStmt) Pos() token.Pos      { return s.Default }
func (s *WhileStmt) Pos() token.Pos        { return s.While }
func (s *DoStmt) Pos() token.Pos           { return s.Do }
func (s *ForStmt) Pos() token.Pos          { return s.For }
func (s *ForEachStmt) Pos() token.Pos      { return s.For }
func (s *GotoStmt) Pos() token.Pos         { return s.Goto }
func (s *IndirectGotoStmt) Pos() token.Pos { return s.Goto }
func (s *LabelStmt) Pos() token.Pos        { return s.Ident }
func (s *ContinueStmt) Pos() token.Pos     { return s.Continue }
func (s *BreakStmt) Pos() token.Pos        { return s.Break }
func (s *ReturnStmt) Pos() token.Pos       { return s.Return }
func (s *AsmStmt) Pos() token.Pos          { return s.Asm }
func (s *TryStmt) Pos() token.Pos          { return s.At }
func (s *CatchStmt) Pos() token.Pos        { return s.At }
func (s *FinallyStmt) Pos() token.Pos      { return s.At }
func (s *ThrowStmt) Pos() token.Pos        { return s.At }

func (s *ExprStmt) End() token.Pos         { return s.X.End() }
func (s *NullStmt) End() token.Pos         { return s.Semi + 1 }
func (s *DeclStmt) End() token.Pos         { return s.Finish }
func (s *CompoundStmt) End() token.Pos     { return s.Rbrace + 1 }
func (s *CaseStmt) End() token.Pos         { return endOr(s.Body, s.Colon+1) }
func (s *DefaultStmt) End() token.Pos      { return endOr(s.Body, s.Colon+1) }
func (s *WhileStmt) End() token.Pos        { return endOr(s.Body, s.Cond.End()) }
func (s *DoStmt) End() token.Pos           { return s.Semi + 1 }
func (s *ForStmt) End() token.Pos          { return endOr(s.Body, s.Rparen+1) }
func (s *ForEachStmt) End() token.Pos      { return endOr(s.Body, s.Rparen+1) }
func (s *GotoStmt) End() token.Pos         { return s.LabelPos + token.Pos(len(s.Label.Name)) }
func (s *IndirectGotoStmt) End() token.Pos { return s.Target.End() }
func (s *LabelStmt) End() token.Pos        { return endOr(s.Stmt, s.Ident+token.Pos(len(s.Name))) }
func (s *ContinueStmt) End() token.Pos     { return s.Continue + token.Pos(len("continue")) }
func (s *BreakStmt) End() token.Pos        { return s.Break + token.Pos(len("break")) }
func (s *AsmStmt) End() token.Pos          { return s.Rparen + 1 }
func (s *CatchStmt) End() token.Pos        { return endOr(s.Body, s.Rparen+1) }
func (s *FinallyStmt) End() token.Pos      { return endOr(s.Body, s.At+1) }
func (s *ThrowStmt) End() token.Pos        { return s.Semi + 1 }

func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}

	return endOr(s.Then, s.Cond.End())
}

func (s *SwitchStmt) End() token.Pos {
	if s.Body != nil {
		return s.Body.End()
	}

	return s.Cond.End()
}

func (s *ReturnStmt) End() token.Pos {
	if s.Result != nil {
		return s.Result.End()
	}

	return s.Return + token.Pos(len("return"))
}

func (s *TryStmt) End() token.Pos {
	switch {
	case s.Finally != nil:
		return s.Finally.End()

	case s.Catch != nil:
		c := s.Catch
		for c.Next != nil {
			c = c.Next
		}

		return c.End()

	default:
		return endOr(s.Body, s.At+1)
	}
}

func endOr(s Stmt, pos token.Pos) token.Pos {
	if s == nil {
		return pos
	}

	return s.End()
}

func (*ExprStmt) stmtNode()         {}
func (*NullStmt) stmtNode()         {}
func (*DeclStmt) stmtNode()         {}
func (*CompoundStmt) stmtNode()     {}
func (*IfStmt) stmtNode()           {}
func (*SwitchStmt) stmtNode()       {}
func (*CaseStmt) stmtNode()         {}
func (*DefaultStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()        {}
func (*DoStmt) stmtNode()           {}
func (*ForStmt) stmtNode()          {}
func (*ForEachStmt) stmtNode()      {}
func (*GotoStmt) stmtNode()         {}
func (*IndirectGotoStmt) stmtNode() {}
func (*LabelStmt) stmtNode()        {}
func (*ContinueStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()        {}
func (*ReturnStmt) stmtNode()       {}
func (*AsmStmt) stmtNode()          {}
func (*TryStmt) stmtNode()          {}
func (*CatchStmt) stmtNode()        {}
func (*FinallyStmt) stmtNode()      {}
func (*ThrowStmt) stmtNode()        {}

func (s *CaseStmt) SubStmt() Stmt    { return s.Body }
func (s *DefaultStmt) SubStmt() Stmt { return s.Body }

func (*CaseStmt) switchCase()    {}
func (*DefaultStmt) switchCase() {}

// IsRange reports whether this is a GNU case range.
func (s *CaseStmt) IsRange() bool { return s.RHS != nil }

// Defined reports whether the label has been defined, not only referenced.
func (s *LabelStmt) Defined() bool { return s.Stmt != nil }
