// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package testsource

import (
	"go/token"
	"strconv"

	"fillmore-labs.com/stmtsema/apint"
	"fillmore-labs.com/stmtsema/ast"
)

// Expr is a synthetic, already typed expression.
type Expr struct {
	From, To    token.Pos
	T           *Type
	Value       *apint.Int         // integer constant value, nil when not constant
	SideEffects bool               // evaluation has side effects
	Lvalue      bool               // designates an object
	Local       string             // name of the local variable whose address is taken
	Compat      *ast.Compatibility // forced assignment compatibility
}

func (x *Expr) Pos() token.Pos { return x.From }
func (x *Expr) End() token.Pos { return x.To }
func (x *Expr) Type() ast.Type { return x.T }

func (x *Expr) constant() (apint.Int, bool) {
	if x.Value == nil {
		return apint.Int{}, false
	}

	return *x.Value, true
}

func (x *Expr) effects() bool { return x.SideEffects }
func (x *Expr) lvalue() bool  { return x.Lvalue }
func (x *Expr) local() string { return x.Local }

func (x *Expr) compat() *ast.Compatibility { return x.Compat }

// Const returns an integer constant of type t at pos.
func Const(pos token.Pos, v int64, t *Type) *Expr {
	c := apint.New(v, t.Bits, t.Signed)

	return &Expr{From: pos, To: pos + token.Pos(len(strconv.FormatInt(v, 10))), T: t, Value: &c}
}

// Var returns a reference to variable name of type t at pos.
func Var(pos token.Pos, name string, t *Type) *Expr {
	return &Expr{From: pos, To: pos + token.Pos(len(name)), T: t, Lvalue: true}
}

// Call returns a call expression spanning pos to end with result type t.
func Call(pos, end token.Pos, t *Type) *Expr {
	return &Expr{From: pos, To: end, T: t, SideEffects: true}
}

// AddrOf returns the address of the local variable name at pos.
func AddrOf(pos token.Pos, name string, t *Type) *Expr {
	return &Expr{From: pos, To: pos + token.Pos(len(name)+1), T: Pointer(t), Local: name}
}

// WithCompat returns x with a forced assignment compatibility.
func (x *Expr) WithCompat(c ast.Compatibility) *Expr {
	x.Compat = &c

	return x
}

// Op is a binary or unary operator expression.
type Op struct {
	*Expr
	Operator token.Pos
}

// OpPos implements [ast.Operation].
func (o *Op) OpPos() token.Pos { return o.Operator }

// Binary returns x op y with result type t, the operator at op.
// The result is constant when both operands are.
func Binary(x ast.Expr, op token.Pos, y ast.Expr, t *Type) *Op {
	e := &Expr{From: x.Pos(), To: y.End(), T: t, SideEffects: sideEffects(x) || sideEffects(y)}

	return &Op{Expr: e, Operator: op}
}

// Assign returns x = y.
func Assign(x ast.Expr, op token.Pos, y ast.Expr) *Op {
	o := Binary(x, op, y, x.Type().(*Type))
	o.SideEffects = true

	return o
}

// Paren is a parenthesized expression.
type Paren struct {
	*Expr
	X ast.Expr
}

// Parens returns (x).
func Parens(lparen token.Pos, x ast.Expr, rparen token.Pos) *Paren {
	return &Paren{Expr: &Expr{From: lparen, To: rparen + 1, T: x.Type().(*Type)}, X: x}
}

// Inner implements [ast.Parenthesized].
func (p *Paren) Inner() ast.Expr { return p.X }

func (p *Paren) constant() (apint.Int, bool) {
	if c, ok := p.X.(interface{ constant() (apint.Int, bool) }); ok {
		return c.constant()
	}

	return apint.Int{}, false
}

func (p *Paren) effects() bool { return sideEffects(p.X) }
func (p *Paren) lvalue() bool  { return isLvalue(p.X) }
func (p *Paren) local() string { return localAddress(p.X) }

func sideEffects(x ast.Expr) bool {
	if e, ok := x.(interface{ effects() bool }); ok {
		return e.effects()
	}

	return true
}

func isLvalue(x ast.Expr) bool {
	if e, ok := x.(interface{ lvalue() bool }); ok {
		return e.lvalue()
	}

	return false
}

func localAddress(x ast.Expr) string {
	if e, ok := x.(interface{ local() string }); ok {
		return e.local()
	}

	return ""
}
