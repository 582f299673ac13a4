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

	"fillmore-labs.com/stmtsema/apint"
	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/sema"
)

// ctype adapts a [cc.Type]. A nil type is invalid.
type ctype struct{ t cc.Type }

func (c ctype) kind() cc.Kind {
	if c.t == nil {
		return cc.Invalid
	}

	return c.t.Kind()
}

func (c ctype) String() string {
	if c.t == nil {
		return "<invalid>"
	}

	return c.t.String()
}

func (c ctype) IsVoid() bool    { return c.kind() == cc.Void }
func (c ctype) IsScalar() bool  { return c.t != nil && c.kind() != cc.Invalid && c.t.IsScalarType() }
func (c ctype) IsInteger() bool { return c.t != nil && c.kind() != cc.Invalid && c.t.IsIntegerType() }
func (c ctype) IsSigned() bool  { return c.IsInteger() && c.t.IsSignedType() }

func (c ctype) Width() uint {
	if !c.IsInteger() {
		return 0
	}

	return uint(c.t.Size()) * 8
}

// expr adapts a typed C expression. The end position is the token following it.
type expr struct {
	pos, end token.Pos
	op       cc.Operand
	typ      ctype
	pure     bool // free of side effects
}

func (x *expr) Pos() token.Pos { return x.pos }
func (x *expr) End() token.Pos { return x.end }
func (x *expr) Type() ast.Type { return x.typ }

// semantics implements [sema.Semantics] on the operands computed by the cc type checker.
type semantics struct {
	abi *cc.ABI
}

func (s semantics) DefaultConversion(x ast.Expr) ast.Expr {
	e, ok := x.(*expr)
	if !ok {
		return x
	}

	switch e.typ.kind() {
	case cc.Array, cc.Function:
		c := *e
		c.typ = ctype{e.typ.t.Decay()}

		return &c

	default:
		return x
	}
}

func (s semantics) UnaryConversion(x ast.Expr) ast.Expr {
	x = s.DefaultConversion(x)

	e, ok := x.(*expr)
	if !ok || !e.typ.IsInteger() {
		return x
	}

	promoted := s.abi.Type(cc.Int)
	if e.typ.t.Size() >= promoted.Size() {
		return x
	}

	c := *e
	c.typ = ctype{promoted}

	return &c
}

func (s semantics) IntegerConstant(x ast.Expr) (apint.Int, token.Pos, bool) {
	e, ok := x.(*expr)
	if !ok || e.op == nil || !e.typ.IsInteger() {
		return apint.Int{}, x.Pos(), false
	}

	width, signed := e.typ.Width(), e.typ.IsSigned()

	switch v := e.op.Value().(type) {
	case cc.Int64Value:
		return apint.New(int64(v), width, signed), e.pos, true

	case cc.Uint64Value:
		return apint.NewUnsigned(uint64(v), width, signed), e.pos, true

	default:
		return apint.Int{}, e.pos, false
	}
}

func (s semantics) Compatibility(dst ast.Type, x ast.Expr) ast.Compatibility {
	d, ok1 := dst.(ctype)
	e, ok2 := s.DefaultConversion(x).(*expr)
	if !ok1 || !ok2 || d.t == nil || e.typ.t == nil {
		return ast.Incompatible
	}

	src := e.typ

	switch dk, sk := d.kind(), src.kind(); {
	case dk == cc.Ptr && sk == cc.Ptr:
		de, se := d.t.Elem(), src.t.Elem()
		if de.Kind() == cc.Void || se.Kind() == cc.Void || de.IsCompatible(se) {
			return ast.Compatible
		}

		return ast.IncompatiblePointer

	case dk == cc.Ptr && src.IsInteger():
		if isNullConstant(e) {
			return ast.Compatible
		}

		return ast.PointerFromInt

	case d.IsInteger() && sk == cc.Ptr:
		return ast.IntFromPointer

	case d.t.IsArithmeticType() && src.t.IsArithmeticType():
		return ast.Compatible

	case d.t.IsCompatible(src.t):
		return ast.Compatible

	default:
		return ast.Incompatible
	}
}

func isNullConstant(e *expr) bool {
	if e.op == nil {
		return false
	}

	switch v := e.op.Value().(type) {
	case cc.Int64Value:
		return v == 0

	case cc.Uint64Value:
		return v == 0

	default:
		return false
	}
}

func (s semantics) IsLvalue(x ast.Expr) bool {
	e, ok := x.(*expr)

	return ok && e.op != nil && e.op.IsLValue()
}

func (s semantics) HasSideEffects(x ast.Expr) bool {
	e, ok := x.(*expr)

	return !ok || !e.pure
}

// LocalAddress is not tracked through cc operands.
func (s semantics) LocalAddress(ast.Expr) (string, bool) { return "", false }

var (
	_ ast.Type       = ctype{}
	_ sema.Semantics = semantics{}
)
