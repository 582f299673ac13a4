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

	"fillmore-labs.com/stmtsema/apint"
	"fillmore-labs.com/stmtsema/ast"
)

// Semantics answers expression queries about synthetic expressions.
type Semantics struct{}

// DefaultConversion decays arrays and functions to pointers.
func (Semantics) DefaultConversion(x ast.Expr) ast.Expr {
	t, ok := x.Type().(*Type)
	if !ok {
		return x
	}

	switch t.Kind {
	case ArrayKind:
		return convert(x, Pointer(t.Elem))

	case FunctionKind:
		return convert(x, Pointer(t))

	default:
		return x
	}
}

// UnaryConversion promotes integers narrower than int to int.
func (s Semantics) UnaryConversion(x ast.Expr) ast.Expr {
	x = s.DefaultConversion(x)

	t, ok := x.Type().(*Type)
	if !ok || t.Kind != IntegerKind || t.Bits >= Int32.Bits {
		return x
	}

	return convert(x, Int32)
}

// IntegerConstant returns the value of an integer constant expression,
// or the position of the expression when it is not constant.
func (Semantics) IntegerConstant(x ast.Expr) (apint.Int, token.Pos, bool) {
	if c, ok := ast.Unparen(x).(interface{ constant() (apint.Int, bool) }); ok {
		if v, ok := c.constant(); ok {
			return v, x.Pos(), true
		}
	}

	return apint.Int{}, x.Pos(), false
}

// Compatibility classifies assigning x to a destination of type dst.
func (Semantics) Compatibility(dst ast.Type, x ast.Expr) ast.Compatibility {
	if c, ok := x.(interface{ compat() *ast.Compatibility }); ok && c.compat() != nil {
		return *c.compat()
	}

	d, ok1 := dst.(*Type)
	s, ok2 := x.Type().(*Type)
	if !ok1 || !ok2 {
		return ast.Incompatible
	}

	switch {
	case d == s:
		return ast.Compatible

	case d.Kind == PointerKind && s.Kind == PointerKind:
		if d.Elem == s.Elem || d.Elem.IsVoid() || s.Elem.IsVoid() {
			return ast.Compatible
		}

		return ast.IncompatiblePointer

	case d.Kind == PointerKind && s.Kind == IntegerKind:
		return ast.PointerFromInt

	case d.Kind == IntegerKind && s.Kind == PointerKind:
		return ast.IntFromPointer

	case d.IsScalar() && s.IsScalar() && d.Kind != PointerKind && s.Kind != PointerKind:
		return ast.Compatible

	default:
		return ast.Incompatible
	}
}

func (Semantics) IsLvalue(x ast.Expr) bool       { return isLvalue(x) }
func (Semantics) HasSideEffects(x ast.Expr) bool { return sideEffects(x) }

func (Semantics) LocalAddress(x ast.Expr) (string, bool) {
	name := localAddress(ast.Unparen(x))

	return name, name != ""
}

// conversion is an implicit conversion of an expression to another type.
type conversion struct {
	ast.Expr
	to *Type
}

func (c conversion) Type() ast.Type { return c.to }

func (c conversion) constant() (apint.Int, bool) {
	if v, ok := c.Expr.(interface{ constant() (apint.Int, bool) }); ok {
		if i, ok := v.constant(); ok {
			r, _, _ := apint.Renormalize(i, c.to.Bits, c.to.Signed)

			return r, true
		}
	}

	return apint.Int{}, false
}

func (c conversion) effects() bool { return sideEffects(c.Expr) }

func convert(x ast.Expr, t *Type) ast.Expr { return conversion{Expr: x, to: t} }
