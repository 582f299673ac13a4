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

	"fillmore-labs.com/stmtsema/apint"
	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/target"
)

// Semantics is the expression layer of the front end.
type Semantics interface {
	// DefaultConversion applies lvalue, array-to-pointer and function-to-pointer conversions.
	DefaultConversion(x ast.Expr) ast.Expr

	// UnaryConversion applies the default conversions and integer promotions.
	UnaryConversion(x ast.Expr) ast.Expr

	// IntegerConstant evaluates an integer constant expression. When x is not constant,
	// the position of the offending subexpression is returned.
	IntegerConstant(x ast.Expr) (v apint.Int, at token.Pos, ok bool)

	// Compatibility classifies assigning x to an object of type dst.
	Compatibility(dst ast.Type, x ast.Expr) ast.Compatibility

	IsLvalue(x ast.Expr) bool
	HasSideEffects(x ast.Expr) bool

	// LocalAddress returns the name of the local variable whose address x evaluates to.
	LocalAddress(x ast.Expr) (name string, ok bool)
}

// Env is the environment a function body is checked in.
type Env struct {
	Sink      diag.Sink // receives diagnostics, nil discards them
	Semantics Semantics
	Target    target.Info // overrides the checker target when set
}

// Func describes the function whose body is checked.
type Func struct {
	Name   string
	Pos    token.Pos
	Result ast.Type
}
