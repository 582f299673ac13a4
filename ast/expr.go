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

import "go/token"

// Type is the view of a C type needed by statement analysis.
type Type interface {
	String() string
	IsVoid() bool
	IsScalar() bool  // arithmetic or pointer
	IsInteger() bool // integer or enumeration
	IsSigned() bool
	Width() uint // width in bits, meaningful for integer types
}

// Expr is an already analyzed expression.
type Expr interface {
	Pos() token.Pos
	End() token.Pos
	Type() Type
}

// Operation is implemented by binary and unary operator expressions.
type Operation interface {
	Expr
	OpPos() token.Pos // position of the operator token
}

// Parenthesized is implemented by parenthesized expressions.
type Parenthesized interface {
	Expr
	Inner() Expr
}

// Unparen strips any enclosing parentheses from x.
func Unparen(x Expr) Expr {
	for {
		p, ok := x.(Parenthesized)
		if !ok {
			return x
		}

		x = p.Inner()
	}
}

// Compatibility classifies a value assigned or returned to a destination type.
type Compatibility uint8

//go:generate go tool stringer -type Compatibility -linecomment

const (
	Compatible                          Compatibility = iota // compatible
	Incompatible                                             // incompatible
	PointerFromInt                                           // pointer-from-int
	IntFromPointer                                           // int-from-pointer
	IncompatiblePointer                                      // incompatible-pointer
	CompatiblePointerDiscardsQualifiers                      // discards-qualifiers
)
