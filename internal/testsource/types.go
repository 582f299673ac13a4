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

// Package testsource provides synthetic C types, expressions and declarations for tests.
//
// It is designed to exercise statement analysis without a C parser: expressions carry
// their type, constant value and the few semantic properties the checker asks about.
package testsource

import "strconv"

// TypeKind classifies a synthetic [Type].
type TypeKind uint8

const (
	VoidKind TypeKind = iota
	IntegerKind
	FloatKind
	PointerKind
	ArrayKind
	FunctionKind
	StructKind
)

// Type is a synthetic C type.
type Type struct {
	Name   string
	Kind   TypeKind
	Bits   uint
	Signed bool
	Elem   *Type // pointee, element or result type
}

func (t *Type) String() string  { return t.Name }
func (t *Type) IsVoid() bool    { return t.Kind == VoidKind }
func (t *Type) IsInteger() bool { return t.Kind == IntegerKind }
func (t *Type) IsSigned() bool  { return t.Signed }
func (t *Type) Width() uint     { return t.Bits }

func (t *Type) IsScalar() bool {
	switch t.Kind {
	case IntegerKind, FloatKind, PointerKind:
		return true

	default:
		return false
	}
}

// Int returns an integer type.
func Int(name string, bits uint, signed bool) *Type {
	return &Type{Name: name, Kind: IntegerKind, Bits: bits, Signed: signed}
}

// Pointer returns a pointer to elem.
func Pointer(elem *Type) *Type {
	return &Type{Name: elem.Name + " *", Kind: PointerKind, Bits: 64, Elem: elem}
}

// Array returns an array of n elements.
func Array(elem *Type, n int) *Type {
	return &Type{Name: elem.Name + "[" + strconv.Itoa(n) + "]", Kind: ArrayKind, Elem: elem}
}

// Function returns a function type with the given result.
func Function(result *Type) *Type {
	return &Type{Name: result.Name + " (void)", Kind: FunctionKind, Elem: result}
}

// Struct returns a structure type.
func Struct(tag string) *Type {
	return &Type{Name: "struct " + tag, Kind: StructKind}
}

// Common types.
var (
	Void   = &Type{Name: "void", Kind: VoidKind}
	Bool   = Int("_Bool", 8, false)
	Char   = Int("char", 8, true)
	UChar  = Int("unsigned char", 8, false)
	Short  = Int("short", 16, true)
	Int32  = Int("int", 32, true)
	Uint32 = Int("unsigned int", 32, false)
	Long   = Int("long", 64, true)
	ULong  = Int("unsigned long", 64, false)
	Double = &Type{Name: "double", Kind: FloatKind, Bits: 64}
	VoidP  = Pointer(Void)
	CharP  = Pointer(Char)
	IntP   = Pointer(Int32)
)
