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

// DeclClass is the kind of entity a [Decl] introduces.
type DeclClass uint8

//go:generate go tool stringer -type DeclClass -linecomment

const (
	VarDecl       DeclClass = iota // variable
	FuncDecl                       // function
	TypedefDecl                    // typedef
	TagDecl                        // tag
	EnumConstDecl                  // enumerator
)

// StorageClass is the storage-class specifier of a declaration.
type StorageClass uint8

//go:generate go tool stringer -type StorageClass -linecomment

const (
	NoStorage   StorageClass = iota // none
	Auto                            // auto
	Register                        // register
	Static                          // static
	Extern                          // extern
	ThreadLocal                     // _Thread_local
)

// Decl is a declared entity.
type Decl interface {
	Pos() token.Pos
	Name() string
	Class() DeclClass
	Storage() StorageClass
	BlockScope() bool // declared inside a function body
}

// HasLocalStorage reports whether d is a block-scope variable with automatic storage duration.
func HasLocalStorage(d Decl) bool {
	if d.Class() != VarDecl || !d.BlockScope() {
		return false
	}

	switch d.Storage() {
	case NoStorage, Auto, Register:
		return true

	default:
		return false
	}
}
