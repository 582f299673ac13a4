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

	"fillmore-labs.com/stmtsema/ast"
)

// Decl is a synthetic declaration.
type Decl struct {
	At           token.Pos
	Ident        string
	Kind         ast.DeclClass
	StorageClass ast.StorageClass
	File         bool // declared at file scope
}

func (d *Decl) Pos() token.Pos            { return d.At }
func (d *Decl) Name() string              { return d.Ident }
func (d *Decl) Class() ast.DeclClass      { return d.Kind }
func (d *Decl) Storage() ast.StorageClass { return d.StorageClass }
func (d *Decl) BlockScope() bool          { return !d.File }

// Local returns a block-scope variable with automatic storage.
func Local(pos token.Pos, name string) *Decl {
	return &Decl{At: pos, Ident: name, Kind: ast.VarDecl}
}

// LocalWith returns a block-scope variable with the given storage class.
func LocalWith(pos token.Pos, name string, storage ast.StorageClass) *Decl {
	return &Decl{At: pos, Ident: name, Kind: ast.VarDecl, StorageClass: storage}
}

// Typedef returns a block-scope typedef.
func Typedef(pos token.Pos, name string) *Decl {
	return &Decl{At: pos, Ident: name, Kind: ast.TypedefDecl}
}
