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
)

// decl adapts a block-scope [cc.Declarator].
type decl struct {
	pos     token.Pos
	name    string
	class   ast.DeclClass
	storage ast.StorageClass
}

func (d *decl) Pos() token.Pos            { return d.pos }
func (d *decl) Name() string              { return d.name }
func (d *decl) Class() ast.DeclClass      { return d.class }
func (d *decl) Storage() ast.StorageClass { return d.storage }
func (d *decl) BlockScope() bool          { return true }

func (l *lowerer) decl(d *cc.Declarator) ast.Decl {
	r := &decl{pos: l.pos.of(d.Position()), name: d.Name().String(), class: ast.VarDecl}

	switch {
	case d.IsTypedefName:
		r.class = ast.TypedefDecl

	case d.Type() != nil && d.Type().Kind() == cc.Function:
		r.class = ast.FuncDecl
	}

	switch {
	case d.IsStatic():
		r.storage = ast.Static

	case d.IsExtern():
		r.storage = ast.Extern
	}

	return r
}
