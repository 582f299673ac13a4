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

// Package label resolves label definitions and goto references within one function body.
package label

import (
	"go/token"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
)

// Resolver maps label names to their single record in a function body.
//
// A goto before the definition creates a forward-declared record; the definition later
// fills in the same record, so every goto shares the identity of the defined label.
type Resolver struct {
	arena  Arena
	labels map[string]*ast.LabelStmt
}

// Reference returns the record for name, creating a forward-declared one at pos if absent.
func (r *Resolver) Reference(name string, pos token.Pos) *ast.LabelStmt {
	if l, ok := r.labels[name]; ok {
		return l
	}

	return r.insert(name, pos)
}

// Define defines label name at pos labeling sub.
//
// A redefinition is reported with a note at the first definition, and sub is returned
// in place of the discarded label.
func (r *Resolver) Define(sink diag.Sink, name string, pos token.Pos, sub ast.Stmt) ast.Result {
	l, ok := r.labels[name]
	switch {
	case !ok:
		l = r.insert(name, pos)

	case l.Defined():
		sink.Report(diag.New(diag.RedefinitionOfLabel, pos, name).
			WithNote(diag.PreviousDefinition, l.Ident))

		return ast.Recover(sub)

	default:
		l.Ident = pos
	}

	l.Stmt = sub

	return ast.Ok(l)
}

// Lookup returns the record for name, if any.
func (r *Resolver) Lookup(name string) (*ast.LabelStmt, bool) {
	l, ok := r.labels[name]

	return l, ok
}

// Undefined returns the labels referenced but never defined, in order of first reference.
func (r *Resolver) Undefined() []*ast.LabelStmt {
	var undefined []*ast.LabelStmt

	for _, l := range r.arena.All() {
		if !l.Defined() {
			undefined = append(undefined, l)
		}
	}

	return undefined
}

// Len returns the number of distinct labels seen.
func (r *Resolver) Len() int { return r.arena.Len() }

func (r *Resolver) insert(name string, pos token.Pos) *ast.LabelStmt {
	if r.labels == nil {
		r.labels = make(map[string]*ast.LabelStmt)
	}

	l := r.arena.New(name, pos)
	r.labels[name] = l

	return l
}
