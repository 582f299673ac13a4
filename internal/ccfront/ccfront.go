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

// Package ccfront checks C function bodies parsed and type checked by modernc.org/cc/v3.
//
// Function definitions of a translation unit are lowered statement by statement into a
// [sema.Builder]. Expressions keep the operands computed by the cc type checker.
package ccfront

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"runtime"
	"runtime/trace"

	"modernc.org/cc/v3"

	"fillmore-labs.com/stmtsema/diag"
	"fillmore-labs.com/stmtsema/sema"
)

// ErrTranslate is returned when a translation unit can't be parsed or type checked.
var ErrTranslate = errors.New("can't translate C source")

// Source is a C translation unit held in memory. Preprocessor includes are not resolved.
type Source struct {
	Name  string
	Value string
}

// Unit is a type checked translation unit.
type Unit struct {
	ast *cc.AST
	abi *cc.ABI
	pos positions
}

// Parse translates src for the host ABI, registering its positions in fset.
func Parse(ctx context.Context, fset *token.FileSet, src Source) (u *Unit, err error) {
	defer trace.StartRegion(ctx, "Parse").End()

	abi, err := cc.NewABI(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("can't determine ABI for %s/%s: %w", runtime.GOOS, runtime.GOARCH, err)
	}

	defer func() {
		if r := recover(); r != nil {
			u, err = nil, fmt.Errorf("%w %s: %v", ErrTranslate, src.Name, r)
		}
	}()

	cfg := &cc.Config{ABI: abi}

	a, err := cc.Translate(cfg, nil, nil, []cc.Source{{Name: src.Name, Value: src.Value, DoNotCache: true}})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrTranslate, src.Name, err)
	}

	return &Unit{ast: a, abi: &cfg.ABI, pos: newPositions(fset, src.Name, []byte(src.Value))}, nil
}

// Check checks every function definition of u, reporting to sink.
func (u *Unit) Check(ctx context.Context, c *sema.Checker, sink diag.Sink) []sema.Summary {
	sem := semantics{abi: u.abi}

	var summaries []sema.Summary

	for tu := u.ast.TranslationUnit; tu != nil; tu = tu.TranslationUnit {
		ed := tu.ExternalDeclaration
		if ed == nil || ed.FunctionDefinition == nil {
			continue
		}

		summaries = append(summaries, u.function(ctx, c, sink, sem, ed.FunctionDefinition))
	}

	return summaries
}

func (u *Unit) function(ctx context.Context, c *sema.Checker, sink diag.Sink, sem semantics, fd *cc.FunctionDefinition) sema.Summary {
	d := fd.Declarator

	var result cc.Type
	if t := d.Type(); t != nil && t.Kind() == cc.Function {
		result = t.Result()
	}

	fn := sema.Func{Name: d.Name().String(), Pos: u.pos.of(d.Position()), Result: ctype{result}}
	b := c.Function(ctx, sema.Env{Sink: sink, Semantics: sem}, fn)

	l := &lowerer{b: b, pos: u.pos, scopes: b.Scopes()}
	l.compound(fd.CompoundStatement)

	return b.Finish()
}
