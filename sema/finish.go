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
	"log/slog"

	"fillmore-labs.com/stmtsema/ast"
	"fillmore-labs.com/stmtsema/diag"
)

// Summary describes a finished function body.
type Summary struct {
	Function   string
	Statements int // statements built, including invalid ones
	Recovered  int
	Invalid    int
	Labels     int
	Errors     int
	Warnings   int
}

// LogValue implements [slog.LogValuer].
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("function", s.Function),
		slog.Int("statements", s.Statements),
		slog.Int("recovered", s.Recovered),
		slog.Int("invalid", s.Invalid),
		slog.Int("labels", s.Labels),
		slog.Int("errors", s.Errors),
		slog.Int("warnings", s.Warnings),
	)
}

// Finish completes the function body.
//
// Labels referenced by goto but never defined are reported at their first reference and
// receive an empty statement, so every goto refers to a complete label. Switch statements
// still open indicate a front end bug and are reported as internal errors.
//
// Finish is idempotent.
func (b *Builder) Finish() Summary {
	if !b.finished {
		b.finished = true
		b.finish()
	}

	return Summary{
		Function:   b.fn.Name,
		Statements: b.built,
		Recovered:  b.recovered,
		Invalid:    b.invalid,
		Labels:     b.labels.Len(),
		Errors:     b.engine.Errors(),
		Warnings:   b.engine.Count(diag.SeverityWarning),
	}
}

func (b *Builder) finish() {
	defer b.region.End()

	for _, l := range b.labels.Undefined() {
		b.engine.Report(diag.New(diag.UndeclaredLabel, l.Ident, l.Name))
		l.Stmt = &ast.NullStmt{Semi: l.Ident}
	}

	for _, sw := range b.switches.Drain() {
		diag.Internal(b.engine, sw, "switch statement never closed")
	}

	b.logger.LogAttrs(b.ctx, slog.LevelDebug, "Function body finished",
		slog.String("function", b.fn.Name),
		slog.Int("statements", b.built),
		slog.Int("errors", b.engine.Errors()))
}
