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

package sema

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/stmtsema/diag"
)

// Checker creates statement builders sharing one configuration.
// A Checker is safe for concurrent use once configured; its builders are not.
type Checker struct {
	opts *runOptions
}

// New creates a statement checker configured with opts.
func New(opts ...Option) *Checker {
	r := defaultRunOptions()
	Options(opts).apply(r)

	c := &Checker{opts: r}

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "Checker created", Options(opts).LogAttr())

	return c
}

// Function starts checking the body of fn. The returned [Builder] owns the label and switch
// state of this body and must be finished with [Builder.Finish].
func (c *Checker) Function(ctx context.Context, env Env, fn Func) *Builder {
	r := c.opts

	t := env.Target
	if t == nil {
		t = r.target
	}

	languages := r.languages()

	return &Builder{
		ctx:      ctx,
		region:   trace.StartRegion(ctx, "FunctionBody"),
		logger:   r.logger,
		engine:   diag.NewEngine(env.Sink, languages, r.warnings),
		sem:      env.Semantics,
		target:   t,
		language: languages,
		fn:       fn,
	}
}
