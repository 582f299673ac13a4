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

// Package sema builds validated statement nodes for C function bodies.
//
// # Usage
//
// A [Checker] holds the configuration and creates one [Builder] per function body:
//
//	c := sema.New(sema.WithStandard(config.C99), sema.WithPedantic(true))
//	b := c.Function(ctx, sema.Env{Sink: sink, Semantics: sem}, sema.Func{Name: "main", Result: intType})
//
//	sw := b.StartSwitch(pos, cond)
//	res := b.Case(casePos, lhs, token.NoPos, nil, colon, body)
//	// ...
//	res = b.FinishSwitch(sw, switchBody)
//
//	summary := b.Finish()
//
// Each entry point returns an [ast.Result]. Diagnostics go to the sink of the [Env], filtered
// by the language and warning policy of the checker.
//
// # Configuration
//
// Options can be set programmatically with [Option] values, from the command line with
// [Checker.RegisterFlags], from the environment with [EnvOptions], or from a configuration
// file decoded into [Settings].
package sema
