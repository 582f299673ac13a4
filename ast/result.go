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

// Outcome classifies the result of a statement construction entry point.
type Outcome uint8

//go:generate go tool stringer -type Outcome -linecomment

const (
	OK        Outcome = iota // ok
	Recovered                // recovered
	Invalid                  // invalid
)

// Result is a constructed statement together with its [Outcome].
//
// A [Recovered] result carries a usable node that was degraded after a diagnostic.
// An [Invalid] result may carry a replacement statement (typically the labeled
// sub-statement) the caller can continue with, the rejected node itself for
// diagnostics review, or nil.
type Result struct {
	Stmt    Stmt
	Outcome Outcome
}

// Ok wraps a successfully constructed statement.
func Ok(s Stmt) Result { return Result{Stmt: s, Outcome: OK} }

// Recover wraps a degraded but usable statement.
func Recover(s Stmt) Result { return Result{Stmt: s, Outcome: Recovered} }

// Fail reports an invalid construction, optionally with a replacement statement.
func Fail(replacement Stmt) Result { return Result{Stmt: replacement, Outcome: Invalid} }

// Valid reports whether the result carries a statement for the requested construct.
func (r Result) Valid() bool { return r.Outcome != Invalid }

// Or returns the carried statement, or placeholder when there is none.
func (r Result) Or(placeholder Stmt) Stmt {
	if r.Stmt == nil {
		return placeholder
	}

	return r.Stmt
}

// Join combines outcomes, keeping the worst.
func (o Outcome) Join(other Outcome) Outcome { return max(o, other) }
