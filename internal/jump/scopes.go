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

// Package jump validates break, continue and loop headers against the enclosing constructs.
package jump

import "fillmore-labs.com/stmtsema/ast"

// Scopes maintains the current break and continue targets representing nested
// loops and switches of one function body.
type Scopes struct {
	last            ast.ConstructID
	currentBreak    ast.ConstructID
	currentContinue ast.ConstructID
}

// Saved are the targets to restore when leaving a construct.
type Saved struct {
	breakTarget, continueTarget ast.ConstructID
}

var _ ast.Scope = (*Scopes)(nil)

// EnterLoop makes a new loop the target of break and continue, returning the old targets.
func (s *Scopes) EnterLoop() (old Saved) {
	id := s.newID()
	old = Saved{breakTarget: s.currentBreak, continueTarget: s.currentContinue}
	s.currentBreak, s.currentContinue = id, id

	return old
}

// EnterSwitch makes a new switch the target of break, returning the old targets.
func (s *Scopes) EnterSwitch() (old Saved) {
	old = Saved{breakTarget: s.currentBreak, continueTarget: s.currentContinue}
	s.currentBreak = s.newID()

	return old
}

// Leave restores the targets saved on entering a construct.
func (s *Scopes) Leave(old Saved) {
	s.currentBreak, s.currentContinue = old.breakTarget, old.continueTarget
}

// Breakable implements [ast.Scope].
func (s *Scopes) Breakable() (ast.ConstructID, bool) {
	return s.currentBreak, s.currentBreak != ast.NoConstruct
}

// Continuable implements [ast.Scope].
func (s *Scopes) Continuable() (ast.ConstructID, bool) {
	return s.currentContinue, s.currentContinue != ast.NoConstruct
}

func (s *Scopes) newID() ast.ConstructID {
	s.last++

	return s.last
}
