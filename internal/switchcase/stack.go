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

// Package switchcase tracks open switch statements and checks their case labels for
// duplicate values and overlapping ranges.
package switchcase

import "fillmore-labs.com/stmtsema/ast"

// Stack holds the switch statements currently open in a function body.
// Case and default labels attach to the innermost one.
type Stack struct {
	open []*ast.SwitchStmt
}

// Push opens sw.
func (s *Stack) Push(sw *ast.SwitchStmt) {
	s.open = append(s.open, sw)
}

// Top returns the innermost open switch.
func (s *Stack) Top() (*ast.SwitchStmt, bool) {
	if len(s.open) == 0 {
		return nil, false
	}

	return s.open[len(s.open)-1], true
}

// Attach appends c to the case list of the innermost open switch.
func (s *Stack) Attach(c ast.SwitchCase) bool {
	sw, ok := s.Top()
	if !ok {
		return false
	}

	sw.Cases = append(sw.Cases, c)

	return true
}

// Pop closes sw, which must be the innermost open switch.
//
// When sw is open but not innermost, the switches opened after it are closed as well.
// The result reports whether the stack was balanced.
func (s *Stack) Pop(sw *ast.SwitchStmt) bool {
	for i := len(s.open) - 1; i >= 0; i-- {
		if s.open[i] != sw {
			continue
		}

		balanced := i == len(s.open)-1
		clear(s.open[i:])
		s.open = s.open[:i]

		return balanced
	}

	return false
}

// Depth returns the number of open switches.
func (s *Stack) Depth() int { return len(s.open) }

// Drain closes all open switches, returning them innermost first.
func (s *Stack) Drain() []*ast.SwitchStmt {
	n := len(s.open)
	drained := make([]*ast.SwitchStmt, 0, n)
	for i := n - 1; i >= 0; i-- {
		drained = append(drained, s.open[i])
	}

	clear(s.open)
	s.open = s.open[:0]

	return drained
}
