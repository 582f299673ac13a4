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

import "iter"

// Children yields the direct sub-statements of s in source order.
//
// A goto does not yield its target label.
func Children(s Stmt) iter.Seq[Stmt] {
	return func(yield func(Stmt) bool) {
		for _, c := range children(s) {
			if c != nil && !yield(c) {
				return
			}
		}
	}
}

// Preorder yields s and all statements nested in it, depth-first.
func Preorder(s Stmt) iter.Seq[Stmt] {
	return func(yield func(Stmt) bool) {
		preorder(s, yield)
	}
}

func preorder(s Stmt, yield func(Stmt) bool) bool {
	if !yield(s) {
		return false
	}

	for c := range Children(s) {
		if !preorder(c, yield) {
			return false
		}
	}

	return true
}

func children(s Stmt) []Stmt {
	switch s := s.(type) {
	case *CompoundStmt:
		return s.List

	case *IfStmt:
		return []Stmt{s.Then, s.Else}

	case *SwitchStmt:
		return []Stmt{s.Body}

	case *CaseStmt:
		return []Stmt{s.Body}

	case *DefaultStmt:
		return []Stmt{s.Body}

	case *WhileStmt:
		return []Stmt{s.Body}

	case *DoStmt:
		return []Stmt{s.Body}

	case *ForStmt:
		return []Stmt{s.Init, s.Body}

	case *ForEachStmt:
		return []Stmt{s.Element, s.Body}

	case *LabelStmt:
		return []Stmt{s.Stmt}

	case *TryStmt:
		var l []Stmt
		l = append(l, s.Body)
		if s.Catch != nil {
			l = append(l, s.Catch)
		}
		if s.Finally != nil {
			l = append(l, s.Finally)
		}

		return l

	case *CatchStmt:
		l := []Stmt{s.Param, s.Body}
		if s.Next != nil {
			l = append(l, s.Next)
		}

		return l

	case *FinallyStmt:
		return []Stmt{s.Body}

	default:
		return nil
	}
}
