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

// Package ast defines the statement nodes produced by semantic analysis.
//
// # Overview
//
// Every statement kind is a distinct struct implementing the sealed [Stmt]
// interface, so consumers switch over the concrete types:
//
//	switch s := s.(type) {
//	case *ast.IfStmt:
//	    lower(s.Cond)
//	case *ast.SwitchStmt:
//	    for _, c := range s.Cases {
//	        // ...
//	    }
//	}
//
// A construction entry point returns a [Result] which pairs the (possibly degraded)
// node with an [Outcome]: [OK], [Recovered] after a diagnostic, or [Invalid].
//
// # Collaborators
//
// Expressions, types and declarations are owned by the surrounding front end.
// This package only describes the views statement analysis needs of them:
// [Expr], [Type], [Decl] and the enclosing-construct [Scope] query.
package ast
