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

// ConstructID identifies an enclosing loop or switch within a function body.
type ConstructID int32

// NoConstruct is the zero ConstructID, never assigned to a construct.
const NoConstruct ConstructID = 0

// Scope answers which construct a break or continue at the current point would target.
type Scope interface {
	Breakable() (ConstructID, bool)   // innermost loop or switch
	Continuable() (ConstructID, bool) // innermost loop
}
