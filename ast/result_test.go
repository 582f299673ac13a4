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

package ast_test

import (
	"testing"

	. "fillmore-labs.com/stmtsema/ast"
)

func TestResult(t *testing.T) {
	t.Parallel()

	null := &NullStmt{Semi: 1}
	placeholder := &NullStmt{Semi: 2}

	tests := [...]struct {
		name    string
		result  Result
		valid   bool
		or      Stmt
		outcome Outcome
	}{
		{"ok", Ok(null), true, null, OK},
		{"recovered", Recover(null), true, null, Recovered},
		{"replacement", Fail(null), false, null, Invalid},
		{"dropped", Fail(nil), false, placeholder, Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.Valid(); got != tt.valid {
				t.Errorf("Got valid %t, expected %t", got, tt.valid)
			}

			if got := tt.result.Or(placeholder); got != tt.or {
				t.Errorf("Got %v, expected %v", got, tt.or)
			}

			if got := tt.result.Outcome; got != tt.outcome {
				t.Errorf("Got %v, expected %v", got, tt.outcome)
			}
		})
	}
}

func TestOutcomeJoin(t *testing.T) {
	t.Parallel()

	if got := OK.Join(Recovered).Join(OK); got != Recovered {
		t.Errorf("Got %v, expected %v", got, Recovered)
	}

	if got := Invalid.Join(Recovered); got != Invalid {
		t.Errorf("Got %v, expected %v", got, Invalid)
	}
}
