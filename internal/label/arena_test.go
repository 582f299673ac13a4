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

package label_test

import (
	"go/token"
	"strconv"
	"testing"

	. "fillmore-labs.com/stmtsema/internal/label"
)

func TestArena(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		count int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"ChunkSize", ChunkSize},
		{"ChunkSizePlusOne", ChunkSize + 1},
		{"MultipleChunks", 2*ChunkSize + 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a Arena

			for i := range tt.count {
				l := a.New("L"+strconv.Itoa(i), token.Pos(i+1))
				if l.Defined() {
					t.Fatalf("Got defined record %q on allocation", l.Name)
				}
			}

			labels := a.All()
			if got, want := len(labels), tt.count; got != want || a.Len() != want {
				t.Errorf("Got %d (%d) labels, expected %d", got, a.Len(), want)
			}

			for i, l := range labels {
				if got, want := l.Ident, token.Pos(i+1); got != want {
					t.Errorf("Got position %d for label %d, expected %d", got, i, want)
				}
			}
		})
	}
}
