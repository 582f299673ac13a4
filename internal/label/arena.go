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

package label

import (
	"go/token"

	"fillmore-labs.com/stmtsema/ast"
)

// Arena allocates label records of one function body in a [slab list].
// Records never move, so handed out pointers stay valid until the arena is dropped.
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Arena struct {
	start, current *chunk
	count, total   int
}

// chunk is a linked list of fixed-size arrays of label records.
type chunk struct {
	labels [ChunkSize]ast.LabelStmt
	next   *chunk
}

// ChunkSize is the number of records stored in a single chunk.
const ChunkSize = 63

// New allocates a record for label name, identified at pos.
func (a *Arena) New(name string, pos token.Pos) *ast.LabelStmt {
	if a.count == ChunkSize {
		a.current.next = new(chunk)
		a.current = a.current.next
		a.count = 0
		a.total += ChunkSize
	} else if a.current == nil {
		a.current = new(chunk)
		a.start = a.current
	}

	a.count++

	l := &a.current.labels[a.count-1]
	l.Name, l.Ident = name, pos

	return l
}

// Len returns the number of allocated records.
func (a *Arena) Len() int { return a.total + a.count }

// All returns all records in allocation order.
func (a *Arena) All() []*ast.LabelStmt {
	if a.current == nil {
		return nil
	}

	labels := make([]*ast.LabelStmt, 0, a.Len())
	for c := a.start; c != nil; c = c.next {
		n := ChunkSize
		if c == a.current {
			n = a.count
		}

		for i := range n {
			labels = append(labels, &c.labels[i])
		}
	}

	return labels
}
