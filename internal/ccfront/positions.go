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

package ccfront

import (
	"go/token"

	cctoken "modernc.org/token"
)

// positions maps cc source positions of one file into a [token.FileSet].
type positions struct {
	name string
	file *token.File
}

func newPositions(fset *token.FileSet, name string, content []byte) positions {
	f := fset.AddFile(name, -1, len(content))
	f.SetLinesForContent(content)

	return positions{name: name, file: f}
}

// of returns the position of p, or [token.NoPos] when p lies outside the file.
func (p positions) of(pos cctoken.Position) token.Pos {
	if p.file == nil || pos.Filename != p.name || pos.Line < 1 || pos.Line > p.file.LineCount() {
		return token.NoPos
	}

	offset := p.file.Offset(p.file.LineStart(pos.Line)) + max(pos.Column, 1) - 1
	if offset > p.file.Size() {
		return token.NoPos
	}

	return p.file.Pos(offset)
}
