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

package diag

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Diagnostic is a single report about a statement.
type Diagnostic struct {
	ID       ID
	Pos      token.Pos
	Ranges   []analysis.Range // highlighted source ranges, may be empty
	Args     []any            // message arguments
	Notes    []Note           // related locations
	Severity Severity         // set by policy, zero before
}

// Note is a secondary location attached to a [Diagnostic].
type Note struct {
	ID   ID
	Pos  token.Pos
	Args []any
}

// New returns a diagnostic with the given arguments.
func New(id ID, pos token.Pos, args ...any) Diagnostic {
	return Diagnostic{ID: id, Pos: pos, Args: args}
}

// WithRange returns d highlighting rng.
func (d Diagnostic) WithRange(rng analysis.Range) Diagnostic {
	d.Ranges = append(d.Ranges[:len(d.Ranges):len(d.Ranges)], rng)

	return d
}

// WithNote returns d with an additional note.
func (d Diagnostic) WithNote(id ID, pos token.Pos, args ...any) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{ID: id, Pos: pos, Args: args})

	return d
}

// Message returns the formatted message text.
func (d Diagnostic) Message() string { return format(d.ID, d.Args) }

// Message returns the formatted message text.
func (n Note) Message() string { return format(n.ID, n.Args) }

// End returns the end of the first highlighted range, or the diagnostic position.
func (d Diagnostic) End() token.Pos {
	for _, r := range d.Ranges {
		if r.End().IsValid() {
			return r.End()
		}
	}

	return d.Pos
}

// Analysis converts d to an [analysis.Diagnostic], with notes as related information.
func (d Diagnostic) Analysis() analysis.Diagnostic {
	a := analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End(),
		Category: d.ID.String(),
		Message:  d.Message(),
	}

	for _, n := range d.Notes {
		a.Related = append(a.Related, analysis.RelatedInformation{Pos: n.Pos, Message: n.Message()})
	}

	return a
}

func format(id ID, args []any) string {
	if int(id) >= len(infos) {
		return id.String()
	}

	return fmt.Sprintf(infos[id].format, args...)
}
