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

package main

import (
	"fmt"
	"go/token"
	"io"

	"fillmore-labs.com/stmtsema/diag"
)

type printer struct {
	w     io.Writer
	fset  *token.FileSet
	color bool
}

var severityColors = [...]string{
	diag.SeverityNote:    "\x1b[1;36m",
	diag.SeverityWarning: "\x1b[1;35m",
	diag.SeverityError:   "\x1b[1;31m",
}

const colorReset = "\x1b[0m"

// print writes d in the conventional compiler format, followed by its notes.
func (p printer) print(d diag.Diagnostic) {
	a := d.Analysis()

	p.line(a.Pos, d.Severity, fmt.Sprintf("%s [%s]", a.Message, a.Category))

	for _, r := range a.Related {
		p.line(r.Pos, diag.SeverityNote, r.Message)
	}
}

func (p printer) line(pos token.Pos, sev diag.Severity, msg string) {
	label := sev.String()
	if p.color && int(sev) < len(severityColors) && severityColors[sev] != "" {
		label = severityColors[sev] + label + colorReset
	}

	fmt.Fprintf(p.w, "%s: %s: %s\n", p.fset.Position(pos), label, msg)
}
