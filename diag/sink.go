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
	"slices"
	"sync"

	"golang.org/x/tools/go/analysis"
)

// Sink accepts reported diagnostics. Reporting never fails.
type Sink interface {
	Report(d Diagnostic)
}

// ReportFunc adapts an [analysis.Pass] style report function to a [Sink].
type ReportFunc func(analysis.Diagnostic)

// Report implements [Sink].
func (f ReportFunc) Report(d Diagnostic) { f(d.Analysis()) }

// Discard drops all diagnostics.
var Discard Sink = discard{}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Collector records diagnostics in report order. It is safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Report implements [Sink].
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = append(c.diagnostics, d)
}

// All returns a copy of the recorded diagnostics.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.diagnostics)
}

// IDs returns the identifiers of the recorded diagnostics in report order.
func (c *Collector) IDs() []ID {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]ID, 0, len(c.diagnostics))
	for _, d := range c.diagnostics {
		ids = append(ids, d.ID)
	}

	return ids
}

// Reset drops all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = nil
}

// Internal reports an internal error diagnostic.
// These indicate bugs in the checker rather than issues in the checked code.
func Internal(s Sink, rng analysis.Range, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	s.Report(Diagnostic{ID: InternalError, Pos: rng.Pos(), Ranges: []analysis.Range{rng}, Args: []any{msg}})
}
