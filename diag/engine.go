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

import "fillmore-labs.com/stmtsema/internal/config"

// Engine applies the language and warning policy to diagnostics and forwards the
// ones not ignored to a [Sink].
//
// An Engine is not safe for concurrent use.
type Engine struct {
	sink     Sink
	language config.BitMask[config.Language]
	warnings config.BitMask[config.Warning]
	counts   [SeverityError + 1]int
}

// NewEngine creates an [Engine] forwarding to sink.
func NewEngine(sink Sink, language config.BitMask[config.Language], warnings config.BitMask[config.Warning]) *Engine {
	if sink == nil {
		sink = Discard
	}

	return &Engine{sink: sink, language: language, warnings: warnings}
}

// Severity returns the effective severity of id under the engine policy.
func (e *Engine) Severity(id ID) Severity {
	switch id.Class() {
	case Error:
		return SeverityError

	case ClassNote:
		return SeverityNote

	case Warning:
		if g := id.Group(); g != 0 && !e.warnings.Enabled(g) {
			return Ignored
		}

		return e.warning()

	case Extension:
		switch {
		case e.language.Enabled(config.PedanticErrors):
			return SeverityError

		case e.language.Enabled(config.Pedantic):
			return e.warning()

		default:
			return Ignored
		}

	case ExtWarn:
		if e.language.Enabled(config.PedanticErrors) {
			return SeverityError
		}

		return e.warning()

	default:
		return Ignored
	}
}

func (e *Engine) warning() Severity {
	if e.language.Enabled(config.WarningsAsErrors) {
		return SeverityError
	}

	return SeverityWarning
}

// Report implements [Sink].
func (e *Engine) Report(d Diagnostic) {
	sev := e.Severity(d.ID)
	e.counts[sev]++

	if sev == Ignored {
		return
	}

	d.Severity = sev
	e.sink.Report(d)
}

// Count returns the number of reported diagnostics with the given severity.
func (e *Engine) Count(sev Severity) int {
	if int(sev) >= len(e.counts) {
		return 0
	}

	return e.counts[sev]
}

// Errors returns the number of reported errors.
func (e *Engine) Errors() int { return e.counts[SeverityError] }
