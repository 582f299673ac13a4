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

package sema

import (
	"log/slog"

	"fillmore-labs.com/stmtsema/internal/config"
	"fillmore-labs.com/stmtsema/target"
)

// runOptions represent the configuration of a [Checker].
type runOptions struct {
	// std is the language standard.
	std config.Standard

	// language holds mode switches beyond those implied by std.
	language config.BitMask[config.Language]

	// warnings holds the enabled warning groups.
	warnings config.BitMask[config.Warning]

	// target validates inline assembly.
	target target.Info

	logger *slog.Logger
}

// defaultRunOptions returns the defaults: C99 with GNU extensions, every warning enabled, x86-64.
func defaultRunOptions() *runOptions {
	return &runOptions{
		std:      config.C99,
		language: config.NewBitMask(config.GNU),
		warnings: config.NewBitMask(config.AllWarnings),
		target:   target.X86_64(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// languages returns the effective language flags.
func (r *runOptions) languages() config.BitMask[config.Language] {
	return r.std.Languages().Union(r.language)
}

var warningNames = [...]struct {
	warning config.Warning
	name    string
}{
	{config.UnusedValue, "unused-value"},
	{config.EmptyBody, "empty-body"},
	{config.CaseOverflow, "case-overflow"},
	{config.EmptyRange, "empty-range"},
	{config.ReturnStackAddress, "return-stack-address"},
	{config.MissingReturnValue, "return-type"},
}

func warningName(w config.Warning) string {
	for _, n := range warningNames {
		if n.warning == w {
			return n.name
		}
	}

	return "unknown"
}
