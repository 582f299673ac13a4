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

import "fillmore-labs.com/stmtsema/internal/config"

// Settings represents the configuration file form of the checker options.
type Settings struct {
	// Std selects the language standard.
	Std *config.Standard `json:"std,omitzero"`
	// GNU accepts GNU extensions.
	GNU *bool `json:"gnu,omitzero"`
	// Pedantic reports uses of language extensions.
	Pedantic *bool `json:"pedantic,omitzero"`
	// PedanticErrors reports uses of language extensions as errors.
	PedanticErrors *bool `json:"pedantic-errors,omitzero"`
	// WarningsAsErrors reports warnings as errors.
	WarningsAsErrors *bool `json:"warnings-as-errors,omitzero"`
	// Warnings enables or disables warning groups by name.
	Warnings map[string]bool `json:"warnings,omitzero"`
}

// Options converts [Settings] into a list of [Option].
// It applies settings only when explicitly set (non-nil); unknown warning names are skipped.
func (s Settings) Options() []Option {
	var opts []Option

	opts = appendOption(opts, s.Std, WithStandard)
	opts = appendOption(opts, s.GNU, WithGNU)
	opts = appendOption(opts, s.Pedantic, WithPedantic)
	opts = appendOption(opts, s.PedanticErrors, WithPedanticErrors)
	opts = appendOption(opts, s.WarningsAsErrors, WithWarningsAsErrors)

	for _, w := range warningNames {
		if enabled, ok := s.Warnings[w.name]; ok {
			opts = append(opts, WithWarning(w.warning, enabled))
		}
	}

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts []Option, value *T, constructor func(T) Option) []Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
