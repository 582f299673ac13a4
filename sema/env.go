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

package sema

import (
	"github.com/xyproto/env/v2"

	"fillmore-labs.com/stmtsema/internal/config"
)

// Environment variables read by [EnvOptions].
const (
	EnvStandard       = "STMTSEMA_STD"
	EnvGNU            = "STMTSEMA_GNU"
	EnvPedantic       = "STMTSEMA_PEDANTIC"
	EnvPedanticErrors = "STMTSEMA_PEDANTIC_ERRORS"
	EnvWerror         = "STMTSEMA_WERROR"
)

// EnvOptions returns the options set through environment variables.
// Unset variables contribute no option; an unknown standard is ignored.
func EnvOptions() Options {
	var opts Options

	if env.Has(EnvStandard) {
		if std, ok := config.ParseStandard(env.Str(EnvStandard)); ok {
			opts = append(opts, WithStandard(std))
		}
	}

	for _, b := range [...]struct {
		name   string
		option func(bool) Option
	}{
		{EnvGNU, WithGNU},
		{EnvPedantic, WithPedantic},
		{EnvPedanticErrors, WithPedanticErrors},
		{EnvWerror, WithWarningsAsErrors},
	} {
		if env.Has(b.name) {
			opts = append(opts, b.option(env.Bool(b.name)))
		}
	}

	return opts
}
