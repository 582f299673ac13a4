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
	"flag"

	"fillmore-labs.com/stmtsema/internal/config"
)

// RegisterFlags binds the checker configuration to command line flags.
// A nil flag set defaults to the program's command line.
func (c *Checker) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	r := c.opts

	flags.TextVar(&r.std, "std", r.std, "language standard (c89, c99, c11, c++)")

	language := func(name string, value config.Language, usage string) {
		flags.Var(maskBit[config.Language]{mask: &r.language, bit: value}, name, usage)
	}

	language("gnu", config.GNU, "accept GNU extensions")
	language("pedantic", config.Pedantic, "report uses of language extensions")
	language("pedantic-errors", config.PedanticErrors, "report uses of language extensions as errors")
	language("Werror", config.WarningsAsErrors, "report warnings as errors")

	for _, w := range warningNames {
		flags.Var(maskBit[config.Warning]{mask: &r.warnings, bit: w.warning}, "W"+w.name, "enable "+w.name+" warnings")
	}
}
