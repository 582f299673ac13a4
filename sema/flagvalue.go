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
	"strconv"

	"fillmore-labs.com/stmtsema/internal/config"
)

// maskBit binds one bit of a [config.BitMask] to a boolean command line flag.
type maskBit[T config.Flags] struct {
	mask *config.BitMask[T]
	bit  T
}

// Set implements [flag.Value].
func (m maskBit[_]) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	m.mask.Set(m.bit, on)

	return nil
}

// String implements [flag.Value]. The zero value, used by [flag.PrintDefaults], is false.
func (m maskBit[_]) String() string { return strconv.FormatBool(m.enabled()) }

// Get implements [flag.Getter].
func (m maskBit[_]) Get() any { return m.enabled() }

// IsBoolFlag lets the flag be given without a value.
func (m maskBit[_]) IsBoolFlag() bool { return true }

func (m maskBit[_]) enabled() bool { return m.mask != nil && m.mask.Enabled(m.bit) }
