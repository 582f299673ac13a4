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

// Package config holds language-mode and warning flag sets shared by the checker and its options.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownStandard is returned when parsing an unsupported language standard name.
var ErrUnknownStandard = errors.New("unknown language standard")

// Standard is the language standard statements are checked against.
type Standard uint8

//go:generate go tool stringer -type Standard -linecomment

const (
	C89 Standard = iota // c89
	C99                 // c99
	C11                 // c11
	CXX                 // c++
)

// Language represents language-mode switches.
type Language uint8

const (
	// C99Features is set for C99 and later, and for C++.
	C99Features Language = 1 << iota

	// CPlusPlus selects C++ rules.
	CPlusPlus

	// GNU enables GNU extensions without diagnostics.
	GNU

	// Pedantic reports uses of extensions.
	Pedantic

	// PedanticErrors turns extension diagnostics into errors.
	PedanticErrors

	// WarningsAsErrors turns warnings into errors.
	WarningsAsErrors
)

// Warning represents a group of warnings that can be disabled.
type Warning uint8

const (
	// UnusedValue reports expression results that are computed but never used.
	UnusedValue Warning = 1 << iota

	// EmptyBody reports if statements with an empty body.
	EmptyBody

	// CaseOverflow reports case values that change when converted to the switch type.
	CaseOverflow

	// EmptyRange reports case ranges whose low value exceeds the high value.
	EmptyRange

	// ReturnStackAddress reports returning the address of a local variable.
	ReturnStackAddress

	// MissingReturnValue reports return statements without value in non-void functions for C89.
	MissingReturnValue
)

// AllWarnings has every warning group enabled.
const AllWarnings = UnusedValue | EmptyBody | CaseOverflow | EmptyRange | ReturnStackAddress | MissingReturnValue

// Languages returns the language flags implied by std.
func (std Standard) Languages() BitMask[Language] {
	switch std {
	case C99, C11:
		return NewBitMask(C99Features)

	case CXX:
		return NewBitMask(C99Features, CPlusPlus)

	default:
		return BitMask[Language]{}
	}
}

// ParseStandard returns the Standard named s.
func ParseStandard(s string) (Standard, bool) {
	for std := range CXX + 1 {
		if std.String() == s {
			return std, true
		}
	}

	switch s {
	case "c90", "ansi":
		return C89, true

	case "c17", "c18":
		return C11, true

	default:
		return 0, false
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (std Standard) MarshalText() ([]byte, error) {
	if std > CXX {
		return nil, fmt.Errorf("invalid language standard %d", std)
	}

	return []byte(std.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (std *Standard) UnmarshalText(text []byte) error {
	s, ok := ParseStandard(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStandard, text)
	}

	*std = s

	return nil
}
