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

// Class is the default category of a diagnostic, before policy is applied.
type Class uint8

//go:generate go tool stringer -type Class -linecomment

const (
	Error     Class = iota // error
	Warning                // warning
	Extension              // extension
	ExtWarn                // extension-warning
	ClassNote              // note
)

// Severity is the effective level of a reported diagnostic.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment

const (
	Ignored         Severity = iota // ignored
	SeverityNote                    // note
	SeverityWarning                 // warning
	SeverityError                   // error
)

// Default returns the severity of c without any policy applied.
func (c Class) Default() Severity {
	switch c {
	case Error:
		return SeverityError

	case Warning, ExtWarn:
		return SeverityWarning

	case ClassNote:
		return SeverityNote

	default:
		return Ignored
	}
}
