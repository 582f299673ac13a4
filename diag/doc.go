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

// Package diag defines the diagnostics reported by statement analysis.
//
// Checkers report to a [Sink]. An [Engine] decides the effective [Severity] of each
// diagnostic from its [Class], the language mode and enabled warning groups, and forwards
// the ones not ignored. [Diagnostic.Analysis] converts to the representation used by
// golang.org/x/tools/go/analysis drivers.
package diag
