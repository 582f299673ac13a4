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

package apint

// Overflow describes a value changed by [Renormalize].
type Overflow struct {
	From, To Int
}

// Renormalize converts v to width bits with the given signedness.
//
// The conversion always produces a value. When information is lost the second result
// describes the change and ok is true:
//   - Widening a negative signed value to an unsigned type.
//   - Narrowing when truncating and re-extending does not reproduce v. The reported
//     value is the re-extended one, the returned value is truncated regardless.
//   - Changing only the signedness when the result is negative.
func Renormalize(v Int, width uint, signed bool) (Int, Overflow, bool) {
	switch {
	case width > v.width:
		r := v.Extend(width)
		overflow := v.IsNegative() && !signed
		r = r.WithSigned(signed)

		if overflow {
			return r, Overflow{From: v, To: r}, true
		}

		return r, Overflow{}, false

	case width < v.width:
		conv := v.Trunc(width).WithSigned(signed).Extend(v.width).WithSigned(v.signed)
		r := v.Trunc(width).WithSigned(signed)

		if !conv.Eq(v) {
			return r, Overflow{From: v, To: conv}, true
		}

		return r, Overflow{}, false

	case signed != v.signed:
		r := v.WithSigned(signed)
		if r.IsNegative() {
			return r, Overflow{From: v, To: r}, true
		}

		return r, Overflow{}, false

	default:
		return v, Overflow{}, false
	}
}
