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

package apint_test

import (
	"math"
	"testing"

	. "fillmore-labs.com/stmtsema/apint"
)

func TestRenormalize(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name         string
		value        Int
		width        uint
		signed       bool
		want         string
		overflow     bool
		from, overTo string
	}{
		{"widen_negative_to_unsigned", New(-1, 32, true), 64, false, "18446744073709551615", true, "-1", "18446744073709551615"},
		{"widen_negative_to_signed", New(-1, 32, true), 64, true, "-1", false, "", ""},
		{"widen_unsigned_to_signed", New(5, 32, false), 64, true, "5", false, "", ""},
		{"narrow_lossy", New(300, 32, true), 8, false, "44", true, "300", "44"},
		{"narrow_negative_signed", New(-1, 32, true), 8, true, "-1", false, "", ""},
		{"narrow_negative_to_unsigned", New(-1, 32, true), 8, false, "255", true, "-1", "255"},
		{"narrow_all_ones", NewUnsigned(math.MaxUint64, 64, false), 32, true, "-1", false, "", ""},
		{"narrow_fits", New(127, 64, true), 8, true, "127", false, "", ""},
		{"narrow_signed_boundary", New(128, 64, true), 8, true, "-128", true, "128", "-128"},
		{"sign_change_to_negative", NewUnsigned(0x8000_0000, 32, false), 32, true, "-2147483648", true, "2147483648", "-2147483648"},
		{"sign_change_to_unsigned", New(-5, 32, true), 32, false, "4294967291", false, "", ""},
		{"identity", New(-7, 16, true), 16, true, "-7", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, over, ok := Renormalize(tt.value, tt.width, tt.signed)

			if got.String() != tt.want {
				t.Errorf("Got value %s, expected %s", got, tt.want)
			}

			if got.Width() != tt.width || got.Signed() != tt.signed {
				t.Errorf("Got width %d signed %t, expected %d %t", got.Width(), got.Signed(), tt.width, tt.signed)
			}

			if ok != tt.overflow {
				t.Fatalf("Got overflow %t, expected %t", ok, tt.overflow)
			}

			if !ok {
				return
			}

			if over.From.String() != tt.from || over.To.String() != tt.overTo {
				t.Errorf("Got overflow %s -> %s, expected %s -> %s", over.From, over.To, tt.from, tt.overTo)
			}
		})
	}
}

func TestRenormalizeLaws(t *testing.T) {
	t.Parallel()

	values := [...]int64{0, 1, -1, 5, 127, 128, -128, -129, 255, 256, 32767, -32768, 65535, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	widths := [...]uint{8, 16, 32, 64}

	for _, v := range values {
		for _, fromWidth := range widths {
			for _, fromSigned := range [...]bool{false, true} {
				l := New(v, fromWidth, fromSigned)

				for _, width := range widths {
					for _, signed := range [...]bool{false, true} {
						once, _, overflow := Renormalize(l, width, signed)

						twice, _, again := Renormalize(once, width, signed)
						if again || !twice.Identical(once) {
							t.Errorf("Renormalize(%s/%d/%t) to %d/%t not idempotent: %s, then %s", l, fromWidth, fromSigned, width, signed, once, twice)
						}

						if overflow {
							continue
						}

						back, _, _ := Renormalize(once, fromWidth, fromSigned)
						if !back.Identical(l) {
							t.Errorf("Renormalize(%s/%d/%t) to %d/%t and back: got %s, expected %s", l, fromWidth, fromSigned, width, signed, back, l)
						}
					}
				}
			}
		}
	}
}
