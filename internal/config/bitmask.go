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

package config

// Flags is the set of integer kinds usable as flag bits.
type Flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask is a set of single-bit flags of type T.
type BitMask[T Flags] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given flags set.
func NewBitMask[T Flags](flags ...T) BitMask[T] {
	var b BitMask[T]
	for _, flag := range flags {
		b.Enable(flag)
	}

	return b
}

// Set enables or disables flag.
func (b *BitMask[T]) Set(flag T, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable sets flag.
func (b *BitMask[T]) Enable(flag T) { b.value |= flag }

// Disable clears flag.
func (b *BitMask[T]) Disable(flag T) { b.value &^= flag }

// Enabled reports whether any bit of flag is set.
func (b BitMask[T]) Enabled(flag T) bool { return b.value&flag != 0 }

// With returns a copy of b with flag set to value.
func (b BitMask[T]) With(flag T, value bool) BitMask[T] {
	b.Set(flag, value)

	return b
}

// Union returns the flags set in b or o.
func (b BitMask[T]) Union(o BitMask[T]) BitMask[T] { return BitMask[T]{value: b.value | o.value} }

// Bits returns the raw flag bits.
func (b BitMask[T]) Bits() T { return b.value }
