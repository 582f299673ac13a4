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

// Package apint implements fixed-width integers of arbitrary precision with an explicit signedness.
package apint

import (
	"math/big"

	"modernc.org/mathutil"
)

// Int is an immutable integer of a given bit width and signedness.
//
// The zero value is an unsigned zero of width 0.
type Int struct {
	v      *big.Int // mathematical value, within the range of width and signedness; nil means 0
	width  uint
	signed bool
}

// New returns v wrapped to width bits, interpreted with the given signedness.
func New(v int64, width uint, signed bool) Int {
	return FromBig(big.NewInt(v), width, signed)
}

// NewUnsigned returns v wrapped to width bits, interpreted with the given signedness.
func NewUnsigned(v uint64, width uint, signed bool) Int {
	return FromBig(new(big.Int).SetUint64(v), width, signed)
}

// FromBig returns v wrapped to width bits, interpreted with the given signedness.
func FromBig(v *big.Int, width uint, signed bool) Int {
	return fromBits(pattern(v, width), width, signed)
}

// Width returns the bit width.
func (x Int) Width() uint { return x.width }

// Signed reports whether x is interpreted as a signed value.
func (x Int) Signed() bool { return x.signed }

// Big returns the mathematical value of x.
func (x Int) Big() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(x.v)
}

// IsNegative reports whether x is signed and below zero.
func (x Int) IsNegative() bool { return x.v != nil && x.v.Sign() < 0 }

// Cmp compares the mathematical values of x and y.
func (x Int) Cmp(y Int) int { return x.value().Cmp(y.value()) }

// Eq reports whether x and y have the same bit pattern in the width of x.
// Both operands must have the same width.
func (x Int) Eq(y Int) bool {
	return pattern(x.value(), x.width).Cmp(pattern(y.value(), x.width)) == 0
}

// Identical reports whether x and y agree in value, width and signedness.
func (x Int) Identical(y Int) bool {
	return x.width == y.width && x.signed == y.signed && x.Cmp(y) == 0
}

// ActiveBits returns the number of bits needed for the magnitude of x.
func (x Int) ActiveBits() int {
	v := x.value()
	if v.IsUint64() {
		return mathutil.BitLenUint64(v.Uint64())
	}

	return v.BitLen()
}

// String returns the decimal representation of x.
func (x Int) String() string { return x.value().String() }

// Extend widens x to width bits, sign- or zero-extending according to its signedness.
// The value is unchanged.
func (x Int) Extend(width uint) Int {
	if width < x.width {
		panic("apint: extension to smaller width")
	}

	return Int{v: x.v, width: width, signed: x.signed}
}

// Trunc keeps the low width bits of x, interpreted with the signedness of x.
func (x Int) Trunc(width uint) Int {
	if width > x.width {
		panic("apint: truncation to larger width")
	}

	if x.fits(width) {
		return Int{v: x.v, width: width, signed: x.signed}
	}

	return fromBits(pattern(x.value(), width), width, x.signed)
}

// WithSigned reinterprets the bits of x with the given signedness.
func (x Int) WithSigned(signed bool) Int {
	if signed == x.signed {
		return x
	}

	return fromBits(pattern(x.value(), x.width), x.width, signed)
}

// fits reports whether the value of x is representable in width bits of its signedness.
func (x Int) fits(width uint) bool {
	if x.v == nil {
		return true
	}

	if !x.signed {
		return x.ActiveBits() <= int(width)
	}

	if width == 0 {
		return x.v.Sign() == 0
	}

	if x.v.Sign() >= 0 {
		return x.ActiveBits() < int(width)
	}

	// -2^(w-1) is the smallest representable value.
	m := new(big.Int).Neg(x.v)
	m.Sub(m, big.NewInt(1))

	return m.BitLen() < int(width)
}

func (x Int) value() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}

	return x.v
}

// pattern returns the two's complement bit pattern of v in width bits, as a non-negative integer.
func pattern(v *big.Int, width uint) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), width)

	p := new(big.Int).Mod(v, mod) // Euclidean, always non-negative

	return p
}

func fromBits(p *big.Int, width uint, signed bool) Int {
	if signed && width > 0 && p.Bit(int(width-1)) == 1 {
		p = new(big.Int).Sub(p, new(big.Int).Lsh(big.NewInt(1), width))
	}

	if p.Sign() == 0 {
		p = nil
	}

	return Int{v: p, width: width, signed: signed}
}
