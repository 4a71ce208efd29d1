// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounded

import "math"

// Width is the number of bits in an Int.
const Width = 32

const signBit = 1 << (Width - 1)

// Limits of the signed reading of an Int.
const (
	MaxInt32 = math.MaxInt32
	MinInt32 = math.MinInt32
)

// An Int is a 32-bit two's-complement signed integer. The zero value is 0.
//
// Internal representation: bits holds the raw pattern. It is read as an
// unsigned magnitude when the sign bit is clear and as -(^bits+1) when it is
// set.
type Int struct {
	bits uint32
}

// FromBits returns the Int with the raw bit pattern bits.
func FromBits(bits uint32) Int {
	return Int{bits: bits}
}

// FromInt32 returns the Int whose signed value is v.
func FromInt32(v int32) Int {
	return Int{bits: uint32(v)}
}

// Bits returns the raw bit pattern of x.
func (x Int) Bits() uint32 {
	return x.bits
}

// Int32 returns the signed value of x.
func (x Int) Int32() int32 {
	return int32(x.bits)
}

// IsNeg reports whether the sign bit of x is set.
func (x Int) IsNeg() bool {
	return x.bits&signBit != 0
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Int) Sign() int {
	switch {
	case x.bits == 0:
		return 0
	case x.IsNeg():
		return -1
	}
	return 1
}

// Cmp compares the signed values of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	a, b := x.Int32(), y.Int32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// magnitude returns the unsigned magnitude of x and whether x is negative.
// The magnitude of the most negative value is 1<<31.
func (x Int) magnitude() (m uint32, neg bool) {
	if x.IsNeg() {
		return ^x.bits + 1, true
	}
	return x.bits, false
}

// ErrDivisionByZero is the panic value of Quo and QuoSigned when the divisor
// is zero.
var ErrDivisionByZero = DivisionByZeroError{}

// A DivisionByZeroError is raised by a division whose divisor is zero.
// It implements the error interface.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string {
	return "bounded: integer division by zero"
}
