// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements wrapping arithmetic on Ints. Results are taken modulo
// 2**32; since two's-complement addition, subtraction and multiplication are
// the same bit operations for signed and unsigned operands, none of them needs
// to look at the sign.

package bounded

// Add returns the wrapped sum x+y.
func (x Int) Add(y Int) Int {
	return Int{bits: x.bits + y.bits}
}

// Sub returns the wrapped difference x-y.
func (x Int) Sub(y Int) Int {
	return Int{bits: x.bits - y.bits}
}

// Mul returns the wrapped product x*y.
func (x Int) Mul(y Int) Int {
	return Int{bits: x.bits * y.bits}
}

// Quo returns the quotient of the bit patterns of x and y, both read as
// unsigned integers. A negative x is therefore divided as its unsigned
// magnitude 2**32+x:
//
//	FromInt32(-8).Quo(FromInt32(2)) // 0x7ffffffc, not -4
//
// Use QuoSigned to divide the signed values.
//
// Quo panics with ErrDivisionByZero if y is zero.
func (x Int) Quo(y Int) Int {
	if y.bits == 0 {
		panic(ErrDivisionByZero)
	}
	return Int{bits: x.bits / y.bits}
}

// QuoSigned returns the signed quotient x/y, truncated toward zero. The one
// overflowing case, MinInt32 / -1, wraps to MinInt32.
//
// QuoSigned panics with ErrDivisionByZero if y is zero.
func (x Int) QuoSigned(y Int) Int {
	if y.bits == 0 {
		panic(ErrDivisionByZero)
	}
	// Go defines MinInt32 / -1 == MinInt32 for int32 operands.
	return Int{bits: uint32(x.Int32() / y.Int32())}
}

// Neg returns the wrapped negation -x. Neg of the most negative value is
// itself.
func (x Int) Neg() Int {
	return Int{bits: ^x.bits + 1}
}
