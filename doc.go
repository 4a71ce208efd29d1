// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bounded implements a fixed-width 32-bit signed integer with wrapping
two's-complement arithmetic.

An Int holds a single 32-bit cell. Every bit pattern is a valid value; the
pattern is read as a two's-complement signed integer when it is rendered or
when its sign matters. The zero value for an Int corresponds to 0, so new
values can be declared in the usual ways and denote 0 without further
initialization:

    var x bounded.Int // x == 0

Values are created by parsing a decimal string or from a raw bit pattern:

    x, err := bounded.Parse("-5")        // bits 0xfffffffb
    y := bounded.FromBits(0xffffffff)    // -1

The decimal syntax is deliberately small:

    number   = [ sign ] [ digits [ "." { digit } ] ] .
    sign     = "+" | "-" .
    digits   = digit { digit } .
    digit    = "0" ... "9" .

Fractional digits are accepted and discarded: "5.999" parses to 5. The
magnitude is accumulated as an unsigned 32-bit value, so any magnitude up to
4294967295 is accepted and then given its signed reading by the sign step; for
instance "3000000000" parses to the pattern 0xb2d05e00, which is -1294967296.
Parse failures are reported as a ParseError: InvalidDigit for input outside the
grammar and Overflow when the magnitude does not fit in 32 bits.

Arithmetic methods have the form

    func (x Int) Binary(y Int) Int // result = x binary y

Operands are passed and returned by value; no operation ever modifies its
operands. Add, Sub and Mul wrap modulo 2**32 and never fail. Quo divides the
stored bit patterns as unsigned integers: a negative dividend is divided as
its large unsigned magnitude. QuoSigned divides the signed readings instead.
Both panic with ErrDivisionByZero when y is zero, the same way the built-in
integer division does.

Callers that want overflow reported rather than wrapped should use the
context in package bounded/checked.

Int implements fmt.Stringer, fmt.Formatter and fmt.Scanner, as well as the
encoding.TextMarshaler, encoding.BinaryMarshaler and gob encoder interfaces
and their decoding counterparts.
*/
package bounded
