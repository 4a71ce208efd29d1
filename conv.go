// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the low-level conversions between Ints and their
// textual representation.

package bounded

import (
	"io"
	"math/bits"
)

// scanState is the position of the scanner within a number.
type scanState byte

const (
	stateStart    scanState = iota // nothing read yet, sign allowed
	stateInteger                   // after a sign or an integer digit
	stateFraction                  // after the decimal point
)

// scan reads r up to io.EOF and returns the two's-complement bit pattern of the
// number it contains. See the package documentation for the grammar.
//
// The magnitude is collected in unsigned 32-bit space; the sign is applied
// last, so the accepted magnitudes are 0 through 1<<32 - 1 whatever the sign.
func scan(r io.ByteReader) (z uint32, err error) {
	state := stateStart
	neg := false

	for {
		ch, rerr := r.ReadByte()
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return 0, rerr
		}

		switch {
		case state == stateStart && (ch == '+' || ch == '-'):
			neg = ch == '-'
			state = stateInteger

		case state != stateFraction && isDigit(ch):
			state = stateInteger
			// z = z*10 + d
			hi, lo := bits.Mul32(z, 10)
			if hi != 0 {
				return 0, Overflow
			}
			var c uint32
			z, c = bits.Add32(lo, uint32(ch-'0'), 0)
			if c != 0 {
				return 0, Overflow
			}

		case state == stateInteger && ch == '.':
			state = stateFraction

		case state == stateFraction && isDigit(ch):
			// truncated

		default:
			return 0, InvalidDigit
		}
	}

	if neg {
		z = ^z + 1
	}
	return z, nil
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isNumberByte reports whether ch may appear anywhere in a number. It is used
// to delimit tokens when scanning from a fmt.ScanState; the grammar itself is
// enforced by scan.
func isNumberByte(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '.' || '0' <= ch && ch <= '9'
}

// itoa appends the signed decimal representation of x to buf.
func (x Int) itoa(buf []byte) []byte {
	// The magnitude of a negative x is recovered with ^bits+1. For the most
	// negative value this yields 1<<31 again, which read as unsigned is the
	// correct magnitude 2147483648.
	m, neg := x.magnitude()
	return appendDecimal(buf, m, neg)
}

// appendDecimal appends the decimal digits of m to buf, prefixed with a '-'
// if neg is set.
func appendDecimal(buf []byte, m uint32, neg bool) []byte {
	var s [11]byte // len("-4294967295")
	i := len(s)
	for m >= 10 {
		// avoid % computation since r%10 == r - int(r/10)*10
		q := m / 10
		i--
		s[i] = '0' + byte(m-q*10)
		m = q
	}
	i--
	s[i] = '0' + byte(m)
	if neg {
		i--
		s[i] = '-'
	}
	return append(buf, s[i:]...)
}

// utoa appends the raw bit pattern of x in the given power-of-two base
// (2, 8 or 16) to buf.
func (x Int) utoa(buf []byte, base uint32, upper bool) []byte {
	var shift, mask uint32
	switch base {
	case 2:
		shift, mask = 1, 1
	case 8:
		shift, mask = 3, 7
	case 16:
		shift, mask = 4, 15
	default:
		panic("invalid base")
	}
	tab := digits
	if upper {
		tab = upperDigits
	}

	var s [Width]byte
	i := len(s)
	m := x.bits
	for m >= base {
		i--
		s[i] = tab[m&mask]
		m >>= shift
	}
	i--
	s[i] = tab[m]
	return append(buf, s[i:]...)
}
