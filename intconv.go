// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Int conversion functions and Int formatting.

package bounded

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse parses s, which must contain an optionally signed decimal number with
// an optional fractional part, and returns the Int it denotes. The entire
// string must be valid; the empty string denotes 0. Fractional digits are
// truncated. The number must be of the form:
//
//	number = [ sign ] [ digits [ "." { digit } ] ] .
//	sign   = "+" | "-" .
//	digits = digit { digit } .
//	digit  = "0" ... "9" .
//
// The magnitude must not exceed 4294967295. A negative sign is applied by
// two's-complement negation of that magnitude, so "-4294967295" and "1" denote
// the same Int.
//
// The returned error, if any, is InvalidDigit or Overflow.
func Parse(s string) (Int, error) {
	z, err := scan(strings.NewReader(s))
	if err != nil {
		return Int{}, err
	}
	return Int{bits: z}, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("bounded: Parse(%q): %v", s, err))
	}
	return x
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. s must be a number of the format accepted by Parse. If the
// operation failed, the value of z is unchanged but the returned value is nil.
func (z *Int) SetString(s string) (*Int, bool) {
	x, err := Parse(s)
	if err != nil {
		return nil, false
	}
	*z = x
	return z, true
}

var intZero Int

var _ fmt.Scanner = &intZero // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number. It accepts the verbs 'd', 's' and 'v'. Scanning stops at the
// first byte that cannot be part of a number; the scanned bytes must then form
// a valid number as accepted by Parse.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errors.New("Int.Scan: invalid verb")
	}
	s.SkipSpace()
	r := &tokenReader{r: byteReader{s}}
	x, err := scan(r)
	if err != nil {
		return err
	}
	if r.n == 0 {
		return io.ErrUnexpectedEOF
	}
	z.bits = x
	return nil
}

// tokenReader reports io.EOF at the first byte that cannot appear in a number
// and leaves that byte unread.
type tokenReader struct {
	r io.ByteScanner
	n int // bytes read so far
}

func (t *tokenReader) ReadByte() (byte, error) {
	ch, err := t.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if !isNumberByte(rune(ch)) {
		if err = t.r.UnreadByte(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	t.n++
	return ch, nil
}

var _ fmt.Stringer = intZero

// String returns the signed decimal representation of x, with a leading '-'
// if x is negative.
func (x Int) String() string {
	return string(x.itoa(nil))
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Int) Append(buf []byte) []byte {
	return x.itoa(buf)
}

var _ fmt.Formatter = intZero

// Format implements fmt.Formatter. The verbs 'd', 's' and 'v' print the signed
// decimal value; 'b', 'o', 'O', 'x' and 'X' print the raw bit pattern in base 2,
// 8 or 16, which is how a negative value's two's-complement encoding can be
// inspected:
//
//	fmt.Sprintf("%d %#x", bounded.MustParse("-5"), bounded.MustParse("-5")) // "-5 0xfffffffb"
//
// The '+', ' ', '-', '0' and '#' flags and the width are honoured as for the
// built-in integer types. Precision is ignored.
func (x Int) Format(s fmt.State, ch rune) {
	var buf []byte
	switch ch {
	case 'd', 's', 'v':
		buf = x.itoa(buf)
	case 'b':
		buf = x.utoa(buf, 2, false)
	case 'o', 'O':
		buf = x.utoa(buf, 8, false)
	case 'x':
		buf = x.utoa(buf, 16, false)
	case 'X':
		buf = x.utoa(buf, 16, true)
	default:
		fmt.Fprintf(s, "%%!%c(bounded.Int=%s)", ch, x.String())
		return
	}

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var prefix string
	if ch == 'O' {
		prefix = "0o"
	} else if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	// padding
	var left, zeros, right int
	if w, ok := s.Width(); ok {
		if d := w - len(sign) - len(prefix) - len(buf); d > 0 {
			switch {
			case s.Flag('-'):
				right = d
			case s.Flag('0'):
				zeros = d
			default:
				left = d
			}
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeros)
	_, _ = s.Write(buf)
	writeMultiple(s, " ", right)
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}
