// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounded

import "strconv"

// A ParseError reports why a decimal string could not be converted to an Int.
// It carries no information beyond its kind, so errors returned by Parse can be
// compared directly or with errors.Is:
//
//	if errors.Is(err, bounded.Overflow) { ... }
type ParseError byte

// Parse error kinds.
const (
	// InvalidDigit reports a byte that does not fit the number grammar at
	// its position: a non-digit, a sign after the first byte, a second '.'
	// or a '.' before any digit.
	InvalidDigit ParseError = iota + 1
	// Overflow reports a magnitude larger than 4294967295.
	Overflow
)

func (e ParseError) Error() string {
	switch e {
	case InvalidDigit:
		return "invalid digit found"
	case Overflow:
		return "overflow occurred"
	}
	return "ParseError(" + strconv.Itoa(int(e)) + ")"
}
