// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bounded

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// encodedLen is the size of the binary and gob encodings: version + bits.
const encodedLen = 1 + 4

// GobEncode implements the gob.GobEncoder interface.
func (x Int) GobEncode() ([]byte, error) {
	return x.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	return z.UnmarshalBinary(buf)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// encoding is a version byte followed by the bit pattern in big-endian order.
func (x Int) MarshalBinary() ([]byte, error) {
	buf := make([]byte, encodedLen)
	buf[0] = intGobVersion
	binary.BigEndian.PutUint32(buf[1:], x.bits)
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Int) UnmarshalBinary(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("Int.UnmarshalBinary: empty buffer")
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.UnmarshalBinary: encoding version %d not supported", buf[0])
	}
	if len(buf) != encodedLen {
		return fmt.Errorf("Int.UnmarshalBinary: invalid length %d, want %d", len(buf), encodedLen)
	}
	z.bits = binary.BigEndian.Uint32(buf[1:])
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The text is the
// signed decimal form returned by String.
func (x Int) MarshalText() (text []byte, err error) {
	return x.itoa(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the format of Parse; the returned error wraps the ParseError.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := scan(bytes.NewReader(text))
	if err != nil {
		return fmt.Errorf("bounded: cannot unmarshal %q into a *bounded.Int: %w", text, err)
	}
	z.bits = x
	return nil
}
