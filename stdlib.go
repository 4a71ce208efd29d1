// This file mirrors helpers from math/big.

package bounded

import (
	"fmt"
	"io"
)

const (
	digits      = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

var _ io.ByteScanner = byteReader{}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}
