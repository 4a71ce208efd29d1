// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checked provides overflow-checked arithmetic for bounded.Int values.
//
// The methods of bounded.Int wrap silently on overflow. A Context performs the
// same operations but reports a result that does not fit as an error instead:
//
//	c := checked.New(checked.Signed)
//	z := c.Add(x, y)
//	z = c.Mul(z, y)
//	if err := c.Err(); err != nil {
//		// x+y or (x+y)*y overflowed
//	}
//
// Errors are sticky: once an operation fails, further operations with the
// context are no-ops that return the zero Int until (*Context).Err is called
// to check for errors. The failing operation itself also returns the zero Int.
//
// Whether a result fits depends on the context's Mode: Signed reads Ints as
// values in [MinInt32, MaxInt32], Unsigned reads their bit patterns as values
// in [0, 1<<32-1].
//
// A Context is not safe for concurrent use; bounded.Int values are.
package checked

import (
	"errors"
	"math/bits"
	"strconv"

	"go.uber.org/zap"

	"github.com/db47h/bounded"
)

// Mode selects how a Context interprets the bit pattern of an Int when
// checking for overflow.
type Mode byte

// Supported modes.
const (
	Signed   Mode = iota // two's-complement, [MinInt32, MaxInt32]
	Unsigned             // raw bits, [0, 1<<32-1]
)

func (m Mode) String() string {
	switch m {
	case Signed:
		return "Signed"
	case Unsigned:
		return "Unsigned"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// format renders x the way m reads it.
func (m Mode) format(x bounded.Int) string {
	if m == Unsigned {
		return strconv.FormatUint(uint64(x.Bits()), 10)
	}
	return x.String()
}

// A Context is a wrapper around bounded.Int arithmetic that turns overflow and
// division by zero into errors.
type Context struct {
	mode Mode
	err  error
	log  *zap.Logger
}

// New creates a new context with the given mode.
func New(mode Mode) *Context {
	return new(Context).SetMode(mode)
}

// Mode returns the interpretation mode of c.
func (c *Context) Mode() Mode {
	return c.mode
}

// SetMode sets c's interpretation mode to mode and returns c.
func (c *Context) SetMode(mode Mode) *Context {
	c.mode = mode
	return c
}

// SetLogger sets the logger c reports failures to and returns c. Each failure
// that sets the sticky error is logged once at debug level. A nil l restores
// the default, which discards all output.
func (c *Context) SetLogger(l *zap.Logger) *Context {
	c.log = l
	return c
}

func (c *Context) logger() *zap.Logger {
	if c.log == nil {
		return Logger()
	}
	return c.log
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// fail records err as the sticky error of c and returns the zero Int.
func (c *Context) fail(e *OpError) bounded.Int {
	e.Mode = c.mode
	c.err = e
	fields := []zap.Field{
		zap.String("op", e.Op),
		zap.Stringer("mode", c.mode),
		zap.Error(e.Err),
	}
	if e.Op == "parse" {
		fields = append(fields, zap.String("input", e.Input))
	}
	for i, x := range e.Args {
		fields = append(fields, zap.String("arg"+strconv.Itoa(i), c.mode.format(x)))
	}
	c.logger().Debug("checked operation failed", fields...)
	return bounded.Int{}
}

// Parse returns the Int denoted by s, as accepted by bounded.Parse.
//
// In Signed mode a magnitude beyond the signed range is reported as
// ErrOverflow: "2147483648" and "-2147483649" fail, "-2147483648" does not.
// In Unsigned mode any magnitude accepted by bounded.Parse is valid, but a
// negative sign is only accepted on zero.
func (c *Context) Parse(s string) bounded.Int {
	if c.err != nil {
		return bounded.Int{}
	}
	x, err := bounded.Parse(s)
	if err != nil {
		return c.fail(&OpError{Op: "parse", Input: s, Err: err})
	}
	if !c.parsedInRange(s, x) {
		return c.fail(&OpError{Op: "parse", Input: s, Err: ErrOverflow})
	}
	return x
}

// parsedInRange reports whether the successfully parsed x kept the sign
// written in s.
func (c *Context) parsedInRange(s string, x bounded.Int) bool {
	neg := len(s) > 0 && s[0] == '-'
	if c.mode == Unsigned {
		return !neg || x.Bits() == 0
	}
	if x.Bits() == 0 {
		return true
	}
	// A written sign that disagrees with the sign bit means the magnitude
	// did not fit; -2147483648 is the one magnitude past MaxInt32 that does.
	return neg == x.IsNeg()
}

// Add returns the sum x+y.
func (c *Context) Add(x, y bounded.Int) bounded.Int {
	if c.err != nil {
		return bounded.Int{}
	}
	z := x.Add(y)
	var overflow bool
	if c.mode == Unsigned {
		_, carry := bits.Add32(x.Bits(), y.Bits(), 0)
		overflow = carry != 0
	} else {
		// both operands have the same sign and the sum's sign differs
		overflow = (x.Bits()^z.Bits())&(y.Bits()^z.Bits())&(1<<31) != 0
	}
	if overflow {
		return c.fail(&OpError{Op: "add", Args: []bounded.Int{x, y}, Err: ErrOverflow})
	}
	return z
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y bounded.Int) bounded.Int {
	if c.err != nil {
		return bounded.Int{}
	}
	z := x.Sub(y)
	var overflow bool
	if c.mode == Unsigned {
		_, borrow := bits.Sub32(x.Bits(), y.Bits(), 0)
		overflow = borrow != 0
	} else {
		// operands have different signs and the difference's sign differs from x
		overflow = (x.Bits()^y.Bits())&(x.Bits()^z.Bits())&(1<<31) != 0
	}
	if overflow {
		return c.fail(&OpError{Op: "sub", Args: []bounded.Int{x, y}, Err: ErrOverflow})
	}
	return z
}

// Mul returns the product x*y.
func (c *Context) Mul(x, y bounded.Int) bounded.Int {
	if c.err != nil {
		return bounded.Int{}
	}
	var overflow bool
	if c.mode == Unsigned {
		hi, _ := bits.Mul32(x.Bits(), y.Bits())
		overflow = hi != 0
	} else {
		p := int64(x.Int32()) * int64(y.Int32())
		overflow = p != int64(int32(p))
	}
	if overflow {
		return c.fail(&OpError{Op: "mul", Args: []bounded.Int{x, y}, Err: ErrOverflow})
	}
	return x.Mul(y)
}

// Quo returns the quotient x/y. In Signed mode it is the signed quotient
// truncated toward zero, as computed by QuoSigned, and MinInt32 / -1 is an
// overflow. In Unsigned mode it is the quotient of the bit patterns, as
// computed by bounded.Int.Quo, which never overflows.
//
// A zero y is reported as ErrDivisionByZero.
func (c *Context) Quo(x, y bounded.Int) (z bounded.Int) {
	if c.err != nil {
		return bounded.Int{}
	}
	if c.mode == Signed && x.Int32() == bounded.MinInt32 && y.Int32() == -1 {
		return c.fail(&OpError{Op: "quo", Args: []bounded.Int{x, y}, Err: ErrOverflow})
	}
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || !errors.Is(err, bounded.ErrDivisionByZero) {
				panic(r)
			}
			z = c.fail(&OpError{Op: "quo", Args: []bounded.Int{x, y}, Err: ErrDivisionByZero})
		}
	}()
	if c.mode == Unsigned {
		return x.Quo(y)
	}
	return x.QuoSigned(y)
}

// Neg returns -x. In Signed mode negating MinInt32 overflows; in Unsigned mode
// negating anything but zero does.
func (c *Context) Neg(x bounded.Int) bounded.Int {
	if c.err != nil {
		return bounded.Int{}
	}
	var overflow bool
	if c.mode == Unsigned {
		overflow = x.Bits() != 0
	} else {
		overflow = x.Int32() == bounded.MinInt32
	}
	if overflow {
		return c.fail(&OpError{Op: "neg", Args: []bounded.Int{x}, Err: ErrOverflow})
	}
	return x.Neg()
}
