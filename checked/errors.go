package checked

import (
	"errors"
	"strings"

	"github.com/db47h/bounded"
)

var (
	// ErrOverflow is returned when the exact result of an operation is not
	// representable in the context's interpretation of an Int.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrDivisionByZero is returned by Quo when the divisor is zero. It is the
	// value bounded.Int.Quo panics with.
	ErrDivisionByZero error = bounded.ErrDivisionByZero
)

// OpError describes a failed Context operation.
//
// The underlying error can be accessed via errors.Unwrap; it is ErrOverflow,
// ErrDivisionByZero or, for Op == "parse", a bounded.ParseError.
type OpError struct {
	Op    string        // "add", "sub", "mul", "quo", "neg" or "parse"
	Mode  Mode          // interpretation in effect
	Args  []bounded.Int // operands; nil for "parse"
	Input string        // parsed text; "" unless Op == "parse"
	Err   error
}

func (e *OpError) Error() string {
	var b strings.Builder
	b.WriteString("checked: ")
	b.WriteString(e.Op)
	if e.Op == "parse" {
		b.WriteString(" \"")
		b.WriteString(e.Input)
		b.WriteByte('"')
	} else {
		b.WriteByte('(')
		for i, x := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Mode.format(x))
		}
		b.WriteByte(')')
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *OpError) Unwrap() error { return e.Err }
