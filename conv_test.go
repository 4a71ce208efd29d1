// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bounded

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseTests = []struct {
	s    string
	bits uint32
	err  error
}{
	// empty and sign only
	{"", 0, nil},
	{"+", 0, nil},
	{"-", 0, nil},
	{"-0", 0, nil},
	{"+0", 0, nil},
	{"000", 0, nil},

	{"5", 0x00000005, nil},
	{"+5", 0x00000005, nil},
	{"-5", 0xfffffffb, nil},
	{"13", 0x0000000d, nil},
	{"-25", 0xffffffe7, nil},
	{"007", 7, nil},
	{"2147483647", 0x7fffffff, nil},
	{"2147483648", 0x80000000, nil},
	{"-2147483648", 0x80000000, nil},
	{"3000000000", 0xb2d05e00, nil},
	{"4294967295", 0xffffffff, nil},
	{"-4294967295", 0x00000001, nil},

	// truncated fractions
	{"5.", 5, nil},
	{"5.999", 5, nil},
	{"-5.999", 0xfffffffb, nil},
	{"0.5", 0, nil},
	// a sign moves to the integer state, which accepts '.'
	{"-.5", 0, nil},
	{"+.", 0, nil},
	{"4294967295.99999999999999999999", 0xffffffff, nil},

	// overflow
	{"4294967296", 0, Overflow},
	{"-4294967296", 0, Overflow},
	{"42949672950", 0, Overflow},
	{"99999999999999999999", 0, Overflow},
	{"4294967296.0", 0, Overflow},

	// invalid digits
	{"abc", 0, InvalidDigit},
	{"12-3", 0, InvalidDigit},
	{"--5", 0, InvalidDigit},
	{"+-5", 0, InvalidDigit},
	{"5+", 0, InvalidDigit},
	{".5", 0, InvalidDigit},
	{".", 0, InvalidDigit},
	{"1.2.3", 0, InvalidDigit},
	{"1..2", 0, InvalidDigit},
	{"1.5-", 0, InvalidDigit},
	{" 5", 0, InvalidDigit},
	{"5 ", 0, InvalidDigit},
	{"0x10", 0, InvalidDigit},
	{"1_000", 0, InvalidDigit},
	{"1e3", 0, InvalidDigit},
	{"١", 0, InvalidDigit},
}

func TestParse(t *testing.T) {
	for i, test := range parseTests {
		x, err := Parse(test.s)
		if err != test.err {
			t.Errorf("#%d Parse(%q) error = %v; want %v", i, test.s, err, test.err)
			continue
		}
		if x.Bits() != test.bits {
			t.Errorf("#%d Parse(%q) = %#08x; want %#08x", i, test.s, x.Bits(), test.bits)
		}
	}
}

func TestParseErrorKinds(t *testing.T) {
	_, err := Parse("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, InvalidDigit))
	assert.False(t, errors.Is(err, Overflow))
	assert.Equal(t, "invalid digit found", err.Error())

	_, err = Parse("4294967296")
	require.Error(t, err)
	var pe ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, Overflow, pe)
	assert.Equal(t, "overflow occurred", err.Error())

	assert.Equal(t, "ParseError(7)", ParseError(7).Error())
}

// The first offending byte decides the error; later bytes are not examined.
func TestParseErrorPrecedence(t *testing.T) {
	_, err := Parse("99999999999x")
	assert.Equal(t, Overflow, err)

	_, err = Parse("x99999999999")
	assert.Equal(t, InvalidDigit, err)
}

func TestParseTruncatesFraction(t *testing.T) {
	for _, s := range []string{"5", "5.", "5.0", "5.5", "5.999", "5.00000000000000000000001"} {
		assert.Equal(t, MustParse("5"), MustParse(s), "Parse(%q)", s)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.PanicsWithValue(t, `bounded: Parse("12-3"): invalid digit found`, func() { MustParse("12-3") })
	assert.NotPanics(t, func() { MustParse("-12.3") })
}

func TestSetString(t *testing.T) {
	var z Int
	r, ok := z.SetString("-42")
	require.True(t, ok)
	assert.Same(t, &z, r)
	assert.Equal(t, int32(-42), z.Int32())

	r, ok = z.SetString("4294967296")
	assert.False(t, ok)
	assert.Nil(t, r)
	assert.Equal(t, int32(-42), z.Int32(), "failed SetString must leave z unchanged")
}

var stringTests = []struct {
	bits uint32
	s    string
}{
	{0x00000000, "0"},
	{0x00000001, "1"},
	{0x00000005, "5"},
	{0x0000000a, "10"},
	{0x00000041, "65"},
	{0x7fffffff, "2147483647"},
	{0x80000000, "-2147483648"},
	{0x80000001, "-2147483647"},
	{0xb2d05e00, "-1294967296"},
	{0xfffffff8, "-8"},
	{0xfffffffb, "-5"},
	{0xffffffe7, "-25"},
	{0xffffffff, "-1"},
}

func TestString(t *testing.T) {
	for i, test := range stringTests {
		x := FromBits(test.bits)
		if s := x.String(); s != test.s {
			t.Errorf("#%d %#08x.String() = %q; want %q", i, test.bits, s, test.s)
		}
		if s := string(x.Append([]byte("x="))); s != "x="+test.s {
			t.Errorf("#%d Append = %q; want %q", i, s, "x="+test.s)
		}
	}
}

// The most negative pattern is its own two's-complement negation; rendering
// reads the recovered pattern as an unsigned magnitude.
func TestStringMostNegative(t *testing.T) {
	x := FromBits(0x80000000)
	require.Equal(t, x, x.Neg())
	assert.Equal(t, "-2147483648", x.String())
	assert.Equal(t, fmt.Sprint(int32(MinInt32)), x.String())
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "5", "-5", "-8", "65", "2147483647", "-2147483648", "-1"} {
		assert.Equal(t, s, MustParse(s).String())
	}
	// non-canonical input renders canonically
	for in, want := range map[string]string{
		"+5":         "5",
		"-0":         "0",
		"007":        "7",
		"5.999":      "5",
		"":           "0",
		"4294967295": "-1",
		"2147483648": "-2147483648",
	} {
		assert.Equal(t, want, MustParse(in).String(), "Parse(%q)", in)
	}
}

func TestStringAllSignBoundaries(t *testing.T) {
	// exhaustively compare against the built-in conversion near the edges
	for _, base := range []uint32{0, 1 << 31, 1<<32 - 1<<16} {
		for i := uint32(0); i < 1<<16; i++ {
			b := base + i
			if got, want := FromBits(b).String(), fmt.Sprint(int32(b)); got != want {
				t.Fatalf("%#08x: got %s; want %s", b, got, want)
			}
		}
	}
}

var formatTests = []struct {
	format string
	s      string
	want   string
}{
	{"%d", "-5", "-5"},
	{"%v", "-5", "-5"},
	{"%s", "42", "42"},
	{"%+d", "42", "+42"},
	{"% d", "42", " 42"},
	{"%+d", "-42", "-42"},
	{"%5d", "-42", "  -42"},
	{"%-5d|", "-42", "-42  |"},
	{"%05d", "-42", "-0042"},
	{"%x", "-5", "fffffffb"},
	{"%X", "-5", "FFFFFFFB"},
	{"%#x", "-5", "0xfffffffb"},
	{"%#X", "255", "0XFF"},
	{"%b", "5", "101"},
	{"%#b", "5", "0b101"},
	{"%o", "8", "10"},
	{"%#o", "8", "010"},
	{"%O", "8", "0o10"},
	{"%010x", "255", "00000000ff"},
	{"%x", "0", "0"},
	{"%q", "1", "%!q(bounded.Int=1)"},
}

func TestFormat(t *testing.T) {
	for i, test := range formatTests {
		got := fmt.Sprintf(test.format, MustParse(test.s))
		if got != test.want {
			t.Errorf("#%d Sprintf(%q, %s) = %q; want %q", i, test.format, test.s, got, test.want)
		}
	}
}

func TestFormatMatchesInt32(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, -128, MaxInt32, MinInt32} {
		for _, f := range []string{"%d", "%v", "%+d", "%12d", "%-12d", "%012d"} {
			assert.Equal(t, fmt.Sprintf(f, v), fmt.Sprintf(f, FromInt32(v)), "%s of %d", f, v)
		}
		for _, f := range []string{"%x", "%#x", "%X", "%b", "%o"} {
			assert.Equal(t, fmt.Sprintf(f, uint32(v)), fmt.Sprintf(f, FromInt32(v)), "%s of %d", f, v)
		}
	}
}

func TestScan(t *testing.T) {
	var x, y Int
	var word string
	n, err := fmt.Sscan("  -5 13.7 rest", &x, &y, &word)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "-5", x.String())
	assert.Equal(t, "13", y.String())
	assert.Equal(t, "rest", word)

	_, err = fmt.Sscanf("4294967296", "%d", &x)
	assert.ErrorIs(t, err, Overflow)

	_, err = fmt.Sscanf("1-2", "%d", &x)
	assert.ErrorIs(t, err, InvalidDigit)

	_, err = fmt.Sscanf("12", "%x", &x)
	assert.Error(t, err)

	_, err = fmt.Sscan("", &x)
	assert.Error(t, err)
}

func BenchmarkParse(b *testing.B) {
	for _, s := range []string{"5", "-2147483648", "4294967295.999999"} {
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Parse(s)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	x := FromBits(0x80000000)
	buf := make([]byte, 0, 16)
	b.Run("String", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.String()
		}
	})
	b.Run("Append", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf = x.Append(buf[:0])
		}
	})
}
