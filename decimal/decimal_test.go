package decimal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromString builds a Dec of the given precision from a plain decimal
// string such as "3.14", "0.005" or "1200". Test helper only.
func fromString(tb testing.TB, prec int, s string) *Dec {
	tb.Helper()
	intLen := strings.IndexByte(s, '.')
	digits := strings.Replace(s, ".", "", 1)
	if intLen < 0 {
		intLen = len(s)
	}
	first, last := -1, -1
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	d := New(prec)
	if first < 0 {
		return d
	}
	d.exp = intLen - 1 - first
	d.sig = last - first + 1
	require.LessOrEqual(tb, d.sig, prec, "fromString: %q does not fit %d digits", s, prec)
	for i := 0; i < d.sig; i++ {
		d.dig[i] = int8(digits[first+i] - '0')
	}
	return d
}

func TestNew(t *testing.T) {
	d := New(10)
	assert.Equal(t, 10, d.Prec())
	assert.True(t, d.IsZero())
	assert.Equal(t, 0, d.Digits())
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(-3) })
}

func TestSetUint64(t *testing.T) {
	for _, tc := range []struct {
		v    uint64
		sig  int
		exp  int
		text string
	}{
		{0, 0, 0, "0"},
		{1, 1, 0, "1"},
		{7, 1, 0, "7"},
		{10, 1, 1, "10"},
		{100, 1, 2, "100"},
		{12345, 5, 4, "12345"},
		{10203, 5, 4, "10203"},
		{999999999999, 12, 11, "999999999999"},
		{20000, 1, 4, "20000"},
	} {
		d := New(25).SetUint64(tc.v)
		assert.Equal(t, tc.sig, d.Digits(), "sig digits of %d", tc.v)
		if tc.sig > 0 {
			assert.Equal(t, tc.exp, d.Exp(), "exponent of %d", tc.v)
		}
		assert.Equal(t, tc.text, d.String(), "formatting of %d", tc.v)
	}
}

// SetUint64 followed by formatting round-trips every integer that fits
// the precision.
func TestSetUint64RoundTrip(t *testing.T) {
	for v := uint64(0); v < 2000; v++ {
		assert.Equal(t, fmt.Sprint(v), New(10).SetUint64(v).String())
	}
	for _, v := range []uint64{12345678901234567, 1<<63 - 1, 1<<64 - 1} {
		assert.Equal(t, fmt.Sprint(v), New(20).SetUint64(v).String())
	}
}

func TestSetUint64Overflow(t *testing.T) {
	assert.PanicsWithValue(t, ErrOverflow, func() { New(4).SetUint64(12345) })
	assert.NotPanics(t, func() { New(4).SetUint64(9999) })
	// trailing zeros still count against the capacity check
	assert.PanicsWithValue(t, ErrOverflow, func() { New(4).SetUint64(10000) })
}

func TestReset(t *testing.T) {
	d := fromString(t, 10, "123.456")
	d.Reset()
	assert.True(t, d.IsZero())
	assert.Equal(t, "0", d.String())
	// idempotent
	d.Reset()
	assert.True(t, d.IsZero())
	for _, b := range d.dig {
		assert.Zero(t, b)
	}
}

func TestSet(t *testing.T) {
	for _, tc := range []struct {
		src     string
		srcPrec int
		dstPrec int
		want    string
		wantSig int
	}{
		{"3.14", 10, 10, "3.14", 3},
		{"0", 10, 5, "0", 0},
		{"123456789", 10, 5, "123450000", 5}, // silent truncation
		{"100.9", 10, 3, "100", 1},           // truncation re-normalizes
		{"0.000123", 10, 10, "0.000123", 3},
	} {
		src := fromString(t, tc.srcPrec, tc.src)
		dst := New(tc.dstPrec).Set(src)
		assert.Equal(t, tc.want, dst.String(), "%s into %d digits", tc.src, tc.dstPrec)
		assert.Equal(t, tc.wantSig, dst.Digits(), "%s into %d digits", tc.src, tc.dstPrec)
	}

	// self-assignment is a no-op
	d := fromString(t, 10, "42")
	assert.Equal(t, "42", d.Set(d).String())

	// the source is never modified
	src := fromString(t, 10, "987654321")
	New(3).Set(src)
	assert.Equal(t, "987654321", src.String())
}

func TestDecDigits(t *testing.T) {
	assert.Equal(t, 0, decDigits(0))
	assert.Equal(t, 1, decDigits(9))
	assert.Equal(t, 2, decDigits(10))
	assert.Equal(t, 5, decDigits(99999))
	assert.Equal(t, 6, decDigits(100000))
	assert.Equal(t, 20, decDigits(1<<64-1))
}
