package decimal

import (
	"errors"
	"math/bits"
	"sync"
)

// debugDec enables expensive invariant checks on every operation.
const debugDec = false

var (
	// ErrDivisionByZero is the panic value of Quo and its variants when
	// the denominator is zero.
	ErrDivisionByZero = errors.New("decimal: division by zero")
	// ErrOverflow is the panic value of SetUint64 when the integer has
	// more digits than the receiver's precision.
	ErrOverflow = errors.New("decimal: integer exceeds precision")
	// ErrPrecisionMismatch is the panic value of arithmetic operations
	// whose operands do not share the receiver's precision.
	ErrPrecisionMismatch = errors.New("decimal: operand precision mismatch")
)

// A Dec is a fixed-precision unsigned decimal number.
//
// The value is dig[0]*10**exp + dig[1]*10**(exp-1) + ... over the sig
// leading entries of dig. sig == 0 denotes zero. Stored values are
// normalized: when sig > 0, dig[0] and dig[sig-1] are non-zero and
// dig[sig:] is all zeros.
type Dec struct {
	dig []int8 // len(dig) == prec, digits 0-9, most significant first
	exp int    // place value of dig[0] is 10**exp
	sig int    // significant digits; 0 means the value is zero
}

// New returns a zero-valued Dec with capacity for prec decimal digits.
// It panics if prec < 1.
func New(prec int) *Dec {
	if prec < 1 {
		panic(errors.New("decimal: non-positive precision"))
	}
	return &Dec{dig: make([]int8, prec)}
}

// Prec returns the digit capacity of x.
func (x *Dec) Prec() int { return len(x.dig) }

// Digits returns the number of significant digits of x. It is 0 if and
// only if x is zero.
func (x *Dec) Digits() int { return x.sig }

// Exp returns the decimal exponent of x's most significant digit. The
// result is meaningless when x is zero.
func (x *Dec) Exp() int { return x.exp }

// IsZero reports whether x is zero.
func (x *Dec) IsZero() bool { return x.sig == 0 }

// Reset sets z to zero in place and returns z. Resetting an already
// zero value is a no-op.
func (z *Dec) Reset() *Dec {
	if z.sig > 0 {
		clear(z.dig[:z.sig])
		z.exp = 0
		z.sig = 0
	}
	return z
}

// Set sets z to the value of x and returns z. If x has more significant
// digits than z can hold, the extra digits are silently dropped; the
// result is re-normalized so that no trailing zeros are stored.
func (z *Dec) Set(x *Dec) *Dec {
	if z == x {
		return z
	}
	z.Reset()
	if x.sig == 0 {
		return z
	}
	z.exp = x.exp
	z.sig = x.sig
	if p := len(z.dig); z.sig > p {
		z.sig = p
	}
	copy(z.dig[:z.sig], x.dig[:z.sig])
	// truncation may expose trailing zeros
	for z.sig > 0 && z.dig[z.sig-1] == 0 {
		z.sig--
	}
	if debugDec {
		z.validate()
	}
	return z
}

// SetUint64 sets z to v and returns z. It panics with ErrOverflow if v
// has more digits than z's precision.
func (z *Dec) SetUint64(v uint64) *Dec {
	z.Reset()
	if v == 0 {
		return z
	}
	n := decDigits(v)
	if n > len(z.dig) {
		panic(ErrOverflow)
	}
	z.exp = n - 1
	for v%10 == 0 {
		v /= 10
		n--
	}
	z.sig = n
	for i := n - 1; i >= 0; i-- {
		z.dig[i] = int8(v % 10)
		v /= 10
	}
	if debugDec {
		z.validate()
	}
	return z
}

func (x *Dec) validate() {
	if !debugDec {
		panic("validate called but debugDec is not set")
	}
	p := len(x.dig)
	if p < 1 {
		panic("Dec with zero precision")
	}
	if x.sig < 0 || x.sig > p {
		panic("significant digit count out of range")
	}
	if x.sig == 0 && x.exp != 0 {
		panic("zero value with non-zero exponent")
	}
	if x.sig > 0 && (x.dig[0] == 0 || x.dig[x.sig-1] == 0) {
		panic("denormalized value")
	}
	for i, d := range x.dig {
		if d < 0 || d > 9 {
			panic("digit out of range")
		}
		if i >= x.sig && d != 0 {
			panic("non-zero digit beyond significant count")
		}
	}
}

// checkPrec panics unless x and y share z's precision. All three-operand
// arithmetic requires identical precision; anything else is a caller bug.
func (z *Dec) checkPrec(x, y *Dec) {
	if len(x.dig) != len(z.dig) || len(y.dig) != len(z.dig) {
		panic(ErrPrecisionMismatch)
	}
}

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

var maxDigits = [...]int{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n, or 0 for x == 0.
func decDigits(x uint64) int {
	n := maxDigits[bits.Len64(x)]
	if x < pow10s[n-1] {
		n--
	}
	return n
}

// Scratch digit buffers for the arithmetic kernels. The pool holds
// *[]int8 to avoid an allocation when converting to interface{}.
var digPool sync.Pool

// getDigits returns a zeroed digit buffer of length n.
func getDigits(n int) *[]int8 {
	var w *[]int8
	if v := digPool.Get(); v != nil {
		w = v.(*[]int8)
	}
	if w == nil {
		w = new([]int8)
	}
	if cap(*w) < n {
		*w = make([]int8, n)
	} else {
		*w = (*w)[:n]
		clear(*w)
	}
	return w
}

func putDigits(w *[]int8) {
	digPool.Put(w)
}

// Scratch Dec values for the int convenience wrappers.
var decPool sync.Pool

// getDec returns a zero-valued *Dec of precision prec.
func getDec(prec int) *Dec {
	var t *Dec
	if v := decPool.Get(); v != nil {
		t = v.(*Dec)
	}
	if t == nil {
		t = new(Dec)
	}
	if cap(t.dig) < prec {
		t.dig = make([]int8, prec)
	} else {
		t.dig = t.dig[:prec]
		clear(t.dig)
	}
	t.exp = 0
	t.sig = 0
	return t
}

func putDec(t *Dec) {
	decPool.Put(t)
}
