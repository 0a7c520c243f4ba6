// Copyright 2026 The quadpi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// install makes dig[:sig], exp the value of z. The buffer must already
// be normalized (no trailing zero within sig, zeros beyond sig).
func (z *Dec) install(dig []int8, exp, sig int) *Dec {
	copy(z.dig, dig[:len(z.dig)])
	if sig == 0 {
		exp = 0
	}
	z.exp = exp
	z.sig = sig
	if debugDec {
		z.validate()
	}
	return z
}

// Add sets z to the sum x+y and returns z. x and y must have the same
// precision as z. If the magnitudes of x and y are more than z's
// precision apart, the smaller operand contributes nothing and the sum
// is the larger operand; when they partially overlap, digits of the
// smaller operand that fall beyond the precision are dropped. Both are
// deliberate truncation policies of the fixed-precision model, not
// error conditions.
func (z *Dec) Add(x, y *Dec) *Dec {
	z.checkPrec(x, y)
	if x.sig == 0 {
		return z.Set(y)
	}
	if y.sig == 0 {
		return z.Set(x)
	}
	prec := len(z.dig)
	big, small := x, y
	if y.exp > x.exp {
		big, small = y, x
	}
	diff := big.exp - small.exp
	if diff > prec {
		// overshift: the smaller operand is lost entirely
		return z.Set(big)
	}

	w := getDigits(prec)
	buf := *w

	// shift the smaller operand into the scratch buffer, dropping any
	// digits beyond the precision
	n := small.sig + diff
	if n > prec {
		n = prec
	}
	for i := diff; i < n; i++ {
		buf[i] = small.dig[i-diff]
	}
	sig := n
	if big.sig > sig {
		sig = big.sig
	}

	// right-to-left digit addition with carry, counting trailing zeros
	// as we go
	var carry int8
	zeros := 0
	trailing := true
	for i := sig - 1; i >= 0; i-- {
		d := buf[i] + big.dig[i] + carry
		if d >= 10 {
			d -= 10
			carry = 1
		} else {
			carry = 0
		}
		buf[i] = d
		if trailing {
			if d == 0 {
				zeros++
			} else {
				trailing = false
			}
		}
	}
	sig -= zeros
	exp := big.exp

	// a final carry shifts the whole number right by one place
	if carry != 0 {
		n := sig
		if n == prec {
			n = prec - 1 // truncate the last digit
		}
		copy(buf[1:n+1], buf[:n])
		buf[0] = 1
		sig = n + 1
		exp++
		// truncation may expose trailing zeros
		for sig > 0 && buf[sig-1] == 0 {
			sig--
		}
		clear(buf[sig:])
	}
	z.install(buf, exp, sig)
	putDigits(w)
	return z
}

// AddUint64 sets z to the sum x+v and returns z.
func (z *Dec) AddUint64(x *Dec, v uint64) *Dec {
	if v == 0 {
		return z.Set(x)
	}
	if x.sig == 0 {
		return z.SetUint64(v)
	}
	t := getDec(len(z.dig))
	z.Add(x, t.SetUint64(v))
	putDec(t)
	return z
}

// Mul sets z to the product x*y and returns z. x and y must have the
// same precision as z. Products with more digits than the precision are
// truncated toward zero.
func (z *Dec) Mul(x, y *Dec) *Dec {
	z.checkPrec(x, y)
	if x.sig == 0 || y.sig == 0 {
		return z.Reset()
	}
	prec := len(z.dig)
	big, small := x, y
	if y.sig > x.sig {
		big, small = y, x
	}

	// schoolbook long multiplication: shift-and-accumulate rows of the
	// smaller operand into a double-width scratch, least significant
	// digit at the end
	w := getDigits(2 * prec)
	buf := *w
	var carry int8
	for j := 0; j < small.sig; j++ {
		sd := small.dig[small.sig-1-j]
		if sd == 0 {
			continue
		}
		carry = 0
		for k := 0; k < big.sig; k++ {
			pos := 2*prec - k - j - 1
			d := buf[pos] + carry + sd*big.dig[big.sig-1-k]
			carry = d / 10
			buf[pos] = d % 10
		}
		buf[2*prec-j-big.sig-1] = carry
	}

	// the exponent is the sum of the operand exponents, plus one when
	// the top row produced a carry digit
	exp := big.exp + small.exp
	sig := big.sig + small.sig
	if carry == 0 {
		sig--
	} else {
		exp++
	}

	zeros := 0
	for i := 2*prec - 1; buf[i] == 0; i-- {
		zeros++
	}
	sig -= zeros
	if sig > prec {
		sig = prec
	}
	start := 2*prec - (big.sig + small.sig)
	if carry == 0 {
		start++
	}
	res := buf[start : start+sig]
	// truncation may expose trailing zeros
	for sig > 0 && res[sig-1] == 0 {
		sig--
	}
	// install wants prec digits with zeros beyond sig
	r := getDigits(prec)
	copy(*r, res[:sig])
	z.install(*r, exp, sig)
	putDigits(r)
	putDigits(w)
	return z
}

// MulUint64 sets z to the product x*v and returns z.
func (z *Dec) MulUint64(x *Dec, v uint64) *Dec {
	if x.sig == 0 || v == 0 {
		return z.Reset()
	}
	t := getDec(len(z.dig))
	z.Mul(x, t.SetUint64(v))
	putDec(t)
	return z
}

// Quo sets z to the truncated quotient x/y and returns z. x and y must
// have the same precision as z. Division stops after the precision is
// exhausted or the remainder becomes zero, whichever comes first; the
// result is truncated, never rounded. Quo panics with ErrDivisionByZero
// if y is zero.
func (z *Dec) Quo(x, y *Dec) *Dec {
	z.checkPrec(x, y)
	if y.sig == 0 {
		panic(ErrDivisionByZero)
	}
	if x.sig == 0 {
		return z.Reset()
	}
	prec := len(z.dig)

	// the working copy of the numerator, with one guard digit in front
	// and room to keep producing digits past the numerator's own
	w := getDigits(2*prec + 2)
	buf := *w
	copy(buf[1:], x.dig[:x.sig])
	exp := x.exp - y.exp

	// denomBigger reports whether the denominator is strictly greater
	// than the digit window starting at buf[ni].
	denomBigger := func(ni int) bool {
		if buf[ni] > 0 {
			return false
		}
		for i := 0; i < y.sig; i++ {
			switch d, b := y.dig[i], buf[ni+1+i]; {
			case d > b:
				return true
			case d < b:
				return false
			}
		}
		return false
	}

	// if the denominator exceeds the numerator's leading digits, shift
	// by one position
	ni := 0
	if denomBigger(0) {
		ni = 1
		exp--
	}

	r := getDigits(prec)
	res := *r
	sig := 0
	for nonzero := true; sig < prec && nonzero; {
		// repeated compare-and-subtract produces one result digit
		var d int8
		for !denomBigger(ni) {
			d++
			for i := 0; i < y.sig; i++ {
				pos := ni + y.sig - i
				buf[pos] -= y.dig[y.sig-1-i]
				if buf[pos] < 0 {
					buf[pos] += 10
					buf[pos-1]--
				}
			}
		}

		// once the numerator's own digits are exhausted, a zero
		// remainder means the division is exact and we can stop
		if sig >= x.sig {
			allZero := true
			for i := 0; i <= y.sig; i++ {
				if buf[ni+i] != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				nonzero = false
			}
		}
		res[sig] = d
		sig++
		ni++
	}

	for sig > 0 && res[sig-1] == 0 {
		sig--
	}
	clear(res[sig:])
	z.install(res, exp, sig)
	putDigits(r)
	putDigits(w)
	return z
}

// QuoUint64 sets z to the truncated quotient x/v and returns z. It
// panics with ErrDivisionByZero if v is zero.
func (z *Dec) QuoUint64(x *Dec, v uint64) *Dec {
	if v == 0 {
		panic(ErrDivisionByZero)
	}
	if x.sig == 0 {
		return z.Reset()
	}
	t := getDec(len(z.dig))
	z.Quo(x, t.SetUint64(v))
	putDec(t)
	return z
}

// Uint64Quo sets z to the truncated quotient v/y and returns z. It
// panics with ErrDivisionByZero if y is zero.
func (z *Dec) Uint64Quo(v uint64, y *Dec) *Dec {
	if y.sig == 0 {
		panic(ErrDivisionByZero)
	}
	if v == 0 {
		return z.Reset()
	}
	t := getDec(len(z.dig))
	z.Quo(t.SetUint64(v), y)
	putDec(t)
	return z
}
