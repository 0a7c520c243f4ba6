// Copyright 2026 The quadpi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements fixed-precision unsigned decimal arithmetic.

A Dec is a non-negative decimal number stored as individual base-10
digits, most significant first, together with a decimal exponent and a
significant-digit count. The digit capacity (precision) is set once at
construction and never changes; results that need more digits than the
precision allows are silently truncated toward zero. There is no
rounding, no sign, and no subtraction: the type is deliberately minimal,
just enough for long-running quadrature sums where truncation error per
operation is bounded by one unit in the last stored digit.

The zero value of a Dec is not usable; values are created with New:

	x := decimal.New(25) // 0 with room for 25 digits

Setters and numeric operations are methods of the form

	func (z *Dec) SetV(v V) *Dec            // z = v
	func (z *Dec) Binary(x, y *Dec) *Dec    // z = x binary y

where the receiver denotes the result. Operations compute into scratch
storage and install the result last, so the receiver may freely alias
either operand:

	sum.Add(sum, x)    // accumulate x into sum
	sq.Mul(sq, sq)     // square in place

Add, Mul and Quo require all three operands to share the same precision
and panic otherwise; Set is the only precision-crossing operation and
truncates silently. Quo panics with ErrDivisionByZero on a zero
denominator, which callers are expected to rule out beforehand.
*/
package decimal
