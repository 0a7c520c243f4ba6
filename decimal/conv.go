// Copyright 2026 The quadpi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

// Append appends the decimal representation of x to buf and returns the
// extended buffer. If max > 0, at most max significant digits are
// emitted, truncating the fractional part only: the integer part is
// always printed in full. max == 0 prints every stored digit. Values
// below 1 are printed with a leading "0." and zero padding; integers
// whose magnitude exceeds their stored digits are padded with trailing
// zeros.
func (x *Dec) Append(buf []byte, max int) []byte {
	if x.sig == 0 {
		return append(buf, '0')
	}
	limit := x.sig
	if max > 0 && max < limit {
		limit = max
	}
	switch {
	case x.exp < 0:
		// 0.00ddd
		buf = append(buf, '0', '.')
		for i := 1; i < -x.exp; i++ {
			buf = append(buf, '0')
		}
		for _, d := range x.dig[:limit] {
			buf = append(buf, '0'+byte(d))
		}
	case x.sig > x.exp+1:
		// ddd.ddd
		for _, d := range x.dig[:x.exp+1] {
			buf = append(buf, '0'+byte(d))
		}
		if limit > x.exp+1 {
			buf = append(buf, '.')
			for _, d := range x.dig[x.exp+1 : limit] {
				buf = append(buf, '0'+byte(d))
			}
		}
	default:
		// ddd, zero padded up to exp+1 places
		for _, d := range x.dig[:x.sig] {
			buf = append(buf, '0'+byte(d))
		}
		for i := x.sig; i <= x.exp; i++ {
			buf = append(buf, '0')
		}
	}
	return buf
}

// Text returns the decimal representation of x with at most max
// significant digits. See Append for the meaning of max.
func (x *Dec) Text(max int) string {
	return string(x.Append(nil, max))
}

// String returns the full decimal representation of x.
func (x *Dec) String() string {
	return x.Text(0)
}
