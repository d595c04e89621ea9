// Copyright (C) 2026 Stakemath Developers.
// This file is part of go-stakemath
//
// go-stakemath is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-stakemath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-stakemath.  If not, see <https://www.gnu.org/licenses/>.

package basics

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// OverflowTracker is used to track when an operation causes an overflow
type OverflowTracker struct {
	Overflowed bool
}

// OAdd adds 2 values with overflow detection
func OAdd[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a + b
	overflowed = res < a
	return
}

// OSub subtracts b from a with overflow detection
func OSub[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	res = a - b
	overflowed = res > a
	return
}

// OMul multiplies 2 values with overflow detection
func OMul[T constraints.Unsigned](a, b T) (res T, overflowed bool) {
	if b == 0 {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, true
	}
	return c, false
}

// MulSaturate multiplies 2 values with saturation on overflow
func MulSaturate[T constraints.Unsigned](a, b T) T {
	res, overflowed := OMul(a, b)
	if overflowed {
		var defaultT T
		return ^defaultT
	}
	return res
}

// AddSaturate adds 2 values with saturation on overflow
func AddSaturate[T constraints.Unsigned](a, b T) T {
	res, overflowed := OAdd(a, b)
	if overflowed {
		var defaultT T
		return ^defaultT
	}
	return res
}

// SubSaturate subtracts 2 values with saturation on underflow
func SubSaturate[T constraints.Unsigned](a, b T) T {
	res, overflowed := OSub(a, b)
	if overflowed {
		return 0
	}
	return res
}

// Add adds 2 values with overflow detection
func (t *OverflowTracker) Add(a, b uint64) uint64 {
	res, overflowed := OAdd(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// Sub subtracts b from a with overflow detection
func (t *OverflowTracker) Sub(a, b uint64) uint64 {
	res, overflowed := OSub(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// Mul multiplies b by a with overflow detection
func (t *OverflowTracker) Mul(a, b uint64) uint64 {
	res, overflowed := OMul(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// Muldiv computes a*b/c.  The overflow flag indicates that the result was 2^64
// or greater. `c` is not generic, because most call sites use a constant. Making
// `c` generic forced casting it to uint64, as Go makes it an int.
func Muldiv[A ~uint64, B ~uint64](a A, b B, c uint64) (A, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if c <= hi {
		return 0, true
	}
	quo, _ := bits.Div64(hi, lo, c)
	return A(quo), false
}

// Mul2div computes a*b*c/d. On overflow, the returned A is saturated.
func Mul2div[A ~uint64, B ~uint64, C ~uint64](a A, b B, c C, d uint64) (A, bool) {
	/*
	    A     Y   X0     XY
	  x B   x C  x C    x C
	  ---   ---  ---    ---
	   XY    JK  LM0    JK+LM0
	*/

	X, Y := bits.Mul64(uint64(a), uint64(b))
	J, K := bits.Mul64(Y, uint64(c))
	L, M := bits.Mul64(X, uint64(c))
	if L > 0 {
		return math.MaxUint64, true
	}

	JplusM := AddSaturate(J, M) // "J" + "M"
	// This test ensures the division won't overflow AND that there's no carry
	// into the "L" part (since `JplusM` is MaxUint64 in that case)
	if d <= JplusM {
		return math.MaxUint64, true
	}

	quo, _ := bits.Div64(JplusM, K, d)
	return A(quo), false
}

// Mul2div2 computes a*b*c/(d1*d2) exactly, keeping the full ~192-bit product
// and the up-to-128-bit divisor in limbs. Unlike Mul2div it never saturates
// merely because an intermediate is wide; the overflow flag indicates the
// quotient itself was 2^64 or greater, and the returned value is saturated
// in that case. Relies on the identity
// floor(n/(d1*d2)) == floor(floor(n/d1)/d2). Both divisors must be nonzero.
func Mul2div2[A ~uint64, B ~uint64, C ~uint64](a A, b B, c C, d1, d2 uint64) (A, bool) {
	// n = n2*2^128 + n1*2^64 + n0
	X, Y := bits.Mul64(uint64(a), uint64(b))
	J, n0 := bits.Mul64(Y, uint64(c))
	L, M := bits.Mul64(X, uint64(c))
	n1, carry := bits.Add64(J, M, 0)
	n2 := L + carry // cannot wrap: the high word of a 64x64 product is <= 2^64-2

	// First pass: q = floor(n/d1), limb by limb. Each Div64 sees a high word
	// already reduced below d1, so it cannot trap.
	q2 := n2 / d1
	r := n2 % d1
	q1, r := bits.Div64(r, n1, d1)
	q0, _ := bits.Div64(r, n0, d1)

	// Second pass: floor(q/d2). A nonzero upper limb after this pass means
	// the true quotient needs more than 64 bits.
	t2 := q2 / d2
	r = q2 % d2
	t1, r := bits.Div64(r, q1, d2)
	t0, _ := bits.Div64(r, q0, d2)
	if t2 != 0 || t1 != 0 {
		return math.MaxUint64, true
	}
	return A(t0), false
}

// DivCeil provides `math.Ceil` semantics using integer division.  The technique
// avoids slower floating point operations as suggested in https://stackoverflow.com/a/2745086.
//
// The method assumes both numbers are positive and does _not_ check for divide-by-zero.
func DivCeil[T constraints.Integer](numerator, denominator T) T {
	return (numerator + denominator - 1) / denominator
}
