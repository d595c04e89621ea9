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

// Package streammath multiplies and divides 64-bit stake amounts using only
// native 64-bit operations: no 128-bit multiply or divide, no allocation, no
// recursion, and loops with a fixed iteration count. The shape is dictated
// by restricted VMs that meter instructions per call and provide no
// wide-multiply instruction.
//
// Intermediate values that need up to ~192 bits are held as mixed-radix
// pairs (hi, lo) representing hi*10_000 + lo with lo < 10_000, and all
// reduction happens against a divisor of the form cp*10_000 without ever
// forming that divisor as one number. Division is binary long division, one
// quotient bit per iteration.
package streammath

// BasisPointsPerUnit is the lo-limb radix and the fixed factor of every
// divisor handled by this package.
const BasisPointsPerUnit = 10_000

// Split decomposes x into its mixed-radix pair: x == hi*10_000 + lo,
// lo < 10_000.
func Split(x uint64) (hi, lo uint64) {
	return x / BasisPointsPerUnit, x % BasisPointsPerUnit
}

// addHiMod adds delta into hi modulo cp, reporting whether the sum wrapped
// past cp. hi may arrive unreduced; it leaves reduced. cp must be nonzero.
func addHiMod(hi, delta, cp uint64) (newHi, wrap uint64) {
	if delta == 0 {
		return hi, 0
	}
	if hi >= cp {
		hi %= cp
	}
	space := cp - hi
	if delta >= space {
		return delta - space, 1
	}
	return hi + delta, 0
}

// addBase10kMod adds (addHi, addLo) into the pair (hi, lo) modulo cp*10_000.
// The lo limbs are folded first, carrying at most 1 into hi; the hi limb is
// then reduced against cp in two steps (addend, then carry), each of which
// wraps at most once, so wraps is 0, 1 or 2.
func addBase10kMod(hi, lo, addHi, addLo, cp uint64) (newHi, newLo, wraps uint64) {
	var carry uint64
	lo += addLo
	if lo >= BasisPointsPerUnit {
		lo -= BasisPointsPerUnit
		carry = 1
	}

	hi, wraps = addHiMod(hi, addHi, cp)
	hi, wrap := addHiMod(hi, carry, cp)
	return hi, lo, wraps + wrap
}

// doubleBase10kReduce doubles the pair (hi, lo) modulo cp*10_000 and returns
// the quotient bit shifted out. Doubling a reduced pair exceeds the modulus
// at most once, so the bit is 0 or 1.
func doubleBase10kReduce(hi, lo, cp uint64) (newHi, newLo, bit uint64) {
	newHi, newLo, wraps := addBase10kMod(hi, lo, hi, lo, cp)
	if wraps != 0 {
		return newHi, newLo, 1
	}
	return newHi, newLo, 0
}

// addWithCap returns q+delta, refusing if the sum would exceed cap.
func addWithCap(q, delta, cap uint64) (uint64, bool) {
	if delta == 0 {
		return q, true
	}
	if delta > cap {
		return 0, false
	}
	if q > cap-delta {
		return 0, false
	}
	return q + delta, true
}

// shiftInBitWithCap returns q<<1 | bit, refusing if the result would
// exceed cap. bit must be 0 or 1.
func shiftInBitWithCap(q, bit, cap uint64) (uint64, bool) {
	if bit > cap {
		return 0, false
	}
	if q > (cap-bit)>>1 {
		return 0, false
	}
	return q<<1 | bit, true
}

// MulCap returns min(a*b, cap) using binary shift-and-add, never forming an
// intermediate wider than 64 bits. Once the shifted a can no longer double
// without passing cap it is pinned at cap, which is enough to force
// saturation on the next set bit.
func MulCap(a, b, cap uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	var res uint64
	for b != 0 && res < cap {
		if b&1 != 0 {
			room := cap - res
			if a >= room {
				return cap
			}
			res += a
		}
		if a > cap>>1 {
			a = cap
		} else {
			a <<= 1
		}
		b >>= 1
	}
	if res > cap {
		return cap
	}
	return res
}

// MulDivCapped computes q = floor(a*b / (cp*10_000)) and the exact remainder
// as a mixed-radix pair, equivalent to dividing the 128-bit product a*b by
// cp*10_000 but holding no more than 64 bits of state at a time. It runs
// binary long division over the bits of b, most significant first, in
// exactly 64 iterations.
//
// ok is false when the true quotient would exceed qCap; callers treat that
// as saturation to their own ceiling, never as an error. a == 0 or b == 0
// short-circuits to (0, 0, 0, true). cp must be nonzero (guaranteed by the
// formula-level zero guards); a zero cp reports ok == false.
func MulDivCapped(a, b, cp, qCap uint64) (q, remHi, remLo uint64, ok bool) {
	if a == 0 || b == 0 {
		return 0, 0, 0, true
	}
	if cp == 0 {
		return 0, 0, 0, false
	}

	// a contributes floor(a/10_000)/cp whole multiples of the divisor on
	// every set bit of b, independent of the running remainder. Fold those
	// into a per-bit quotient addend up front and keep only the reduced
	// residue as the remainder addend.
	aHi, aLo := Split(a)
	adderQ := aHi / cp
	adderHi := aHi % cp
	adderLo := aLo

	var rHi, rLo uint64
	for i := 63; i >= 0; i-- {
		var bit uint64
		rHi, rLo, bit = doubleBase10kReduce(rHi, rLo, cp)
		q, ok = shiftInBitWithCap(q, bit, qCap)
		if !ok {
			return 0, 0, 0, false
		}

		if (b>>uint(i))&1 != 0 {
			q, ok = addWithCap(q, adderQ, qCap)
			if !ok {
				return 0, 0, 0, false
			}

			var wraps uint64
			rHi, rLo, wraps = addBase10kMod(rHi, rLo, adderHi, adderLo, cp)
			if wraps != 0 {
				q, ok = addWithCap(q, wraps, qCap)
				if !ok {
					return 0, 0, 0, false
				}
			}
		}
	}
	return q, rHi, rLo, true
}

// RemainderMulDiv computes floor((remHi*10_000 + remLo) * k / (cp*10_000))
// for a remainder pair already reduced below cp*10_000, typically one
// produced by MulDivCapped. It reuses the same bit-serial long division but
// needs no cap: the input is below the divisor, so the result is at most
// k-1 and the quotient accumulation cannot wrap.
func RemainderMulDiv(remHi, remLo, k, cp uint64) uint64 {
	if k == 0 || cp == 0 {
		return 0
	}

	var q, rHi, rLo uint64
	for i := 63; i >= 0; i-- {
		var bit uint64
		rHi, rLo, bit = doubleBase10kReduce(rHi, rLo, cp)
		q = q<<1 | bit
		if (k>>uint(i))&1 != 0 {
			var wraps uint64
			rHi, rLo, wraps = addBase10kMod(rHi, rLo, remHi, remLo, cp)
			q += wraps
		}
	}
	return q
}
