// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ModInverse returns the smallest positive x < m with (a·x) mod m == 1.
// The second result is false when no such x exists, i.e. when
// gcd(a, m) != 1 or m <= 1. Negative a is reduced into [0, m) first.
func ModInverse(a, m int) (int, bool) {
	if m <= 1 {
		return 0, false
	}
	g, x, _ := extendedGCD(mod(a, m), m)
	if g != 1 {
		return 0, false
	}
	return mod(x, m), true
}

// extendedGCD returns g = gcd(a, b) and Bézout coefficients x, y with
// a·x + b·y == g. Both inputs must be non-negative.
func extendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

// mod is the mathematical modulo: the result is always in [0, m).
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
