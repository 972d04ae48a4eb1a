// Package gf implements arithmetic in GF(2^8) modulo the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
//
// Addition is XOR. Multiplication is carry-less with reduction on overflow of
// bit 7. The exp/log tables over the generator 0x03 back [Inverse], [Pow],
// [Exp] and [Log]; they are built once and never mutated afterwards.
package gf

import "sync"

const (
	// Polynomial is the full AES reduction polynomial (0x11B).
	Polynomial = 0x11b

	// reduction is Polynomial without the implicit x^8 term.
	reduction = 0x1b

	// Generator is the primitive element used to build the exp/log tables.
	Generator = 0x03

	// Order is the size of the multiplicative group.
	Order = 255
)

var (
	expTable  [Order]byte
	logTable  [256]byte
	tablesRun sync.Once
)

func initTables() {
	tablesRun.Do(func() {
		x := byte(1)
		for i := 0; i < Order; i++ {
			expTable[i] = x
			logTable[x] = byte(i)
			x = Mul(x, Generator)
		}
	})
}

// Add adds two field elements.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul multiplies a and b modulo the AES polynomial.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= reduction
		}
		b >>= 1
	}
	return p
}

// Exp returns Generator^i. The exponent is reduced modulo the group order, so
// negative exponents are accepted.
func Exp(i int) byte {
	initTables()
	i %= Order
	if i < 0 {
		i += Order
	}
	return expTable[i]
}

// Log returns the discrete logarithm of a to the base Generator. Log(0) is
// undefined and reported as 0 with ok set to false.
func Log(a byte) (n int, ok bool) {
	if a == 0 {
		return 0, false
	}
	initTables()
	return int(logTable[a]), true
}

// Inverse returns the multiplicative inverse of a. Inverse(0) is 0, which is
// the convention the S-box construction relies on.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	l, _ := Log(a)
	return Exp(Order - l)
}

// Pow raises a to the n-th power. Pow(0, 0) is 1 and Pow(0, n) is 0 for n > 0.
// Negative n computes powers of the inverse.
func Pow(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	l, _ := Log(a)
	return Exp(l * n % Order)
}
