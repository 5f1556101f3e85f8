// Package gf256 implements arithmetic over the Galois field GF(2^8) used by
// QR code error correction: primitive polynomial 0x11d, generator 2.
//
// The exponent and logarithm tables are built once at package initialisation
// and never mutated, so all operations are safe for concurrent use.
package gf256

import "errors"

var (
	ErrDivisionByZero = errors.New("gf256: division by zero")
	ErrInverseOfZero  = errors.New("gf256: inverse of zero")
)

// x^8 + x^4 + x^3 + x^2 + 1.
const primitivePolynomial = 0x11d

var (
	expTable [256]byte
	logTable [256]byte
)

func init() {
	x := 1

	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = byte(i)

		// Multiply by the generator, reducing on overflow of bit 8.
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePolynomial
		}
	}

	// 2^255 == 2^0, so Inverse(1) can index position 255 directly.
	expTable[255] = expTable[0]
}

// Exp returns 2^e.
func Exp(e int) byte {
	return expTable[e%255]
}

// Log returns log2(x). The logarithm of zero is undefined; zero is a caller
// contract violation, not a checked error.
func Log(x byte) int {
	return int(logTable[x])
}

// Add returns x+y. The field has characteristic 2, so addition is XOR.
func Add(x, y byte) byte {
	return x ^ y
}

// Sub returns x-y, which in GF(2^8) is identical to addition.
func Sub(x, y byte) byte {
	return x ^ y
}

// Mul returns x*y.
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}

	return expTable[(int(logTable[x])+int(logTable[y]))%255]
}

// Div returns x/y, or ErrDivisionByZero when y is zero.
func Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}

	if x == 0 {
		return 0, nil
	}

	return expTable[(int(logTable[x])+255-int(logTable[y]))%255], nil
}

// Pow returns x^e.
func Pow(x byte, e int) byte {
	return expTable[(int(logTable[x])*e)%255]
}

// Inverse returns the multiplicative inverse of x, or ErrInverseOfZero when x
// is zero.
func Inverse(x byte) (byte, error) {
	if x == 0 {
		return 0, ErrInverseOfZero
	}

	return expTable[255-int(logTable[x])], nil
}
