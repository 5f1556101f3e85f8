// Package reedsolomon implements Reed-Solomon error correction encoding over
// GF(2^8) as used by QR codes.
package reedsolomon

import (
	"github.com/qrwire/qr1/internal/gf256"
)

// An Encoder appends error correction codewords to messages. The generator
// polynomial depends only on the codeword count, so it is computed once at
// construction and shared read-only by every Encode call.
type Encoder struct {
	numECBytes int
	generator  []byte
}

func NewEncoder(numECBytes int) *Encoder {
	return &Encoder{
		numECBytes: numECBytes,
		generator:  Generator(numECBytes),
	}
}

// Encode returns message followed by the error correction codewords, i.e. the
// remainder of message*x^n divided by the generator polynomial. The result
// has len(message)+n bytes and is deterministic for identical inputs.
func (e *Encoder) Encode(message []byte) []byte {
	dividend := make([]byte, len(message)+e.numECBytes)
	copy(dividend, message)

	remainder := polyDivide(dividend, e.generator)

	result := make([]byte, 0, len(message)+e.numECBytes)
	result = append(result, message...)
	result = append(result, remainder...)

	return result
}

// Encode is a convenience wrapper for one-shot encoding.
func Encode(message []byte, numECBytes int) []byte {
	return NewEncoder(numECBytes).Encode(message)
}

// Generator returns the generator polynomial of degree n,
//
//	(x - 2^0)(x - 2^1) ... (x - 2^(n-1))
//
// as n+1 coefficients, most significant term first.
func Generator(n int) []byte {
	generator := []byte{1}

	for i := 0; i < n; i++ {
		generator = polyMultiply(generator, []byte{1, gf256.Exp(i)})
	}

	return generator
}

// polyMultiply convolves two coefficient sequences over the field, producing
// a polynomial of degree deg(a)+deg(b).
func polyMultiply(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b)-1)

	for i := range a {
		for j := range b {
			result[i+j] = gf256.Add(result[i+j], gf256.Mul(a[i], b[j]))
		}
	}

	return result
}

// polyDivide performs synthetic long division of dividend by divisor: for
// each leading position with a nonzero coefficient, coefficient*divisor is
// subtracted in place at that alignment. The returned remainder is the low
// len(divisor)-1 positions of the buffer.
//
// The divisor's leading coefficient is never used for reduction; generator
// polynomials are monic by construction.
func polyDivide(dividend, divisor []byte) []byte {
	buf := make([]byte, len(dividend))
	copy(buf, dividend)

	for i := 0; i < len(dividend)-(len(divisor)-1); i++ {
		c := buf[i]
		if c == 0 {
			continue
		}

		for j := 1; j < len(divisor); j++ {
			buf[i+j] = gf256.Sub(buf[i+j], gf256.Mul(divisor[j], c))
		}
	}

	return buf[len(buf)-(len(divisor)-1):]
}
