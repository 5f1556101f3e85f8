package qr1

import (
	"errors"
	"fmt"

	"github.com/qrwire/qr1/internal/bitset"
)

var (
	// ErrInvalidCharacter is returned when the content contains a character
	// outside the alphanumeric set: digits, uppercase A-Z, space and
	// $ % * + - . / :.
	ErrInvalidCharacter = errors.New("qr1: character outside the alphanumeric set")

	// ErrCapacityExceeded is returned when the mode indicator, character
	// count and packed data alone exceed the 152 data bits of a version 1,
	// level L symbol.
	ErrCapacityExceeded = errors.New("qr1: content exceeds version 1 capacity")
)

type dataMode uint8

const (
	dataModeNumeric dataMode = iota
	dataModeAlphanumeric
)

// Mode indicator bit patterns and character count indicator widths. The
// widths are specific to version 1.
const (
	numericModeIndicator      = 0x1 // 0001
	alphanumericModeIndicator = 0x2 // 0010

	numModeIndicatorBits         = 4
	numNumericCharCountBits      = 10
	numAlphanumericCharCountBits = 9
)

// classifyDataMode selects numeric mode when every character is a digit and
// alphanumeric mode otherwise. The empty string is vacuously numeric.
func classifyDataMode(content string) dataMode {
	for i := 0; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return dataModeAlphanumeric
		}
	}

	return dataModeNumeric
}

// encodedLength returns the bit length of mode indicator, character count
// indicator and packed data for n characters in the given mode.
func encodedLength(mode dataMode, n int) int {
	switch mode {
	case dataModeNumeric:
		length := numModeIndicatorBits + numNumericCharCountBits
		length += 10 * (n / 3)

		if n%3 != 0 {
			length += 1 + 3*(n%3)
		}

		return length
	default:
		length := numModeIndicatorBits + numAlphanumericCharCountBits
		length += 11 * (n / 2)
		length += 6 * (n % 2)

		return length
	}
}

// composeBitStream validates content and packs it into the padded 152-bit
// data stream: mode indicator, character count indicator, packed characters,
// terminator, byte alignment and alternating pad codewords.
func composeBitStream(content string) (*bitset.Bitset, error) {
	for i := 0; i < len(content); i++ {
		if _, ok := alphanumericCharacterValue(content[i]); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, content[i])
		}
	}

	mode := classifyDataMode(content)

	if encodedLength(mode, len(content)) > numDataBits {
		return nil, fmt.Errorf("%w: %d characters", ErrCapacityExceeded, len(content))
	}

	data := bitset.New()

	switch mode {
	case dataModeNumeric:
		data.AppendUint32(numericModeIndicator, numModeIndicatorBits)
		data.AppendUint32(uint32(len(content)), numNumericCharCountBits)
		appendNumericData(data, content)
	case dataModeAlphanumeric:
		data.AppendUint32(alphanumericModeIndicator, numModeIndicatorBits)
		data.AppendUint32(uint32(len(content)), numAlphanumericCharCountBits)
		appendAlphanumericData(data, content)
	}

	addPadding(data)

	return data, nil
}

// appendNumericData packs digits in runs of three as 10-bit values; a
// trailing run of one or two digits uses 4 or 7 bits.
func appendNumericData(data *bitset.Bitset, content string) {
	for i := 0; i < len(content); i += 3 {
		charsRemaining := len(content) - i

		var value uint32

		bitsUsed := 1

		for j := 0; j < charsRemaining && j < 3; j++ {
			value *= 10
			value += uint32(content[i+j] - '0')
			bitsUsed += 3
		}

		data.AppendUint32(value, bitsUsed)
	}
}

// appendAlphanumericData packs characters in pairs as 11-bit values
// (first*45 + second); a trailing single character uses 6 bits.
func appendAlphanumericData(data *bitset.Bitset, content string) {
	for i := 0; i < len(content); i += 2 {
		charsRemaining := len(content) - i

		var value uint32

		for j := 0; j < charsRemaining && j < 2; j++ {
			v, _ := alphanumericCharacterValue(content[i+j])
			value = value*45 + v
		}

		bitsUsed := 6

		if charsRemaining > 1 {
			bitsUsed = 11
		}

		data.AppendUint32(value, bitsUsed)
	}
}

// addPadding extends data to exactly 152 bits: up to 4 terminator bits, zero
// bits to the next codeword boundary, then alternating pad codewords. Every
// step is bounded by the remaining capacity.
func addPadding(data *bitset.Bitset) {
	numTerminatorBits := numDataBits - data.Len()
	if numTerminatorBits > 4 {
		numTerminatorBits = 4
	}

	data.AppendNumBools(numTerminatorBits, false)

	if data.Len()%8 != 0 {
		numAlignmentBits := 8 - data.Len()%8
		if numAlignmentBits > numDataBits-data.Len() {
			numAlignmentBits = numDataBits - data.Len()
		}

		data.AppendNumBools(numAlignmentBits, false)
	}

	// Pad codewords 0b11101100 and 0b00010001, inserted alternately.
	padding := [2]byte{0xec, 0x11}

	for i := 0; data.Len() < numDataBits; i = 1 - i {
		data.AppendByte(padding[i], 8)
	}
}

// alphanumericCharacterValue returns the character's index in the
// alphanumeric set, or false for characters outside it.
func alphanumericCharacterValue(v byte) (uint32, bool) {
	c := uint32(v)

	switch {
	case c >= '0' && c <= '9':
		// 0-9 encoded as 0-9.
		return c - '0', true
	case c >= 'A' && c <= 'Z':
		// A-Z encoded as 10-35.
		return c - 'A' + 10, true
	case c == ' ':
		return 36, true
	case c == '$':
		return 37, true
	case c == '%':
		return 38, true
	case c == '*':
		return 39, true
	case c == '+':
		return 40, true
	case c == '-':
		return 41, true
	case c == '.':
		return 42, true
	case c == '/':
		return 43, true
	case c == ':':
		return 44, true
	default:
		return 0, false
	}
}
