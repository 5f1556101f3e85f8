package qr1

import (
	"github.com/qrwire/qr1/internal/bitset"
	"github.com/qrwire/qr1/internal/reedsolomon"
)

// The pipeline is pinned to QR version 1, error correction level L. None of
// these are runtime parameters.
const (
	qrVersion  = 1
	symbolSize = 4*qrVersion + 17 // 21

	numDataCodewords = 19
	numDataBits      = numDataCodewords * 8 // 152
	numECCodewords   = 7
	numMasks         = 8

	finderPatternSize    = 7
	formatInfoLengthBits = 15
	quietZoneSize        = 4
)

// The 15-bit format words for level L, indexed by mask: the five information
// bits (level indicator 01, mask index) followed by their BCH(15,5) remainder,
// XORed with the fixed format mask 0x5412.
var formatBitSequence = [numMasks]uint32{
	0x77c4, 0x72f3, 0x7daa, 0x789d,
	0x662f, 0x6318, 0x6c41, 0x6976,
}

func formatInfo(mask int) *bitset.Bitset {
	f := bitset.New()
	f.AppendUint32(formatBitSequence[mask], formatInfoLengthBits)

	return f
}

// The generator polynomial depends only on the fixed error correction
// codeword count, so one encoder serves every call.
var ecEncoder = reedsolomon.NewEncoder(numECCodewords)
