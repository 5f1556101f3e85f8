// Package qr1 encodes short strings as QR code version 1 symbols at error
// correction level L: a fixed 21x21 module matrix built from the numeric or
// alphanumeric mode bit stream, Reed-Solomon error correction over GF(2^8)
// and penalty-driven mask selection.
//
// Version and error correction level are constants of the design, not
// runtime parameters. Input is restricted to digits, uppercase A-Z, space
// and $ % * + - . / :.
package qr1

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/qrwire/qr1/internal/bitset"
)

type QRCode struct {
	// Original content encoded.
	content string

	// User settable drawing options, consumed by the render methods.
	ForegroundColor color.Color
	BackgroundColor color.Color

	// Quiet zone width in modules around rendered output. The Bitmap matrix
	// itself never includes it.
	Margin int

	// Base 64 output.
	Base64 bool

	// Logger receives per-stage diagnostics (composed bit stream, error
	// correction codewords, per-mask penalties) when set.
	Logger logrus.FieldLogger

	data *bitset.Bitset

	symbol  *symbol
	mask    int
	penalty int
}

// New validates and composes content into the padded 152-bit data stream.
// It returns ErrInvalidCharacter for content outside the alphanumeric set
// and ErrCapacityExceeded for content too long for a version 1 symbol.
func New(content string) (*QRCode, error) {
	data, err := composeBitStream(content)
	if err != nil {
		return nil, err
	}

	q := &QRCode{
		content: content,

		ForegroundColor: color.Black,
		BackgroundColor: color.White,

		Margin: quietZoneSize,

		data: data,
	}

	return q, nil
}

// Encode is the one-call form: it returns the finished 21x21 module matrix
// for content, true meaning black.
func Encode(content string) ([][]bool, error) {
	q, err := New(content)
	if err != nil {
		return nil, err
	}

	return q.Bitmap()
}

// Bitmap builds the symbol if necessary and returns a copy of the winning
// 21x21 module matrix, true meaning black.
func (q *QRCode) Bitmap() ([][]bool, error) {
	if err := q.build(); err != nil {
		return nil, err
	}

	return q.symbol.bitmap(), nil
}

// Mask returns the selected mask pattern index.
func (q *QRCode) Mask() (int, error) {
	if err := q.build(); err != nil {
		return 0, err
	}

	return q.mask, nil
}

// build runs error correction and the mask trials. Composition already
// happened in New, so the codeword stream is derived once and reused across
// all eight trials. The result is cached; build is idempotent.
func (q *QRCode) build() error {
	if q.symbol != nil {
		return nil
	}

	codewords := ecEncoder.Encode(q.data.Bytes())

	stream := bitset.New()
	stream.AppendBytes(codewords)

	if q.Logger != nil {
		q.Logger.WithFields(logrus.Fields{
			"content":   q.content,
			"data_bits": q.data.String(),
			"codewords": fmt.Sprintf("%v", codewords),
		}).Debug("composed bit stream")
	}

	var best *symbol

	bestMask := 0
	bestPenalty := 0

	for mask := 0; mask < numMasks; mask++ {
		s, err := buildRegularSymbol(stream, mask)
		if err != nil {
			return err
		}

		if n := s.numEmptyModules(); n != 0 {
			return fmt.Errorf("bug: %d empty modules after mask %d placement", n, mask)
		}

		p := s.penaltyScore()

		if q.Logger != nil {
			q.Logger.WithFields(logrus.Fields{
				"mask":     mask,
				"penalty":  p,
				"penalty1": s.penalty1(),
				"penalty2": s.penalty2(),
				"penalty3": s.penalty3(),
				"penalty4": s.penalty4(),
			}).Debug("mask candidate")
		}

		// Strict < keeps the first-seen lowest index on ties.
		if best == nil || p < bestPenalty {
			best = s
			bestMask = mask
			bestPenalty = p
		}
	}

	q.symbol = best
	q.mask = bestMask
	q.penalty = bestPenalty

	if q.Logger != nil {
		q.Logger.WithFields(logrus.Fields{
			"mask":    q.mask,
			"penalty": q.penalty,
		}).Debug("selected mask")
	}

	return nil
}
