package qr1

import (
	"fmt"

	"github.com/qrwire/qr1/internal/bitset"
)

type direction uint8

const (
	up direction = iota
	down
)

type regularSymbol struct {
	mask int
	data *bitset.Bitset

	symbol *symbol
}

const (
	b0 = false
	b1 = true
)

var (
	finderPattern = [][]bool{
		{b1, b1, b1, b1, b1, b1, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b1, b1, b1, b0, b1},
		{b1, b0, b0, b0, b0, b0, b1},
		{b1, b1, b1, b1, b1, b1, b1},
	}

	finderPatternHorizontalBorder = [][]bool{
		{b0, b0, b0, b0, b0, b0, b0, b0},
	}

	finderPatternVerticalBorder = [][]bool{
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
		{b0},
	}
)

// buildRegularSymbol renders one mask candidate: the fixed structural
// patterns followed by the masked data bits.
func buildRegularSymbol(data *bitset.Bitset, mask int) (*symbol, error) {
	m := &regularSymbol{
		mask: mask,
		data: data,

		symbol: newSymbol(),
	}

	m.addFinderPatterns()
	m.addTimingPatterns()
	m.addFormatInfo()

	if err := m.addData(); err != nil {
		return nil, err
	}

	return m.symbol, nil
}

func (m *regularSymbol) addFinderPatterns() {
	fpSize := finderPatternSize
	fp := finderPattern
	fpHBorder := finderPatternHorizontalBorder
	fpVBorder := finderPatternVerticalBorder

	// Top left.
	m.symbol.set2dPattern(0, 0, fp)
	m.symbol.set2dPattern(0, fpSize, fpHBorder)
	m.symbol.set2dPattern(fpSize, 0, fpVBorder)

	// Bottom left.
	m.symbol.set2dPattern(0, symbolSize-fpSize, fp)
	m.symbol.set2dPattern(0, symbolSize-fpSize-1, fpHBorder)
	m.symbol.set2dPattern(fpSize, symbolSize-fpSize-1, fpVBorder)

	// Top right.
	m.symbol.set2dPattern(symbolSize-fpSize, 0, fp)
	m.symbol.set2dPattern(symbolSize-fpSize-1, fpSize, fpHBorder)
	m.symbol.set2dPattern(symbolSize-fpSize-1, 0, fpVBorder)
}

func (m *regularSymbol) addTimingPatterns() {
	value := true

	for i := finderPatternSize + 1; i < symbolSize-finderPatternSize; i++ {
		m.symbol.set(i, finderPatternSize-1, value)
		m.symbol.set(finderPatternSize-1, i, value)

		value = !value
	}
}

// addFormatInfo places the 15-bit format word in two split runs beside the
// top left finder pattern, mirrored along the bottom left and top right
// edges, plus the fixed dark module above the bottom left finder pattern.
func (m *regularSymbol) addFormatInfo() {
	fpSize := finderPatternSize
	l := formatInfoLengthBits - 1
	f := formatInfo(m.mask)

	// Bits 0-7, right side of the top timing row.
	for i := 0; i <= 7; i++ {
		m.symbol.set(symbolSize-i-1, fpSize+1, f.At(l-i))
	}

	// Bits 0-5, top of the left timing column.
	for i := 0; i <= 5; i++ {
		m.symbol.set(fpSize+1, i, f.At(l-i))
	}

	// Bits 6-8, the corner cells beside the top left finder pattern.
	m.symbol.set(fpSize+1, fpSize, f.At(l-6))
	m.symbol.set(fpSize+1, fpSize+1, f.At(l-7))
	m.symbol.set(fpSize, fpSize+1, f.At(l-8))

	// Bits 9-14, left side of the top timing row.
	for i := 9; i <= 14; i++ {
		m.symbol.set(14-i, fpSize+1, f.At(l-i))
	}

	// Bits 8-14, bottom of the left timing column.
	for i := 8; i <= 14; i++ {
		m.symbol.set(fpSize+1, symbolSize-fpSize+i-8, f.At(l-i))
	}

	// Always-black module above the bottom left finder pattern.
	m.symbol.set(fpSize+1, symbolSize-fpSize-1, true)
}

// maskedValue evaluates mask pattern m.mask at column x, row y.
func (m *regularSymbol) maskedValue(x, y int) bool {
	switch m.mask {
	case 0:
		return (y+x)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (y+x)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return (y*x)%2+(y*x)%3 == 0
	case 6:
		return ((y*x)%2+(y*x)%3)%2 == 0
	case 7:
		return ((y+x)%2+(y*x)%3)%2 == 0
	}

	return false
}

// addData traverses the matrix in a zigzag of two column panes from the
// right edge leftwards, alternating the vertical direction at each pane
// boundary and skipping the vertical timing column. Every non-reserved cell
// consumes one bit, XORed against the mask pattern.
func (m *regularSymbol) addData() error {
	xOffset := 1
	dir := up

	x := symbolSize - 2
	y := symbolSize - 1

	for i := 0; i < m.data.Len(); i++ {
		// != is equivalent to XOR.
		m.symbol.set(x+xOffset, y, m.maskedValue(x+xOffset, y) != m.data.At(i))

		if i == m.data.Len()-1 {
			break
		}

		// Find the next empty cell.
		for {
			if xOffset == 1 {
				xOffset = 0
			} else {
				xOffset = 1

				if dir == up {
					if y > 0 {
						y--
					} else {
						dir = down
						x -= 2
					}
				} else {
					if y < symbolSize-1 {
						y++
					} else {
						dir = up
						x -= 2
					}
				}
			}

			// Skip over the vertical timing pattern entirely.
			if x == finderPatternSize-2 {
				x--
			}

			if x < 0 {
				return fmt.Errorf("bug: ran out of cells with %d bits unplaced",
					m.data.Len()-i-1)
			}

			if m.symbol.empty(x+xOffset, y) {
				break
			}
		}
	}

	return nil
}
