package qr1

import "math"

const (
	penaltyWeight1 = 3
	penaltyWeight2 = 3
	penaltyWeight3 = 40
	penaltyWeight4 = 10
)

// finderSequence is the 1:1:3:1:1 module sequence scored by penalty rule 3.
var finderSequence = [7]bool{b1, b0, b1, b1, b1, b0, b1}

func (m *symbol) penaltyScore() int {
	return m.penalty1() + m.penalty2() + m.penalty3() + m.penalty4()
}

// penalty1 scores maximal runs of five or more same-colored modules in every
// row and column: 3 + (run length - 5) per run.
func (m *symbol) penalty1() int {
	penalty := 0

	score := func(runLength int) {
		if runLength >= 5 {
			penalty += penaltyWeight1 + runLength - 5
		}
	}

	for y := 0; y < symbolSize; y++ {
		runLength := 1

		for x := 1; x < symbolSize; x++ {
			if m.get(x, y) == m.get(x-1, y) {
				runLength++
				continue
			}

			score(runLength)
			runLength = 1
		}

		score(runLength)
	}

	for x := 0; x < symbolSize; x++ {
		runLength := 1

		for y := 1; y < symbolSize; y++ {
			if m.get(x, y) == m.get(x, y-1) {
				runLength++
				continue
			}

			score(runLength)
			runLength = 1
		}

		score(runLength)
	}

	return penalty
}

// penalty2 scores every 2x2 window of same-colored modules. Overlapping
// windows count independently.
func (m *symbol) penalty2() int {
	penalty := 0

	for y := 1; y < symbolSize; y++ {
		for x := 1; x < symbolSize; x++ {
			topLeft := m.get(x-1, y-1)
			above := m.get(x, y-1)
			left := m.get(x-1, y)
			current := m.get(x, y)

			if current == left && current == above && current == topLeft {
				penalty += penaltyWeight2
			}
		}
	}

	return penalty
}

// penalty3 scores occurrences of the 1:1:3:1:1 finder sequence in every row
// and column. Each side of an occurrence contributes 40 when it is the matrix
// edge or holds at least four consecutive white modules.
func (m *symbol) penalty3() int {
	penalty := 0

	row := make([]bool, symbolSize)
	column := make([]bool, symbolSize)

	for i := 0; i < symbolSize; i++ {
		for j := 0; j < symbolSize; j++ {
			row[j] = m.get(j, i)
			column[j] = m.get(i, j)
		}

		penalty += linePenalty3(row)
		penalty += linePenalty3(column)
	}

	return penalty
}

func linePenalty3(line []bool) int {
	penalty := 0

	for i := 0; i+len(finderSequence) <= len(line); i++ {
		match := true

		for j, v := range finderSequence {
			if line[i+j] != v {
				match = false
				break
			}
		}

		if !match {
			continue
		}

		if i == 0 || (i >= 4 && allWhite(line[i-4:i])) {
			penalty += penaltyWeight3
		}

		end := i + len(finderSequence)
		if end == len(line) || (end+4 <= len(line) && allWhite(line[end:end+4])) {
			penalty += penaltyWeight3
		}
	}

	return penalty
}

func allWhite(line []bool) bool {
	for _, v := range line {
		if v {
			return false
		}
	}

	return true
}

// penalty4 scores the deviation of the black module percentage from 50%:
// the percentage is rounded to the nearest integer, bracketed by multiples
// of five, and the closer bracket's distance from 50% sets the cost in units
// of 5%.
func (m *symbol) penalty4() int {
	numModules := symbolSize * symbolSize
	numDarkModules := 0

	for x := 0; x < symbolSize; x++ {
		for y := 0; y < symbolSize; y++ {
			if m.get(x, y) {
				numDarkModules++
			}
		}
	}

	percent := int(math.Floor(float64(numDarkModules)*100/float64(numModules) + 0.5))

	lower := percent - percent%5
	upper := lower + 5

	lowerDistance := lower/5 - 10
	if lowerDistance < 0 {
		lowerDistance = -lowerDistance
	}

	upperDistance := upper/5 - 10
	if upperDistance < 0 {
		upperDistance = -upperDistance
	}

	if upperDistance < lowerDistance {
		return penaltyWeight4 * upperDistance
	}

	return penaltyWeight4 * lowerDistance
}
