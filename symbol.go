package qr1

// A symbol is the 21x21 module matrix under construction. Structural cells
// (finder, timing, format information) are drawn first and marked used;
// the data placement pass only writes cells that are still empty.
type symbol struct {
	// Value of each module, true is black.
	module [symbolSize][symbolSize]bool

	// Cells already written. Used cells are write-once as far as the data
	// pass is concerned.
	isUsed [symbolSize][symbolSize]bool
}

func newSymbol() *symbol {
	return &symbol{}
}

func (m *symbol) get(x, y int) bool {
	return m.module[y][x]
}

func (m *symbol) empty(x, y int) bool {
	return !m.isUsed[y][x]
}

func (m *symbol) set(x, y int, v bool) {
	m.module[y][x] = v
	m.isUsed[y][x] = true
}

func (m *symbol) set2dPattern(x, y int, v [][]bool) {
	for j, row := range v {
		for i, value := range row {
			m.set(x+i, y+j, value)
		}
	}
}

func (m *symbol) numEmptyModules() int {
	var count int

	for y := 0; y < symbolSize; y++ {
		for x := 0; x < symbolSize; x++ {
			if !m.isUsed[y][x] {
				count++
			}
		}
	}

	return count
}

// bitmap returns a deep copy of the module values: the returned rows never
// alias the symbol's storage.
func (m *symbol) bitmap() [][]bool {
	bitmap := make([][]bool, symbolSize)

	for y := range m.module {
		row := make([]bool, symbolSize)
		copy(row, m.module[y][:])
		bitmap[y] = row
	}

	return bitmap
}
