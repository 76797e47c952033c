package life

// Neighbors counts live cells in the Moore neighbourhood of (row, col).
// Cells outside the grid count as dead; there is no wraparound.
func Neighbors(g *Grid, row, col int) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := row + dy
			nx := col + dx
			if nx >= 0 && ny >= 0 && nx < g.cols && ny < g.rows {
				sum += int(g.cells[ny*g.cols+nx])
			}
		}
	}
	return sum
}

// nextState applies B3/S23 to one cell.
func nextState(alive uint8, neighbors int) uint8 {
	if alive == 1 {
		if neighbors == 2 || neighbors == 3 {
			return 1
		}
		return 0
	}
	if neighbors == 3 {
		return 1
	}
	return 0
}

// Step computes the next generation into a new grid. g is not modified.
func Step(g *Grid) *Grid {
	next := NewGrid(g.rows, g.cols)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			next.cells[y*g.cols+x] = nextState(g.cells[y*g.cols+x], Neighbors(g, y, x))
		}
	}
	return next
}
