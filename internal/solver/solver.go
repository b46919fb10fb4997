// Package solver counts Sudoku completions for the uniqueness check.
package solver

import "math/bits"

// Grid is a 9x9 Sudoku grid, 0 = blank.
type Grid [9][9]uint8

const fullMask = 0x3FE // bits 1..9 set

// Result reports what the search found.
type Result struct {
	// Count is the number of completions found, capped at the requested
	// limit. The search stops as soon as the cap is reached.
	Count int
	// Solution is the first completion found (valid when Count >= 1).
	Solution Grid
	// Nodes is the number of candidate placements tried.
	Nodes int
}

// CountSolutions searches for completions of g, stopping early once limit
// solutions have been found. limit <= 0 means limit 2, which is all the
// uniqueness check ever needs.
//
// Cells are chosen by minimum remaining candidates, so contradictions are
// found near the root and 9x9 grids resolve in microseconds. A cell with no
// candidates prunes the branch immediately.
func CountSolutions(g Grid, limit int) Result {
	if limit <= 0 {
		limit = 2
	}

	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			b := boxIndex(r, c)
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				// Givens already conflict; nothing can complete this grid.
				return Result{}
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}

	res := Result{}

	var dfs func() bool
	dfs = func() bool {
		r, c, cand, found := mostConstrained(&g, &rows, &cols, &boxes)
		if !found {
			res.Count++
			if res.Count == 1 {
				res.Solution = g
			}
			return res.Count >= limit
		}
		if cand == 0 {
			return false
		}

		b := boxIndex(r, c)
		for cand != 0 {
			bit := cand & (-cand)
			cand &^= bit
			v := uint8(bits.TrailingZeros16(bit))

			res.Nodes++
			g[r][c] = v
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit

			if dfs() {
				return true
			}

			g[r][c] = 0
			rows[r] &^= bit
			cols[c] &^= bit
			boxes[b] &^= bit
		}
		return false
	}
	dfs()

	return res
}

// Solve returns the unique completion of g, or ok=false when g has zero or
// multiple completions.
func Solve(g Grid) (Grid, bool) {
	res := CountSolutions(g, 2)
	if res.Count != 1 {
		return Grid{}, false
	}
	return res.Solution, true
}

// mostConstrained picks the empty cell with the fewest candidates. found is
// false when the grid is complete; a zero candidate mask means a dead end.
func mostConstrained(g *Grid, rows, cols, boxes *[9]uint16) (row, col int, candidates uint16, found bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			cand := uint16(fullMask) &^ (rows[r] | cols[c] | boxes[boxIndex(r, c)])
			n := bits.OnesCount16(cand)
			if !found || n < best {
				row, col, candidates, found = r, c, cand, true
				best = n
				if n == 0 {
					return row, col, candidates, found
				}
			}
		}
	}
	return row, col, candidates, found
}

func boxIndex(r, c int) int {
	return (r/3)*3 + c/3
}
