// Package validator holds the per-type puzzle checkers. Each checker is
// stateless: it takes one puzzle and returns itemized findings, never an
// error, so a bad puzzle can never take down a batch.
package validator

import (
	"fmt"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/solver"
)

// Sudoku validates generated 9x9 Sudoku puzzles: structure, solution
// integrity, clue/solution agreement, clue-count bounds and uniqueness.
type Sudoku struct {
	cfg domain.Config
}

func NewSudoku(cfg domain.Config) *Sudoku {
	return &Sudoku{cfg: cfg}
}

var _ ports.Validator = (*Sudoku)(nil)

func (v *Sudoku) Type() domain.PuzzleType { return domain.TypeSudoku }

// Validate runs the check sequence. A structural failure stops further
// checks for the puzzle; every other finding is recorded and the sequence
// continues.
func (v *Sudoku) Validate(p domain.Puzzle) []domain.Issue {
	issues := []domain.Issue{}

	if p.Sudoku == nil {
		return append(issues, domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			Description: "record is not a sudoku puzzle",
		})
	}
	sp := *p.Sudoku

	clues, sol, structIssue := v.structural(sp)
	if structIssue != nil {
		return append(issues, *structIssue)
	}

	issues = append(issues, v.checkSolutionUnits(sp.ID, sol)...)
	issues = append(issues, v.checkConsistency(sp.ID, clues, sol)...)
	if is := v.checkClueBounds(sp); is != nil {
		issues = append(issues, *is)
	}
	issues = append(issues, v.checkEmptyUnits(sp.ID, clues)...)
	issues = append(issues, v.checkUniqueness(sp.ID, clues, sol)...)

	return issues
}

// structural verifies shape and value ranges and narrows to fixed 9x9 grids.
// Any violation yields a single structural error and skips the rest.
func (v *Sudoku) structural(sp domain.SudokuPuzzle) (clues, sol solver.Grid, issue *domain.Issue) {
	fail := func(loc, desc string) (solver.Grid, solver.Grid, *domain.Issue) {
		return solver.Grid{}, solver.Grid{}, &domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			PuzzleID:    sp.ID,
			Location:    loc,
			Description: desc,
		}
	}

	if !sp.Difficulty.Valid() {
		return fail("difficulty", fmt.Sprintf("unrecognized difficulty %q", sp.Difficulty))
	}

	grids := []struct {
		name string
		data [][]int
		dst  *solver.Grid
		min  int
	}{
		{"grid", sp.Grid, &clues, 0},
		{"solution", sp.Solution, &sol, 1},
	}
	for _, g := range grids {
		if len(g.data) != 9 {
			return fail(g.name, fmt.Sprintf("%s has %d rows, want 9", g.name, len(g.data)))
		}
		for r, row := range g.data {
			if len(row) != 9 {
				return fail(fmt.Sprintf("%s row %d", g.name, r+1),
					fmt.Sprintf("%s row %d has %d cells, want 9", g.name, r+1, len(row)))
			}
			for c, val := range row {
				if val < g.min || val > 9 {
					return fail(fmt.Sprintf("cell (%d,%d)", r+1, c+1),
						fmt.Sprintf("%s value %d out of range [%d,9]", g.name, val, g.min))
				}
				g.dst[r][c] = uint8(val)
			}
		}
	}

	return clues, sol, nil
}

// checkSolutionUnits verifies every row, column and 3x3 box of the solution
// is a permutation of 1-9. One error per offending unit, citing the first
// repeated value.
func (v *Sudoku) checkSolutionUnits(id string, sol solver.Grid) []domain.Issue {
	var issues []domain.Issue

	unit := func(loc string, cells [9]uint8) {
		var seen [10]bool
		for _, val := range cells {
			if seen[val] {
				issues = append(issues, domain.Issue{
					Severity:    domain.SeverityError,
					Category:    domain.CategoryContent,
					PuzzleID:    id,
					Location:    loc,
					Description: fmt.Sprintf("solution %s contains value %d more than once", loc, val),
				})
				return
			}
			seen[val] = true
		}
	}

	for r := 0; r < 9; r++ {
		unit(fmt.Sprintf("row %d", r+1), sol[r])
	}
	for c := 0; c < 9; c++ {
		var col [9]uint8
		for r := 0; r < 9; r++ {
			col[r] = sol[r][c]
		}
		unit(fmt.Sprintf("column %d", c+1), col)
	}
	for b := 0; b < 9; b++ {
		var box [9]uint8
		br, bc := (b/3)*3, (b%3)*3
		for i := 0; i < 9; i++ {
			box[i] = sol[br+i/3][bc+i%3]
		}
		unit(fmt.Sprintf("box %d", b+1), box)
	}

	return issues
}

// checkConsistency requires every clue to agree with the solution cell at
// the same coordinates.
func (v *Sudoku) checkConsistency(id string, clues, sol solver.Grid) []domain.Issue {
	var issues []domain.Issue
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if clues[r][c] != 0 && clues[r][c] != sol[r][c] {
				issues = append(issues, domain.Issue{
					Severity: domain.SeverityError,
					Category: domain.CategoryContent,
					PuzzleID: id,
					Location: fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					Description: fmt.Sprintf("clue %d disagrees with solution value %d",
						clues[r][c], sol[r][c]),
				})
			}
		}
	}
	return issues
}

func (v *Sudoku) checkClueBounds(sp domain.SudokuPuzzle) *domain.Issue {
	rng, ok := v.cfg.Sudoku.ClueRanges[sp.Difficulty]
	if !ok {
		return nil
	}

	n := sp.ClueCount()
	if rng.Contains(n) {
		return nil
	}

	verb := "add"
	if n > rng.Max {
		verb = "remove"
	}
	return &domain.Issue{
		Severity: domain.SeverityWarning,
		Category: domain.CategoryBounds,
		PuzzleID: sp.ID,
		Description: fmt.Sprintf("%d clues outside %s range [%d,%d]",
			n, sp.Difficulty, rng.Min, rng.Max),
		Recommendation: fmt.Sprintf("%s clues toward the target of %d", verb, rng.Midpoint()),
	}
}

// checkEmptyUnits flags clue rows and columns with no givens at all, an
// unsolvable-ambiguity risk.
func (v *Sudoku) checkEmptyUnits(id string, clues solver.Grid) []domain.Issue {
	var issues []domain.Issue

	empty := func(loc string) domain.Issue {
		return domain.Issue{
			Severity:       domain.SeverityError,
			Category:       domain.CategoryContent,
			PuzzleID:       id,
			Location:       loc,
			Description:    fmt.Sprintf("%s of the clue grid has no givens", loc),
			Recommendation: "add at least one clue to the unit",
		}
	}

	for r := 0; r < 9; r++ {
		n := 0
		for c := 0; c < 9; c++ {
			if clues[r][c] != 0 {
				n++
			}
		}
		if n == 0 {
			issues = append(issues, empty(fmt.Sprintf("row %d", r+1)))
		}
	}
	for c := 0; c < 9; c++ {
		n := 0
		for r := 0; r < 9; r++ {
			if clues[r][c] != 0 {
				n++
			}
		}
		if n == 0 {
			issues = append(issues, empty(fmt.Sprintf("column %d", c+1)))
		}
	}

	return issues
}

// checkUniqueness runs the solver over the clue grid. Zero or multiple
// completions is always an error, regardless of strict mode; a unique
// completion must match the provided solution exactly.
func (v *Sudoku) checkUniqueness(id string, clues, sol solver.Grid) []domain.Issue {
	res := solver.CountSolutions(clues, 2)

	switch {
	case res.Count == 0:
		return []domain.Issue{{
			Severity:    domain.SeverityError,
			Category:    domain.CategorySolvability,
			PuzzleID:    id,
			Description: "puzzle has no solution",
		}}
	case res.Count > 1:
		return []domain.Issue{{
			Severity:       domain.SeverityError,
			Category:       domain.CategorySolvability,
			PuzzleID:       id,
			Description:    "puzzle has multiple solutions",
			Recommendation: "add clues until the completion is unique",
		}}
	case res.Solution != sol:
		return []domain.Issue{{
			Severity:    domain.SeverityError,
			Category:    domain.CategorySolvability,
			PuzzleID:    id,
			Description: "unique completion does not match the provided solution",
		}}
	}
	return nil
}
