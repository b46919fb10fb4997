package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

const blockCell = '#'
const openCell = '.'

// Crossword validates crossword layouts against their clue list and filled
// solution: numbering, answer runs, symmetry and connectivity.
type Crossword struct{}

func NewCrossword() *Crossword { return &Crossword{} }

var _ ports.Validator = (*Crossword)(nil)

func (v *Crossword) Type() domain.PuzzleType { return domain.TypeCrossword }

func (v *Crossword) Validate(p domain.Puzzle) []domain.Issue {
	issues := []domain.Issue{}

	if p.Crossword == nil {
		return append(issues, domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			Description: "record is not a crossword puzzle",
		})
	}
	cp := *p.Crossword

	if is := v.structural(cp); is != nil {
		return append(issues, *is)
	}

	if is := v.checkSymmetry(cp); is != nil {
		issues = append(issues, *is)
	}
	issues = append(issues, v.checkNumbering(cp)...)
	issues = append(issues, v.checkAnswers(cp)...)
	issues = append(issues, v.checkConnectivity(cp)...)
	issues = append(issues, v.checkDuplicateAnswers(cp)...)

	return issues
}

func (v *Crossword) structural(cp domain.CrosswordPuzzle) *domain.Issue {
	fail := func(loc, desc string) *domain.Issue {
		return &domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			PuzzleID:    cp.ID,
			Location:    loc,
			Description: desc,
		}
	}

	if !cp.Difficulty.Valid() {
		return fail("difficulty", fmt.Sprintf("unrecognized difficulty %q", cp.Difficulty))
	}
	if cp.Rows <= 0 || cp.Cols <= 0 {
		return fail("", fmt.Sprintf("grid dimensions %dx%d are not positive", cp.Rows, cp.Cols))
	}
	if len(cp.Grid) != cp.Rows {
		return fail("grid", fmt.Sprintf("grid has %d rows, want %d", len(cp.Grid), cp.Rows))
	}
	if len(cp.Solution) != cp.Rows {
		return fail("solution", fmt.Sprintf("solution has %d rows, want %d", len(cp.Solution), cp.Rows))
	}

	for r := 0; r < cp.Rows; r++ {
		if len(cp.Grid[r]) != cp.Cols {
			return fail(fmt.Sprintf("grid row %d", r+1),
				fmt.Sprintf("row has %d cells, want %d", len(cp.Grid[r]), cp.Cols))
		}
		if len(cp.Solution[r]) != cp.Cols {
			return fail(fmt.Sprintf("solution row %d", r+1),
				fmt.Sprintf("row has %d cells, want %d", len(cp.Solution[r]), cp.Cols))
		}
		for c := 0; c < cp.Cols; c++ {
			g, s := cp.Grid[r][c], cp.Solution[r][c]
			if g != blockCell && g != openCell {
				return fail(fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					fmt.Sprintf("grid cell %q is neither %q nor %q", g, blockCell, openCell))
			}
			if s != blockCell && (s < 'A' || s > 'Z') {
				return fail(fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					fmt.Sprintf("solution cell %q is neither a block nor A-Z", s))
			}
			if (g == blockCell) != (s == blockCell) {
				return fail(fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					"grid and solution disagree on block placement")
			}
		}
	}

	return nil
}

// checkSymmetry warns (never errs) when the block pattern lacks the standard
// 180-degree rotational symmetry.
func (v *Crossword) checkSymmetry(cp domain.CrosswordPuzzle) *domain.Issue {
	for r := 0; r < cp.Rows; r++ {
		for c := 0; c < cp.Cols; c++ {
			mirror := cp.Grid[cp.Rows-1-r][cp.Cols-1-c] == blockCell
			if (cp.Grid[r][c] == blockCell) != mirror {
				return &domain.Issue{
					Severity: domain.SeverityWarning,
					Category: domain.CategoryContent,
					PuzzleID: cp.ID,
					Location: fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					Description: "block pattern is not 180-degree rotationally symmetric",
					Recommendation: "mirror every block through the grid center",
				}
			}
		}
	}
	return nil
}

// startsOfWords assigns clue numbers the standard way: scan row-major and
// number each cell that begins an across or down run of length >= 2.
func (v *Crossword) startsOfWords(cp domain.CrosswordPuzzle) map[int]map[domain.ClueDirection][2]int {
	block := func(r, c int) bool {
		return r < 0 || c < 0 || r >= cp.Rows || c >= cp.Cols || cp.Grid[r][c] == blockCell
	}

	starts := map[int]map[domain.ClueDirection][2]int{}
	num := 0
	for r := 0; r < cp.Rows; r++ {
		for c := 0; c < cp.Cols; c++ {
			if block(r, c) {
				continue
			}
			across := block(r, c-1) && !block(r, c+1)
			down := block(r-1, c) && !block(r+1, c)
			if !across && !down {
				continue
			}
			num++
			starts[num] = map[domain.ClueDirection][2]int{}
			if across {
				starts[num][domain.Across] = [2]int{r, c}
			}
			if down {
				starts[num][domain.Down] = [2]int{r, c}
			}
		}
	}
	return starts
}

// checkNumbering requires the declared clue list and the computed start
// cells to match one-to-one.
func (v *Crossword) checkNumbering(cp domain.CrosswordPuzzle) []domain.Issue {
	var issues []domain.Issue
	starts := v.startsOfWords(cp)

	claimed := map[int]map[domain.ClueDirection]bool{}
	for _, cl := range cp.Clues {
		pos, ok := starts[cl.Number][cl.Direction]
		if !ok {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Category: domain.CategoryContent,
				PuzzleID: cp.ID,
				Location: fmt.Sprintf("clue %d %s", cl.Number, cl.Direction),
				Description: "clue number does not correspond to a start-of-word cell",
			})
			continue
		}
		if pos != [2]int{cl.Row, cl.Col} {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Category: domain.CategoryContent,
				PuzzleID: cp.ID,
				Location: fmt.Sprintf("clue %d %s", cl.Number, cl.Direction),
				Description: fmt.Sprintf("clue declares cell (%d,%d) but numbering places it at (%d,%d)",
					cl.Row+1, cl.Col+1, pos[0]+1, pos[1]+1),
			})
			continue
		}
		if claimed[cl.Number] == nil {
			claimed[cl.Number] = map[domain.ClueDirection]bool{}
		}
		claimed[cl.Number][cl.Direction] = true
	}

	// Map iteration order is random; sort unclued starts by number with
	// across before down so repeated runs report them identically.
	type uncluedStart struct {
		num int
		dir domain.ClueDirection
		pos [2]int
	}
	var unclued []uncluedStart
	for num, dirs := range starts {
		for dir, pos := range dirs {
			if !claimed[num][dir] {
				unclued = append(unclued, uncluedStart{num, dir, pos})
			}
		}
	}
	sort.Slice(unclued, func(i, j int) bool {
		if unclued[i].num != unclued[j].num {
			return unclued[i].num < unclued[j].num
		}
		return unclued[i].dir == domain.Across && unclued[j].dir == domain.Down
	})
	for _, s := range unclued {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Category: domain.CategoryContent,
			PuzzleID: cp.ID,
			Location: fmt.Sprintf("cell (%d,%d)", s.pos[0]+1, s.pos[1]+1),
			Description: fmt.Sprintf("start-of-word cell %d %s has no clue", s.num, s.dir),
		})
	}

	return issues
}

// runAt reads the full run of open cells through (r,c) in the clue's
// direction out of the solution grid.
func (v *Crossword) runAt(cp domain.CrosswordPuzzle, r, c int, dir domain.ClueDirection) string {
	dr, dc := 0, 1
	if dir == domain.Down {
		dr, dc = 1, 0
	}

	var b strings.Builder
	for r >= 0 && r < cp.Rows && c >= 0 && c < cp.Cols && cp.Solution[r][c] != blockCell {
		b.WriteByte(cp.Solution[r][c])
		r += dr
		c += dc
	}
	return b.String()
}

// checkAnswers requires each clue's answer to match the solution run at the
// clue's start cell, in letters and in length.
func (v *Crossword) checkAnswers(cp domain.CrosswordPuzzle) []domain.Issue {
	var issues []domain.Issue

	for _, cl := range cp.Clues {
		if cl.Row < 0 || cl.Row >= cp.Rows || cl.Col < 0 || cl.Col >= cp.Cols {
			continue // already reported by numbering
		}
		run := v.runAt(cp, cl.Row, cl.Col, cl.Direction)
		answer := strings.ToUpper(strings.TrimSpace(cl.Answer))

		if len(answer) != len(run) {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Category: domain.CategoryContent,
				PuzzleID: cp.ID,
				Location: fmt.Sprintf("clue %d %s", cl.Number, cl.Direction),
				Description: fmt.Sprintf("answer %q has length %d but the grid run is %d cells",
					answer, len(answer), len(run)),
			})
			continue
		}
		if answer != run {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityError,
				Category: domain.CategoryContent,
				PuzzleID: cp.ID,
				Location: fmt.Sprintf("clue %d %s", cl.Number, cl.Direction),
				Description: fmt.Sprintf("answer %q disagrees with grid letters %q", answer, run),
			})
		}
	}

	return issues
}

// checkConnectivity flags layouts whose blocks isolate a sub-region of the
// white cells.
func (v *Crossword) checkConnectivity(cp domain.CrosswordPuzzle) []domain.Issue {
	total := 0
	start := [2]int{-1, -1}
	for r := 0; r < cp.Rows; r++ {
		for c := 0; c < cp.Cols; c++ {
			if cp.Grid[r][c] != blockCell {
				total++
				if start[0] < 0 {
					start = [2]int{r, c}
				}
			}
		}
	}
	if total == 0 {
		return []domain.Issue{{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryContent,
			PuzzleID:    cp.ID,
			Description: "grid has no open cells",
		}}
	}

	seen := make([][]bool, cp.Rows)
	for r := range seen {
		seen[r] = make([]bool, cp.Cols)
	}
	stack := [][2]int{start}
	seen[start[0]][start[1]] = true
	reached := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := cur[0]+d[0], cur[1]+d[1]
			if r < 0 || c < 0 || r >= cp.Rows || c >= cp.Cols {
				continue
			}
			if seen[r][c] || cp.Grid[r][c] == blockCell {
				continue
			}
			seen[r][c] = true
			stack = append(stack, [2]int{r, c})
		}
	}

	if reached != total {
		return []domain.Issue{{
			Severity: domain.SeverityError,
			Category: domain.CategoryContent,
			PuzzleID: cp.ID,
			Description: fmt.Sprintf("blocks isolate %d open cell(s) from the rest of the grid",
				total-reached),
			Recommendation: "remove blocks until all open cells form one region",
		}}
	}
	return nil
}

func (v *Crossword) checkDuplicateAnswers(cp domain.CrosswordPuzzle) []domain.Issue {
	var issues []domain.Issue
	seen := map[string]int{}
	for _, cl := range cp.Clues {
		answer := strings.ToUpper(strings.TrimSpace(cl.Answer))
		if answer == "" {
			continue
		}
		if first, ok := seen[answer]; ok {
			issues = append(issues, domain.Issue{
				Severity: domain.SeverityWarning,
				Category: domain.CategoryContent,
				PuzzleID: cp.ID,
				Location: fmt.Sprintf("clue %d %s", cl.Number, cl.Direction),
				Description: fmt.Sprintf("answer %q repeats clue %d's answer", answer, first),
			})
			continue
		}
		seen[answer] = cl.Number
	}
	return issues
}
