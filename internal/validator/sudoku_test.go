package validator

import (
	"reflect"
	"strings"
	"testing"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
)

// completeSolution is a valid full solution grid (shift-by-3 pattern).
func completeSolution() [][]int {
	rows := [][]int{
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{4, 5, 6, 7, 8, 9, 1, 2, 3},
		{7, 8, 9, 1, 2, 3, 4, 5, 6},
		{2, 3, 4, 5, 6, 7, 8, 9, 1},
		{5, 6, 7, 8, 9, 1, 2, 3, 4},
		{8, 9, 1, 2, 3, 4, 5, 6, 7},
		{3, 4, 5, 6, 7, 8, 9, 1, 2},
		{6, 7, 8, 9, 1, 2, 3, 4, 5},
		{9, 1, 2, 3, 4, 5, 6, 7, 8},
	}
	return cloneGrid(rows)
}

func cloneGrid(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, row := range in {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func zeroGrid() [][]int {
	out := make([][]int, 9)
	for i := range out {
		out[i] = make([]int, 9)
	}
	return out
}

func sudokuPuzzle(sp domain.SudokuPuzzle) domain.Puzzle {
	return domain.Puzzle{Type: domain.TypeSudoku, Sudoku: &sp}
}

func issuesIn(issues []domain.Issue, cat domain.Category) []domain.Issue {
	var out []domain.Issue
	for _, is := range issues {
		if is.Category == cat {
			out = append(out, is)
		}
	}
	return out
}

func wideRangeConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Sudoku.ClueRanges[domain.DifficultyEasy] = domain.ClueRange{Min: 32, Max: 81}
	return cfg
}

func TestSudoku_ValidPuzzleHasNoIssues(t *testing.T) {
	sol := completeSolution()
	clues := cloneGrid(sol)
	for c := 0; c < 9; c++ {
		clues[0][c] = 0 // each cleared cell is forced by its column
	}

	v := NewSudoku(wideRangeConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-001",
		Grid:       clues,
		Solution:   sol,
		Difficulty: domain.DifficultyEasy,
	}))

	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestSudoku_MalformedShapeIsSingleStructuralError(t *testing.T) {
	sol := completeSolution()
	v := NewSudoku(domain.DefaultConfig())

	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-bad",
		Grid:       zeroGrid()[:8], // 8 rows
		Solution:   sol,
		Difficulty: domain.DifficultyEasy,
	}))

	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Category != domain.CategoryStructural || issues[0].Severity != domain.SeverityError {
		t.Fatalf("expected structural error, got %+v", issues[0])
	}
}

func TestSudoku_UnknownDifficultyIsStructural(t *testing.T) {
	v := NewSudoku(domain.DefaultConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-diff",
		Grid:       zeroGrid(),
		Solution:   completeSolution(),
		Difficulty: "brutal",
	}))

	if len(issues) != 1 || issues[0].Category != domain.CategoryStructural {
		t.Fatalf("expected a single structural issue, got %v", issues)
	}
}

func TestSudoku_DuplicateInSolutionRowCited(t *testing.T) {
	sol := completeSolution()
	sol[0][5] = 1 // row 1 now holds two 1s and no 6

	v := NewSudoku(domain.DefaultConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-dup",
		Grid:       cloneGrid(sol),
		Solution:   sol,
		Difficulty: domain.DifficultyEasy,
	}))

	var rowIssues []domain.Issue
	for _, is := range issuesIn(issues, domain.CategoryContent) {
		if is.Location == "row 1" {
			rowIssues = append(rowIssues, is)
		}
	}
	if len(rowIssues) != 1 {
		t.Fatalf("expected exactly one content error for row 1, got %v", rowIssues)
	}
	if !strings.Contains(rowIssues[0].Description, "value 1") {
		t.Fatalf("error should cite the duplicated value 1: %q", rowIssues[0].Description)
	}
}

func TestSudoku_ClueDisagreesWithSolution(t *testing.T) {
	sol := completeSolution()
	clues := cloneGrid(sol)
	clues[0][0] = 2 // solution has 1 here

	v := NewSudoku(domain.DefaultConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-mismatch",
		Grid:       clues,
		Solution:   sol,
		Difficulty: domain.DifficultyEasy,
	}))

	found := false
	for _, is := range issuesIn(issues, domain.CategoryContent) {
		if is.Location == "cell (1,1)" && strings.Contains(is.Description, "disagrees") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected consistency error for cell (1,1), got %v", issues)
	}
}

func TestSudoku_ClueCountBounds(t *testing.T) {
	sol := completeSolution()

	mk := func(n int) [][]int {
		clues := zeroGrid()
		placed := 0
		for r := 0; r < 9 && placed < n; r++ {
			for c := 0; c < 9 && placed < n; c++ {
				clues[r][c] = sol[r][c]
				placed++
			}
		}
		return clues
	}

	v := NewSudoku(domain.DefaultConfig())

	// 17 clues is the documented expert minimum: in range.
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID: "s-17", Grid: mk(17), Solution: sol, Difficulty: domain.DifficultyExpert,
	}))
	if got := issuesIn(issues, domain.CategoryBounds); len(got) != 0 {
		t.Fatalf("17 clues must satisfy the expert range, got %v", got)
	}

	// 16 clues is below it.
	issues = v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID: "s-16", Grid: mk(16), Solution: sol, Difficulty: domain.DifficultyExpert,
	}))
	got := issuesIn(issues, domain.CategoryBounds)
	if len(got) != 1 {
		t.Fatalf("expected one bounds warning for 16 clues, got %v", got)
	}
	if got[0].Severity != domain.SeverityWarning {
		t.Fatalf("bounds finding must be a warning, got %s", got[0].Severity)
	}
	if got[0].Recommendation == "" {
		t.Fatalf("bounds warning should recommend a clue-count target")
	}
}

func TestSudoku_BlankPuzzleFailsUniqueness(t *testing.T) {
	v := NewSudoku(domain.DefaultConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-blank",
		Grid:       zeroGrid(),
		Solution:   completeSolution(),
		Difficulty: domain.DifficultyExpert,
	}))

	solv := issuesIn(issues, domain.CategorySolvability)
	if len(solv) != 1 {
		t.Fatalf("expected one solvability error, got %v", solv)
	}
	if !strings.Contains(solv[0].Description, "multiple solutions") {
		t.Fatalf("blank puzzle should report multiple solutions: %q", solv[0].Description)
	}

	// Every row and column of the clue grid is empty too.
	empty := 0
	for _, is := range issuesIn(issues, domain.CategoryContent) {
		if strings.Contains(is.Description, "no givens") {
			empty++
		}
	}
	if empty != 18 {
		t.Fatalf("expected 18 empty-unit errors, got %d", empty)
	}
}

func TestSudoku_WrongSolutionForUniquePuzzle(t *testing.T) {
	sol := completeSolution()
	clues := cloneGrid(sol)
	for c := 0; c < 9; c++ {
		clues[0][c] = 0
	}

	// Swap two full rows of the provided solution; rows and columns stay
	// permutations but the unique completion of the clues differs.
	wrong := cloneGrid(sol)
	wrong[0], wrong[1] = wrong[1], wrong[0]

	v := NewSudoku(wideRangeConfig())
	issues := v.Validate(sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-wrong",
		Grid:       clues,
		Solution:   wrong,
		Difficulty: domain.DifficultyEasy,
	}))

	// The clue rows 2..9 disagree with the swapped solution rows, and the
	// solver's unique completion cannot match either.
	if len(issuesIn(issues, domain.CategoryContent)) == 0 {
		t.Fatalf("expected consistency errors, got %v", issues)
	}
	solv := issuesIn(issues, domain.CategorySolvability)
	if len(solv) != 1 || !strings.Contains(solv[0].Description, "does not match") {
		t.Fatalf("expected a solution-mismatch error, got %v", solv)
	}
}

func TestSudoku_Deterministic(t *testing.T) {
	sol := completeSolution()
	sol[0][5] = 1

	p := sudokuPuzzle(domain.SudokuPuzzle{
		ID:         "s-det",
		Grid:       zeroGrid(),
		Solution:   sol,
		Difficulty: domain.DifficultyHard,
	})

	v := NewSudoku(domain.DefaultConfig())
	first := v.Validate(p)
	second := v.Validate(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validator output must be deterministic")
	}
}
