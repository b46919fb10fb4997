package domain

import "strings"

// Difficulty labels the target audience of a generated puzzle.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties lists the recognized values in rank order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// PuzzleType selects which validator applies to a batch.
type PuzzleType string

const (
	TypeSudoku     PuzzleType = "sudoku"
	TypeCrossword  PuzzleType = "crossword"
	TypeWordSearch PuzzleType = "wordsearch"
)

func ParsePuzzleType(s string) (PuzzleType, bool) {
	switch PuzzleType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeSudoku:
		return TypeSudoku, true
	case TypeCrossword:
		return TypeCrossword, true
	case TypeWordSearch:
		return TypeWordSearch, true
	}
	return "", false
}

// SudokuPuzzle is one generated Sudoku as written by the upstream generators.
//
// Grid and Solution are kept as loosely-shaped slices on purpose: generator
// output is untrusted, and shape problems must surface as structural issues,
// not as decode failures. The validator narrows to a fixed 9x9 form after the
// structural check passes.
type SudokuPuzzle struct {
	ID         string     `json:"id"`
	Grid       [][]int    `json:"grid"`
	Solution   [][]int    `json:"solution"`
	Difficulty Difficulty `json:"difficulty"`
}

// ClueCount counts the non-zero cells of the clue grid.
func (p SudokuPuzzle) ClueCount() int {
	n := 0
	for _, row := range p.Grid {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// ClueDirection is the orientation of a crossword clue.
type ClueDirection string

const (
	Across ClueDirection = "across"
	Down   ClueDirection = "down"
)

// Clue ties a numbered grid position to its answer.
type Clue struct {
	Number    int           `json:"number"`
	Direction ClueDirection `json:"direction"`
	Row       int           `json:"row"`
	Col       int           `json:"col"`
	Answer    string        `json:"answer"`
	Text      string        `json:"text,omitempty"`
}

// CrosswordPuzzle holds a crossword layout plus its filled solution.
//
// Grid rows use '#' for block cells and '.' for open cells; Solution rows use
// '#' for blocks and the answer letter for open cells.
type CrosswordPuzzle struct {
	ID         string     `json:"id"`
	Rows       int        `json:"rows"`
	Cols       int        `json:"cols"`
	Grid       []string   `json:"grid"`
	Solution   []string   `json:"solution"`
	Clues      []Clue     `json:"clues"`
	Difficulty Difficulty `json:"difficulty"`
}

// WordDirection names one of the eight placement directions of a word
// search target, compass style ("e", "se", "s", "sw", "w", "nw", "n", "ne").
type WordDirection string

// TargetWord is a word the answer key claims is hidden in the grid.
type TargetWord struct {
	Word      string        `json:"word"`
	Row       int           `json:"row"`
	Col       int           `json:"col"`
	Direction WordDirection `json:"direction"`
}

// WordSearchPuzzle is a letter grid plus its answer key.
type WordSearchPuzzle struct {
	ID         string       `json:"id"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	Grid       []string     `json:"grid"`
	Words      []TargetWord `json:"words"`
	Difficulty Difficulty   `json:"difficulty"`
}

// Puzzle is the envelope the stores hand to the validators. Exactly one of
// the typed fields is set, matching Type.
type Puzzle struct {
	Type       PuzzleType
	SourcePath string

	Sudoku     *SudokuPuzzle
	Crossword  *CrosswordPuzzle
	WordSearch *WordSearchPuzzle
}

// ID returns the inner puzzle's id, or "" when the envelope is empty.
func (p Puzzle) ID() string {
	switch {
	case p.Sudoku != nil:
		return p.Sudoku.ID
	case p.Crossword != nil:
		return p.Crossword.ID
	case p.WordSearch != nil:
		return p.WordSearch.ID
	}
	return ""
}
