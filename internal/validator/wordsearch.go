package validator

import (
	"fmt"
	"strings"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

// wordDeltas maps the eight compass directions to row/col steps.
var wordDeltas = map[domain.WordDirection][2]int{
	"e":  {0, 1},
	"w":  {0, -1},
	"s":  {1, 0},
	"n":  {-1, 0},
	"se": {1, 1},
	"sw": {1, -1},
	"ne": {-1, 1},
	"nw": {-1, -1},
}

// WordSearch validates letter grids against their answer key: every target
// word must actually sit where the key claims it does.
type WordSearch struct{}

func NewWordSearch() *WordSearch { return &WordSearch{} }

var _ ports.Validator = (*WordSearch)(nil)

func (v *WordSearch) Type() domain.PuzzleType { return domain.TypeWordSearch }

func (v *WordSearch) Validate(p domain.Puzzle) []domain.Issue {
	issues := []domain.Issue{}

	if p.WordSearch == nil {
		return append(issues, domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			Description: "record is not a word search puzzle",
		})
	}
	wp := *p.WordSearch

	if is := v.structural(wp); is != nil {
		return append(issues, *is)
	}

	for i, tw := range wp.Words {
		issues = append(issues, v.checkWord(wp, i, tw)...)
	}

	return issues
}

func (v *WordSearch) structural(wp domain.WordSearchPuzzle) *domain.Issue {
	fail := func(loc, desc string) *domain.Issue {
		return &domain.Issue{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			PuzzleID:    wp.ID,
			Location:    loc,
			Description: desc,
		}
	}

	if !wp.Difficulty.Valid() {
		return fail("difficulty", fmt.Sprintf("unrecognized difficulty %q", wp.Difficulty))
	}
	if wp.Rows <= 0 || wp.Cols <= 0 {
		return fail("", fmt.Sprintf("grid dimensions %dx%d are not positive", wp.Rows, wp.Cols))
	}
	if len(wp.Grid) != wp.Rows {
		return fail("grid", fmt.Sprintf("grid has %d rows, want %d", len(wp.Grid), wp.Rows))
	}
	for r, row := range wp.Grid {
		if len(row) != wp.Cols {
			return fail(fmt.Sprintf("row %d", r+1),
				fmt.Sprintf("row has %d cells, want %d", len(row), wp.Cols))
		}
		for c := 0; c < len(row); c++ {
			if row[c] < 'A' || row[c] > 'Z' {
				return fail(fmt.Sprintf("cell (%d,%d)", r+1, c+1),
					fmt.Sprintf("grid cell %q is not an uppercase letter", row[c]))
			}
		}
	}
	if len(wp.Words) == 0 {
		return fail("words", "puzzle lists no target words")
	}

	return nil
}

// checkWord verifies one answer key entry. The declared placement must spell
// the word; when it does not, the finding distinguishes a wrong key entry
// (the word exists elsewhere) from a word that is missing entirely.
func (v *WordSearch) checkWord(wp domain.WordSearchPuzzle, idx int, tw domain.TargetWord) []domain.Issue {
	loc := fmt.Sprintf("word %d (%s)", idx+1, tw.Word)

	word := strings.ToUpper(strings.TrimSpace(tw.Word))
	if len(word) < 2 || !alphabetic(word) {
		return []domain.Issue{{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryStructural,
			PuzzleID:    wp.ID,
			Location:    loc,
			Description: fmt.Sprintf("target word %q must be two or more letters A-Z", tw.Word),
		}}
	}

	delta, ok := wordDeltas[tw.Direction]
	if !ok {
		return []domain.Issue{{
			Severity:    domain.SeverityError,
			Category:    domain.CategoryContent,
			PuzzleID:    wp.ID,
			Location:    loc,
			Description: fmt.Sprintf("unrecognized direction %q", tw.Direction),
		}}
	}

	if v.wordAt(wp, word, tw.Row, tw.Col, delta) {
		return nil
	}

	desc := fmt.Sprintf("word %q is not in the grid along any direction", word)
	if v.wordAnywhere(wp, word) {
		desc = fmt.Sprintf("word %q is in the grid but not at the declared cell (%d,%d) heading %s",
			word, tw.Row+1, tw.Col+1, tw.Direction)
	}
	return []domain.Issue{{
		Severity:       domain.SeverityError,
		Category:       domain.CategoryContent,
		PuzzleID:       wp.ID,
		Location:       loc,
		Description:    desc,
		Recommendation: "regenerate the answer key from the placed grid",
	}}
}

func (v *WordSearch) wordAt(wp domain.WordSearchPuzzle, word string, r, c int, delta [2]int) bool {
	for i := 0; i < len(word); i++ {
		if r < 0 || c < 0 || r >= wp.Rows || c >= wp.Cols {
			return false
		}
		if wp.Grid[r][c] != word[i] {
			return false
		}
		r += delta[0]
		c += delta[1]
	}
	return true
}

func (v *WordSearch) wordAnywhere(wp domain.WordSearchPuzzle, word string) bool {
	for r := 0; r < wp.Rows; r++ {
		for c := 0; c < wp.Cols; c++ {
			for _, delta := range wordDeltas {
				if v.wordAt(wp, word, r, c, delta) {
					return true
				}
			}
		}
	}
	return false
}

func alphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
