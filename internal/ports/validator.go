package ports

import "github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"

// Validator checks one puzzle and reports findings. An empty slice means the
// puzzle is fully valid. Content problems never surface as an error return;
// implementations report them as issues and keep going.
type Validator interface {
	Type() domain.PuzzleType
	Validate(p domain.Puzzle) []domain.Issue
}
