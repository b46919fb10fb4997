package ports

import "github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"

// PuzzleRecord is one loaded puzzle, or the reason it could not be loaded.
// A batch never aborts on a single bad file: the loader records the failure
// and moves on.
type PuzzleRecord struct {
	Puzzle  domain.Puzzle
	LoadErr error
}

// PuzzleSource enumerates the puzzles of a batch in a deterministic order
// (sorted by source path, then array index).
type PuzzleSource interface {
	Load(path string, typ domain.PuzzleType) ([]PuzzleRecord, error)
}
