// Package puzzlestore loads generator output from disk: either a directory
// of one-puzzle JSON files or a single file holding a JSON array of puzzle
// records. Both caller conventions from the generator scripts are supported.
package puzzlestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

type FSLoader struct{}

func NewFSLoader() *FSLoader { return &FSLoader{} }

var _ ports.PuzzleSource = (*FSLoader)(nil)

// Load enumerates the batch at path. Files are visited in sorted name order
// so repeated runs see the same sequence. A file that fails to decode
// produces a record with LoadErr set; only a missing/unreadable path fails
// the whole call.
func (l *FSLoader) Load(path string, typ domain.PuzzleType) ([]ports.PuzzleRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "puzzlestore.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}

	if info.IsDir() {
		return l.loadDir(path, typ)
	}
	return l.loadArrayFile(path, typ)
}

func (l *FSLoader) loadDir(dir string, typ domain.PuzzleType) ([]ports.PuzzleRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "puzzlestore.readdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	records := make([]ports.PuzzleRecord, 0, len(names))
	for _, name := range names {
		full := filepath.Join(dir, name)

		rec := ports.PuzzleRecord{Puzzle: domain.Puzzle{Type: typ, SourcePath: full}}
		b, err := os.ReadFile(full)
		if err != nil {
			rec.LoadErr = err
			records = append(records, rec)
			continue
		}

		p, err := decodePuzzle(b, typ)
		if err != nil {
			rec.LoadErr = err
			records = append(records, rec)
			continue
		}
		p.SourcePath = full
		rec.Puzzle = p
		records = append(records, rec)
	}

	return records, nil
}

func (l *FSLoader) loadArrayFile(path string, typ domain.PuzzleType) ([]ports.PuzzleRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "puzzlestore.readfile",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		// Single puzzle object, the degenerate one-record batch.
		rec := ports.PuzzleRecord{Puzzle: domain.Puzzle{Type: typ, SourcePath: path}}
		p, err := decodePuzzle(trimmed, typ)
		if err != nil {
			rec.LoadErr = err
		} else {
			p.SourcePath = path
			rec.Puzzle = p
		}
		return []ports.PuzzleRecord{rec}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &domain.OpError{
			Op:   "puzzlestore.decode",
			Kind: domain.KindMalformedPuzzle,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrMalformedPuzzle, err),
		}
	}

	records := make([]ports.PuzzleRecord, 0, len(raw))
	for i, msg := range raw {
		src := fmt.Sprintf("%s#%d", path, i)
		rec := ports.PuzzleRecord{Puzzle: domain.Puzzle{Type: typ, SourcePath: src}}

		p, err := decodePuzzle(msg, typ)
		if err != nil {
			rec.LoadErr = err
			records = append(records, rec)
			continue
		}
		p.SourcePath = src
		rec.Puzzle = p
		records = append(records, rec)
	}

	return records, nil
}

func decodePuzzle(b []byte, typ domain.PuzzleType) (domain.Puzzle, error) {
	p := domain.Puzzle{Type: typ}

	switch typ {
	case domain.TypeSudoku:
		var sp domain.SudokuPuzzle
		if err := json.Unmarshal(b, &sp); err != nil {
			return p, err
		}
		p.Sudoku = &sp
	case domain.TypeCrossword:
		var cp domain.CrosswordPuzzle
		if err := json.Unmarshal(b, &cp); err != nil {
			return p, err
		}
		p.Crossword = &cp
	case domain.TypeWordSearch:
		var wp domain.WordSearchPuzzle
		if err := json.Unmarshal(b, &wp); err != nil {
			return p, err
		}
		p.WordSearch = &wp
	default:
		return p, fmt.Errorf("unsupported puzzle type %q", typ)
	}

	return p, nil
}
