package domain

// Config represents the validator configuration loaded from kindlemint.yaml.
type Config struct {
	Sudoku SudokuConfig
	PDF    PDFConfig
	Paths  PathsConfig
}

// ClueRange is a closed interval on the clue count of a puzzle grid.
type ClueRange struct {
	Min int
	Max int
}

// Midpoint is the recommended clue-count target when out of range.
func (r ClueRange) Midpoint() int {
	return (r.Min + r.Max) / 2
}

// Contains reports whether n falls in the closed interval.
func (r ClueRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

type SudokuConfig struct {
	// ClueRanges come from the generator playbook. The documented ranges
	// overlap between neighboring difficulties (hard 20-28 vs expert 17-26);
	// they are preserved as-is and treated as configuration, not law.
	ClueRanges map[Difficulty]ClueRange
}

type PDFConfig struct {
	// A page counts toward coverage only when it carries an image at or
	// above every minimum below. A page with no image at all is a text
	// fallback, the known defect mode where image embedding silently failed.
	MinImageBytes  int64
	MinImageWidth  int
	MinImageHeight int

	// CoverageThreshold is the fraction of expected puzzle (and, separately,
	// solution) pages that must carry a qualifying image.
	CoverageThreshold float64

	// PageCountTolerance allows front/back matter around the expected count.
	PageCountTolerance int
}

type PathsConfig struct {
	ReportsDir string
}

// DefaultConfig provides sane defaults if kindlemint.yaml is missing or
// partially filled in.
func DefaultConfig() Config {
	return Config{
		Sudoku: SudokuConfig{
			ClueRanges: map[Difficulty]ClueRange{
				DifficultyEasy:   {Min: 32, Max: 48},
				DifficultyMedium: {Min: 25, Max: 36},
				DifficultyHard:   {Min: 20, Max: 28},
				DifficultyExpert: {Min: 17, Max: 26},
			},
		},
		PDF: PDFConfig{
			MinImageBytes:      10 * 1024,
			MinImageWidth:      300,
			MinImageHeight:     300,
			CoverageThreshold:  0.90,
			PageCountTolerance: 2,
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
		},
	}
}
