package domain

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category places a finding in the failure taxonomy. Structural findings
// block the remaining checks for that puzzle; bounds findings are warnings;
// solvability findings are always errors regardless of strict mode.
type Category string

const (
	CategoryStructural  Category = "structural"
	CategoryContent     Category = "content"
	CategorySolvability Category = "solvability"
	CategoryBounds      Category = "bounds"
	CategoryRendering   Category = "rendering"
)

// Issue is one itemized validation finding. Pure value object: issues exist
// only within a single validation run and are never mutated after creation.
type Issue struct {
	Severity       Severity `json:"severity"`
	Category       Category `json:"category"`
	PuzzleID       string   `json:"puzzle_id,omitempty"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// CountBySeverity tallies errors and warnings in one pass.
func CountBySeverity(issues []Issue) (errors int, warnings int) {
	for _, is := range issues {
		switch is.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
