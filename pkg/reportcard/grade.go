package reportcard

import "unicode"

const (
	pointsA = 4
	pointsB = 3
	pointsC = 2
	pointsD = 1
	pointsF = 0
)

// GradePoint maps a letter grade to its grade point. Matching is
// case-insensitive. Unrecognised grades return 0 and false.
func GradePoint(grade rune) (float64, bool) {
	switch unicode.ToUpper(grade) {
	case 'A':
		return pointsA, true
	case 'B':
		return pointsB, true
	case 'C':
		return pointsC, true
	case 'D':
		return pointsD, true
	case 'F':
		return pointsF, true
	default:
		return 0, false
	}
}

// ValidGrade reports whether grade is one of A, B, C, D, F in any case.
func ValidGrade(grade rune) bool {
	_, ok := GradePoint(grade)
	return ok
}
