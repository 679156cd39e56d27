package reportcard

import (
	"errors"
	"strings"
)

// Subject identifies one of the fixed report card slots.
type Subject int

const (
	Language Subject = iota
	Mathematics
	Physics
	Chemistry
	ComputerScience
	PhysicalEducation
)

// SubjectCount is the number of fixed subject slots.
const SubjectCount = 6

// ErrUnknownSubject is returned when a subject code cannot be resolved.
var ErrUnknownSubject = errors.New("unknown subject")

var subjectCodes = [SubjectCount]string{
	Language:          "language",
	Mathematics:       "mathematics",
	Physics:           "physics",
	Chemistry:         "chemistry",
	ComputerScience:   "computer_science",
	PhysicalEducation: "physical_education",
}

var subjectLabels = [SubjectCount]string{
	Language:          "LANGUAGE",
	Mathematics:       "MATHEMATICS",
	Physics:           "PHYSICS",
	Chemistry:         "CHEMISTRY",
	ComputerScience:   "COMPUTER SCIENCE",
	PhysicalEducation: "PHYSICAL EDUCATION",
}

// Subjects returns every subject in canonical order.
func Subjects() []Subject {
	return []Subject{Language, Mathematics, Physics, Chemistry, ComputerScience, PhysicalEducation}
}

// Valid reports whether s is one of the fixed slots.
func (s Subject) Valid() bool {
	return s >= 0 && s < SubjectCount
}

// String returns the machine code, e.g. "computer_science".
func (s Subject) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return subjectCodes[s]
}

// Label returns the heading used in the printed summary.
func (s Subject) Label() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return subjectLabels[s]
}

// ParseSubject resolves a subject code. Matching ignores case and treats
// spaces and hyphens as underscores.
func ParseSubject(code string) (Subject, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	for i, candidate := range subjectCodes {
		if candidate == normalized {
			return Subject(i), nil
		}
	}
	return 0, ErrUnknownSubject
}
