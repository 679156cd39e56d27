// Package reportcard models a student report card: one letter grade per
// fixed subject and the GPA derived from them.
package reportcard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooFewGrades is returned when fewer than SubjectCount grades are supplied.
var ErrTooFewGrades = errors.New("report card requires a grade for every subject")

// ReportCard holds per-subject letter grades and their GPA. The GPA is
// recomputed over every slot on construction and after each SetGrade.
//
// A ReportCard is not safe for concurrent use. Callers sharing one must
// serialise each mutate-then-read sequence themselves.
type ReportCard struct {
	grades [SubjectCount]rune
	gpa    float64
	sink   Sink
}

// Option customises a ReportCard at construction.
type Option func(*ReportCard)

// WithSink sets the diagnostic sink for invalid grades.
func WithSink(sink Sink) Option {
	return func(c *ReportCard) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// New builds a report card from grades ordered Language, Mathematics,
// Physics, Chemistry, Computer Science, Physical Education. Positions past
// the sixth are ignored.
func New(grades []rune, opts ...Option) (*ReportCard, error) {
	if len(grades) < SubjectCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTooFewGrades, len(grades), SubjectCount)
	}
	card := &ReportCard{sink: DefaultSink()}
	for _, opt := range opts {
		opt(card)
	}
	copy(card.grades[:], grades[:SubjectCount])
	card.calculateGPA()
	return card, nil
}

// MustNew is like New but panics when fewer than six grades are given.
func MustNew(grades ...rune) *ReportCard {
	card, err := New(grades)
	if err != nil {
		panic(err)
	}
	return card
}

// Grade returns the stored grade for subject.
func (c *ReportCard) Grade(subject Subject) rune {
	return c.grades[subject]
}

// SetGrade overwrites the grade for subject and recomputes the GPA.
func (c *ReportCard) SetGrade(subject Subject, grade rune) {
	c.grades[subject] = grade
	c.calculateGPA()
}

// Grades returns a copy of all slots in canonical order.
func (c *ReportCard) Grades() [SubjectCount]rune {
	return c.grades
}

// GPA returns the aggregate computed after the last change.
func (c *ReportCard) GPA() float64 {
	return c.gpa
}

// Invalid grades count as zero points but still divide by SubjectCount.
func (c *ReportCard) calculateGPA() {
	var sum float64
	for i, grade := range c.grades {
		points, ok := GradePoint(grade)
		if !ok {
			c.sink.InvalidGrade(Subject(i), grade)
			continue
		}
		sum += points
	}
	c.gpa = sum / SubjectCount
}

// String renders the fixed multi-line summary. Each line is
// "<LABEL>= <grade>" and the GPA is rounded to two decimals.
func (c *ReportCard) String() string {
	var b strings.Builder
	b.WriteString("ReportCard:")
	for _, subject := range Subjects() {
		fmt.Fprintf(&b, "\n%s= %c", subject.Label(), c.grades[subject])
	}
	fmt.Fprintf(&b, "\nGPA= %.2f", c.gpa)
	return b.String()
}

// LanguageGrade returns the Language grade.
func (c *ReportCard) LanguageGrade() rune { return c.Grade(Language) }

// MathematicsGrade returns the Mathematics grade.
func (c *ReportCard) MathematicsGrade() rune { return c.Grade(Mathematics) }

// PhysicsGrade returns the Physics grade.
func (c *ReportCard) PhysicsGrade() rune { return c.Grade(Physics) }

// ChemistryGrade returns the Chemistry grade.
func (c *ReportCard) ChemistryGrade() rune { return c.Grade(Chemistry) }

// ComputerScienceGrade returns the Computer Science grade.
func (c *ReportCard) ComputerScienceGrade() rune { return c.Grade(ComputerScience) }

// PhysicalEducationGrade returns the Physical Education grade.
func (c *ReportCard) PhysicalEducationGrade() rune { return c.Grade(PhysicalEducation) }

// SetLanguageGrade replaces the Language grade and recomputes the GPA.
func (c *ReportCard) SetLanguageGrade(grade rune) { c.SetGrade(Language, grade) }

// SetMathematicsGrade replaces the Mathematics grade and recomputes the GPA.
func (c *ReportCard) SetMathematicsGrade(grade rune) { c.SetGrade(Mathematics, grade) }

// SetPhysicsGrade replaces the Physics grade and recomputes the GPA.
func (c *ReportCard) SetPhysicsGrade(grade rune) { c.SetGrade(Physics, grade) }

// SetChemistryGrade replaces the Chemistry grade and recomputes the GPA.
func (c *ReportCard) SetChemistryGrade(grade rune) { c.SetGrade(Chemistry, grade) }

// SetComputerScienceGrade replaces the Computer Science grade and recomputes the GPA.
func (c *ReportCard) SetComputerScienceGrade(grade rune) { c.SetGrade(ComputerScience, grade) }

// SetPhysicalEducationGrade replaces the Physical Education grade and recomputes the GPA.
func (c *ReportCard) SetPhysicalEducationGrade(grade rune) { c.SetGrade(PhysicalEducation, grade) }
