package reportcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordedDiagnostic struct {
	subject Subject
	grade   rune
}

func recordingSink() (Sink, *[]recordedDiagnostic) {
	var got []recordedDiagnostic
	return SinkFunc(func(subject Subject, grade rune) {
		got = append(got, recordedDiagnostic{subject: subject, grade: grade})
	}), &got
}

func TestNewComputesGPA(t *testing.T) {
	cases := []struct {
		name   string
		grades []rune
		want   float64
	}{
		{name: "all A", grades: []rune("AAAAAA"), want: 4.0},
		{name: "all F", grades: []rune("FFFFFF"), want: 0.0},
		{name: "mixed case", grades: []rune("aBcDfA"), want: 14.0 / 6},
		{name: "lowercase only", grades: []rune("bbbbbb"), want: 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card, err := New(tc.grades)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, card.GPA(), 1e-9)
		})
	}
}

func TestNewInvalidGradeContributesZero(t *testing.T) {
	sink, got := recordingSink()

	card, err := New([]rune("AAAAAZ"), WithSink(sink))
	require.NoError(t, err)

	assert.InDelta(t, 20.0/6, card.GPA(), 1e-9)
	require.Len(t, *got, 1)
	assert.Equal(t, PhysicalEducation, (*got)[0].subject)
	assert.Equal(t, 'Z', (*got)[0].grade)
}

func TestNewRejectsShortInput(t *testing.T) {
	card, err := New([]rune("AAA"))
	assert.Nil(t, card)
	assert.ErrorIs(t, err, ErrTooFewGrades)

	assert.Panics(t, func() { MustNew('A', 'B') })
}

func TestNewIgnoresExtraGrades(t *testing.T) {
	card, err := New([]rune("AAAAAAFFF"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, card.GPA())
	assert.Equal(t, [SubjectCount]rune{'A', 'A', 'A', 'A', 'A', 'A'}, card.Grades())
}

func TestNewCopiesInput(t *testing.T) {
	input := []rune("AAAAAA")
	card := MustNew(input...)
	input[0] = 'F'
	assert.Equal(t, 'A', card.LanguageGrade())
	assert.Equal(t, 4.0, card.GPA())
}

func TestSetGradeRecomputes(t *testing.T) {
	card := MustNew([]rune("AAAAAA")...)
	require.Equal(t, 4.0, card.GPA())

	card.SetMathematicsGrade('F')

	assert.Equal(t, 'F', card.MathematicsGrade())
	assert.InDelta(t, 20.0/6, card.GPA(), 1e-9)

	card.SetMathematicsGrade('a')
	assert.Equal(t, 4.0, card.GPA())
}

func TestNamedAccessorsMapToSlots(t *testing.T) {
	card := MustNew([]rune("ABCDFA")...)

	assert.Equal(t, 'A', card.LanguageGrade())
	assert.Equal(t, 'B', card.MathematicsGrade())
	assert.Equal(t, 'C', card.PhysicsGrade())
	assert.Equal(t, 'D', card.ChemistryGrade())
	assert.Equal(t, 'F', card.ComputerScienceGrade())
	assert.Equal(t, 'A', card.PhysicalEducationGrade())

	card.SetLanguageGrade('b')
	card.SetPhysicsGrade('c')
	card.SetChemistryGrade('d')
	card.SetComputerScienceGrade('a')
	card.SetPhysicalEducationGrade('f')

	assert.Equal(t, [SubjectCount]rune{'b', 'B', 'c', 'd', 'a', 'f'}, card.Grades())
	assert.InDelta(t, (3.0+3+2+1+4+0)/6, card.GPA(), 1e-9)
}

func TestGetterIsIdempotent(t *testing.T) {
	card := MustNew([]rune("ABCDFA")...)
	assert.Equal(t, card.PhysicsGrade(), card.PhysicsGrade())
	assert.Equal(t, card.GPA(), card.GPA())
}

func TestInvalidGradeReportedOnEveryRecompute(t *testing.T) {
	sink, got := recordingSink()
	card, err := New([]rune("AAAAA?"), WithSink(sink))
	require.NoError(t, err)
	require.Len(t, *got, 1)

	card.SetLanguageGrade('x')
	assert.Len(t, *got, 3)
	assert.InDelta(t, 16.0/6, card.GPA(), 1e-9)
}

func TestDefaultSinkUsedWithoutOption(t *testing.T) {
	sink, got := recordingSink()
	SetDefaultSink(sink)
	defer SetDefaultSink(nil)

	MustNew([]rune("ZAAAAA")...)

	require.Len(t, *got, 1)
	assert.Equal(t, Language, (*got)[0].subject)
}

func TestZapSinkLogsInvalidGrade(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	card, err := New([]rune("AAQAAA"), WithSink(NewZapSink(zap.New(core))))
	require.NoError(t, err)
	require.NotNil(t, card)

	entries := logs.FilterMessage("invalid grade").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "physics", fields["subject"])
	assert.Equal(t, "Q", fields["grade"])
}

func TestString(t *testing.T) {
	card := MustNew([]rune("aBcDfA")...)

	want := "ReportCard:" +
		"\nLANGUAGE= a" +
		"\nMATHEMATICS= B" +
		"\nPHYSICS= c" +
		"\nCHEMISTRY= D" +
		"\nCOMPUTER SCIENCE= f" +
		"\nPHYSICAL EDUCATION= A" +
		"\nGPA= 2.33"
	assert.Equal(t, want, card.String())

	card.SetComputerScienceGrade('A')
	assert.Contains(t, card.String(), "COMPUTER SCIENCE= A")
	assert.Contains(t, card.String(), "GPA= 3.00")
}
