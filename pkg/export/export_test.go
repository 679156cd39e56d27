package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Subject", "Grade", "Points"},
		Rows: []map[string]string{
			{"Subject": "LANGUAGE", "Grade": "A", "Points": "4"},
			{"Subject": "MATHEMATICS", "Grade": "B", "Points": "3"},
		},
		Summary: []SummaryLine{{Label: "GPA", Value: "3.50"}},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	want := "Subject,Grade,Points\nLANGUAGE,A,4\nMATHEMATICS,B,3\nGPA,,3.50\n"
	assert.Equal(t, want, string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Report Card", "Jane Doe")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	_, err = NewPDFExporter().Render(Dataset{}, "", "")
	assert.Error(t, err)
}
