package models

import "time"

// SubjectGrade is one subject row of a report card.
type SubjectGrade struct {
	Subject string  `json:"subject"`
	Label   string  `json:"label"`
	Grade   string  `json:"grade"`
	Points  float64 `json:"points"`
	Valid   bool    `json:"valid"`
}

// ReportCardView is the API representation of a hosted report card.
type ReportCardView struct {
	ID          string         `json:"id"`
	StudentName string         `json:"student_name,omitempty"`
	Grades      []SubjectGrade `json:"grades"`
	GPA         float64        `json:"gpa"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ReportCardFilter pages through hosted report cards.
type ReportCardFilter struct {
	Page     int
	PageSize int
}

// ExportFormat names a report card export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ReportCardExport carries rendered export bytes.
type ReportCardExport struct {
	Filename    string
	ContentType string
	Data        []byte
}
