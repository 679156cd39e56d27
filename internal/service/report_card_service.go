package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/report-card-api/internal/models"
	appErrors "github.com/noah-isme/report-card-api/pkg/errors"
	"github.com/noah-isme/report-card-api/pkg/export"
	"github.com/noah-isme/report-card-api/pkg/reportcard"
)

// CreateReportCardRequest creates a report card. Grades are ordered
// Language, Mathematics, Physics, Chemistry, Computer Science, Physical
// Education; each is a single character.
type CreateReportCardRequest struct {
	StudentName string   `json:"student_name" validate:"omitempty,max=120"`
	Grades      []string `json:"grades" validate:"required,dive,len=1"`
}

// UpdateGradeRequest replaces one subject grade.
type UpdateGradeRequest struct {
	Grade string `json:"grade" validate:"required,len=1"`
}

// ReportCardConfig tunes ReportCardService.
type ReportCardConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	ExportsEnabled  bool
	PDFTitle        string
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, subtitle string) ([]byte, error)
}

// hostedCard pairs a report card with the lock that makes each
// mutate-then-read sequence atomic for concurrent callers.
type hostedCard struct {
	mu          sync.Mutex
	id          string
	studentName string
	card        *reportcard.ReportCard
	createdAt   time.Time
	updatedAt   time.Time
}

// ReportCardService hosts report cards in memory and serialises access to each.
type ReportCardService struct {
	mu    sync.RWMutex
	cards map[string]*hostedCard

	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	csv       csvRenderer
	pdf       pdfRenderer
	config    ReportCardConfig
	now       func() time.Time
	newID     func() string
}

// NewReportCardService constructs ReportCardService.
func NewReportCardService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, csv csvRenderer, pdf pdfRenderer, config ReportCardConfig) *ReportCardService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if config.DefaultPageSize <= 0 {
		config.DefaultPageSize = 20
	}
	if config.MaxPageSize < config.DefaultPageSize {
		config.MaxPageSize = config.DefaultPageSize
	}
	return &ReportCardService{
		cards:     make(map[string]*hostedCard),
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		csv:       csv,
		pdf:       pdf,
		config:    config,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Create builds and hosts a new report card.
func (s *ReportCardService) Create(ctx context.Context, req CreateReportCardRequest) (*models.ReportCardView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report card payload")
	}
	grades := make([]rune, len(req.Grades))
	for i, g := range req.Grades {
		grades[i], _ = utf8.DecodeRuneInString(g)
	}

	id := s.newID()
	card, err := reportcard.New(grades, reportcard.WithSink(s.sinkFor(id)))
	if err != nil {
		if errors.Is(err, reportcard.ErrTooFewGrades) {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidGrades.Code, appErrors.ErrInvalidGrades.Status, appErrors.ErrInvalidGrades.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build report card")
	}

	now := s.now().UTC()
	hosted := &hostedCard{id: id, studentName: req.StudentName, card: card, createdAt: now, updatedAt: now}

	s.mu.Lock()
	s.cards[id] = hosted
	total := len(s.cards)
	s.mu.Unlock()

	s.metrics.SetHostedReportCards(total)
	s.logger.Info("report card created", zap.String("report_card_id", id), zap.Float64("gpa", card.GPA()))

	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	return hosted.view(), nil
}

// Get returns a hosted report card.
func (s *ReportCardService) Get(ctx context.Context, id string) (*models.ReportCardView, error) {
	hosted, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	return hosted.view(), nil
}

// List pages through hosted report cards ordered by creation time.
func (s *ReportCardService) List(ctx context.Context, filter models.ReportCardFilter) ([]models.ReportCardView, *models.Pagination, error) {
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = s.config.DefaultPageSize
	}
	if size > s.config.MaxPageSize {
		size = s.config.MaxPageSize
	}

	s.mu.RLock()
	hosted := make([]*hostedCard, 0, len(s.cards))
	for _, h := range s.cards {
		hosted = append(hosted, h)
	}
	s.mu.RUnlock()

	sort.Slice(hosted, func(i, j int) bool {
		if hosted[i].createdAt.Equal(hosted[j].createdAt) {
			return hosted[i].id < hosted[j].id
		}
		return hosted[i].createdAt.Before(hosted[j].createdAt)
	})

	views := make([]models.ReportCardView, 0, size)
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(hosted)}
	if page-1 > len(hosted)/size {
		return views, pagination, nil
	}
	start := (page - 1) * size
	for i := start; i < len(hosted) && i < start+size; i++ {
		h := hosted[i]
		h.mu.Lock()
		views = append(views, *h.view())
		h.mu.Unlock()
	}
	return views, pagination, nil
}

// UpdateGrade replaces one subject grade and returns the recomputed card.
func (s *ReportCardService) UpdateGrade(ctx context.Context, id, subjectCode string, req UpdateGradeRequest, actorID string) (*models.ReportCardView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	subject, err := reportcard.ParseSubject(subjectCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnknownSubject.Code, appErrors.ErrUnknownSubject.Status, fmt.Sprintf("unknown subject %q", subjectCode))
	}
	hosted, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	grade, _ := utf8.DecodeRuneInString(req.Grade)

	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	previous := hosted.card.Grade(subject)
	hosted.card.SetGrade(subject, grade)
	hosted.updatedAt = s.now().UTC()

	s.metrics.RecordGradeUpdate(subject.String())
	s.logger.Info("report card grade updated",
		zap.String("report_card_id", id),
		zap.String("subject", subject.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(grade)),
		zap.Float64("gpa", hosted.card.GPA()),
		zap.String("actor_id", actorID),
	)
	return hosted.view(), nil
}

// Summary renders the fixed-format text summary of a report card.
func (s *ReportCardService) Summary(ctx context.Context, id string) (string, error) {
	hosted, err := s.lookup(id)
	if err != nil {
		return "", err
	}
	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	return hosted.card.String(), nil
}

// Export renders a report card as CSV or PDF.
func (s *ReportCardService) Export(ctx context.Context, id string, format models.ExportFormat) (*models.ReportCardExport, error) {
	if !s.config.ExportsEnabled {
		return nil, appErrors.Clone(appErrors.ErrDisabled, "report card exports disabled")
	}
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", format))
	}
	hosted, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	hosted.mu.Lock()
	view := hosted.view()
	hosted.mu.Unlock()

	dataset := datasetFor(view)
	result := &models.ReportCardExport{Filename: fmt.Sprintf("report-card-%s.%s", id, format)}
	switch format {
	case models.ExportFormatCSV:
		result.ContentType = "text/csv"
		result.Data, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		result.ContentType = "application/pdf"
		result.Data, err = s.pdf.Render(dataset, s.config.PDFTitle, view.StudentName)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report card")
	}
	s.metrics.RecordExport(string(format))
	return result, nil
}

// Delete releases a hosted report card.
func (s *ReportCardService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.cards[id]; !ok {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "report card not found")
	}
	delete(s.cards, id)
	total := len(s.cards)
	s.mu.Unlock()

	s.metrics.SetHostedReportCards(total)
	s.logger.Info("report card deleted", zap.String("report_card_id", id))
	return nil
}

func (s *ReportCardService) lookup(id string) (*hostedCard, error) {
	s.mu.RLock()
	hosted, ok := s.cards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report card not found")
	}
	return hosted, nil
}

func (s *ReportCardService) sinkFor(id string) reportcard.Sink {
	logger := s.logger.With(zap.String("report_card_id", id))
	return reportcard.SinkFunc(func(subject reportcard.Subject, grade rune) {
		logger.Warn("invalid grade scored as zero",
			zap.String("subject", subject.String()),
			zap.String("grade", string(grade)),
		)
		s.metrics.RecordInvalidGrade(subject.String())
	})
}

// view must be called with h.mu held.
func (h *hostedCard) view() *models.ReportCardView {
	grades := h.card.Grades()
	rows := make([]models.SubjectGrade, 0, reportcard.SubjectCount)
	for _, subject := range reportcard.Subjects() {
		grade := grades[subject]
		points, ok := reportcard.GradePoint(grade)
		rows = append(rows, models.SubjectGrade{
			Subject: subject.String(),
			Label:   subject.Label(),
			Grade:   string(grade),
			Points:  points,
			Valid:   ok,
		})
	}
	return &models.ReportCardView{
		ID:          h.id,
		StudentName: h.studentName,
		Grades:      rows,
		GPA:         h.card.GPA(),
		CreatedAt:   h.createdAt,
		UpdatedAt:   h.updatedAt,
	}
}

func datasetFor(view *models.ReportCardView) export.Dataset {
	dataset := export.Dataset{Headers: []string{"Subject", "Grade", "Points"}}
	for _, row := range view.Grades {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Subject": row.Label,
			"Grade":   row.Grade,
			"Points":  strconv.FormatFloat(row.Points, 'f', -1, 64),
		})
	}
	dataset.Summary = []export.SummaryLine{{Label: "GPA", Value: strconv.FormatFloat(view.GPA, 'f', 2, 64)}}
	return dataset
}
