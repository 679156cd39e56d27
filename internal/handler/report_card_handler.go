package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/report-card-api/internal/models"
	"github.com/noah-isme/report-card-api/internal/service"
	appErrors "github.com/noah-isme/report-card-api/pkg/errors"
	"github.com/noah-isme/report-card-api/pkg/response"
)

type reportCardService interface {
	Create(ctx context.Context, req service.CreateReportCardRequest) (*models.ReportCardView, error)
	Get(ctx context.Context, id string) (*models.ReportCardView, error)
	List(ctx context.Context, filter models.ReportCardFilter) ([]models.ReportCardView, *models.Pagination, error)
	UpdateGrade(ctx context.Context, id, subject string, req service.UpdateGradeRequest, actorID string) (*models.ReportCardView, error)
	Summary(ctx context.Context, id string) (string, error)
	Export(ctx context.Context, id string, format models.ExportFormat) (*models.ReportCardExport, error)
	Delete(ctx context.Context, id string) error
}

// ReportCardHandler exposes report card endpoints.
type ReportCardHandler struct {
	cards reportCardService
}

// NewReportCardHandler constructs handler.
func NewReportCardHandler(cards reportCardService) *ReportCardHandler {
	return &ReportCardHandler{cards: cards}
}

// Create godoc
// @Summary Create report card
// @Tags Report Cards
// @Accept json
// @Produce json
// @Param payload body service.CreateReportCardRequest true "Report card payload"
// @Success 201 {object} response.Envelope
// @Router /report-cards [post]
func (h *ReportCardHandler) Create(c *gin.Context) {
	var req service.CreateReportCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	card, err := h.cards.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, card)
}

// List godoc
// @Summary List report cards
// @Tags Report Cards
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /report-cards [get]
func (h *ReportCardHandler) List(c *gin.Context) {
	filter := models.ReportCardFilter{Page: queryInt(c, "page"), PageSize: queryInt(c, "limit")}
	cards, pagination, err := h.cards.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cards, pagination)
}

// Get godoc
// @Summary Get report card
// @Tags Report Cards
// @Produce json
// @Param id path string true "Report card ID"
// @Success 200 {object} response.Envelope
// @Router /report-cards/{id} [get]
func (h *ReportCardHandler) Get(c *gin.Context) {
	card, err := h.cards.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// UpdateGrade godoc
// @Summary Replace one subject grade
// @Tags Report Cards
// @Accept json
// @Produce json
// @Param id path string true "Report card ID"
// @Param subject path string true "Subject code"
// @Param payload body service.UpdateGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Router /report-cards/{id}/grades/{subject} [put]
func (h *ReportCardHandler) UpdateGrade(c *gin.Context) {
	var req service.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	var actorID string
	if claims := claimsFromContext(c); claims != nil {
		actorID = claims.UserID
	}
	card, err := h.cards.UpdateGrade(c.Request.Context(), c.Param("id"), c.Param("subject"), req, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, card, nil)
}

// Summary godoc
// @Summary Printable report card summary
// @Tags Report Cards
// @Produce plain
// @Param id path string true "Report card ID"
// @Success 200 {string} string
// @Router /report-cards/{id}/summary [get]
func (h *ReportCardHandler) Summary(c *gin.Context) {
	summary, err := h.cards.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, http.StatusOK, summary)
}

// Export godoc
// @Summary Export report card
// @Tags Report Cards
// @Produce text/csv,application/pdf
// @Param id path string true "Report card ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /report-cards/{id}/export [get]
func (h *ReportCardHandler) Export(c *gin.Context) {
	format := models.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(models.ExportFormatCSV))))
	file, err := h.cards.Export(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}

// Delete godoc
// @Summary Release report card
// @Tags Report Cards
// @Param id path string true "Report card ID"
// @Success 204
// @Router /report-cards/{id} [delete]
func (h *ReportCardHandler) Delete(c *gin.Context) {
	if err := h.cards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func queryInt(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
