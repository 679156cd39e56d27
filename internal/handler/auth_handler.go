package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/report-card-api/internal/models"
	appErrors "github.com/noah-isme/report-card-api/pkg/errors"
	"github.com/noah-isme/report-card-api/pkg/response"
)

type tokenIssuer interface {
	IssueToken(userID string, role models.UserRole) (*models.IssuedToken, error)
}

// DevTokenRequest asks for a token for an arbitrary user and role.
type DevTokenRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Role   models.UserRole `json:"role" binding:"required"`
}

// AuthHandler exposes token endpoints. It is only mounted outside production.
type AuthHandler struct {
	tokens tokenIssuer
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(tokens tokenIssuer) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// DevToken godoc
// @Summary Issue development access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body DevTokenRequest true "Token payload"
// @Success 200 {object} response.Envelope
// @Router /auth/dev-token [post]
func (h *AuthHandler) DevToken(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	token, err := h.tokens.IssueToken(req.UserID, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, token, nil)
}
