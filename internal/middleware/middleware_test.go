package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/report-card-api/internal/models"
	"github.com/noah-isme/report-card-api/internal/service"
	appErrors "github.com/noah-isme/report-card-api/pkg/errors"
)

type stubValidator map[string]*models.JWTClaims

func (s stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Wrap(errors.New("bad token"), appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
}

func newProtectedRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := stubValidator{
		"teacher": {UserID: "t-1", Role: models.RoleTeacher},
		"student": {UserID: "s-1", Role: models.RoleStudent},
	}
	router := gin.New()
	router.Use(JWT(tokens))
	if len(roles) > 0 {
		router.Use(RequireRoles(roles...))
	}
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Claims(c).UserID)
	})
	return router
}

func serve(router http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTMiddleware(t *testing.T) {
	router := newProtectedRouter()

	assert.Equal(t, http.StatusUnauthorized, serve(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "Token teacher").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "Bearer nope").Code)

	recorder := serve(router, "bearer teacher")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "t-1", recorder.Body.String())
}

func TestRequireRoles(t *testing.T) {
	router := newProtectedRouter(models.RoleAdmin, models.RoleTeacher)

	assert.Equal(t, http.StatusOK, serve(router, "Bearer teacher").Code)
	assert.Equal(t, http.StatusForbidden, serve(router, "Bearer student").Code)
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequireRoles(models.RoleAdmin))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(router, "").Code)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/report-cards/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, "")
	req := httptest.NewRequest(http.MethodGet, "/report-cards/abc", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	count, err := testutil.GatherAndCount(metrics.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetricsMiddlewareCountsGradeRequestsBySubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics))
	router.PUT("/report-cards/:id/grades/:subject", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{
		"/report-cards/abc/grades/Computer-Science",
		"/report-cards/abc/grades/computer_science",
		"/report-cards/abc/grades/history",
		"/report-cards/abc/grades/astrology",
	} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, path, nil))
	}

	count, err := testutil.GatherAndCount(metrics.Registry(), "report_card_grade_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := recorder.Body.String()
	assert.Contains(t, body, `report_card_grade_requests_total{status="200",subject="computer_science"} 2`)
	assert.Contains(t, body, `report_card_grade_requests_total{status="200",subject="unknown"} 2`)
}
