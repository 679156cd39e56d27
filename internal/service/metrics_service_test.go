package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/v1/report-cards/:id", http.StatusOK, 15*time.Millisecond)
	metrics.RecordInvalidGrade("physics")
	metrics.RecordGradeUpdate("physics")
	metrics.RecordExport("csv")
	metrics.ObserveGradeRequest("physics", http.StatusForbidden)
	metrics.SetHostedReportCards(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestTotal.WithLabelValues(http.MethodGet, "/api/v1/report-cards/:id", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.reportCards))

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `report_card_invalid_grades_total{subject="physics"} 1`)
	assert.Contains(t, body, `report_card_exports_total{format="csv"} 1`)
	assert.Contains(t, body, `report_card_grade_requests_total{status="403",subject="physics"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	metrics.RecordInvalidGrade("physics")
	metrics.SetHostedReportCards(1)
	metrics.ObserveGradeRequest("physics", http.StatusOK)
	assert.Nil(t, metrics.Registry())

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
