package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and
// the report card registry.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	invalidGrades   *prometheus.CounterVec
	gradeUpdates    *prometheus.CounterVec
	gradeRequests   *prometheus.CounterVec
	exports         *prometheus.CounterVec
	reportCards     prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	invalidGrades := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_card_invalid_grades_total",
		Help: "Grades outside A-F encountered during GPA computation",
	}, []string{"subject"})

	gradeUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_card_grade_updates_total",
		Help: "Single-subject grade changes applied to report cards",
	}, []string{"subject"})

	gradeRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_card_grade_requests_total",
		Help: "Grade update requests by subject and response status",
	}, []string{"subject", "status"})

	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_card_exports_total",
		Help: "Rendered report card exports by format",
	}, []string{"format"})

	reportCards := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "report_cards_hosted",
		Help: "Report cards currently held in memory",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, invalidGrades, gradeUpdates, gradeRequests, exports, reportCards, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		invalidGrades:   invalidGrades,
		gradeUpdates:    gradeUpdates,
		gradeRequests:   gradeRequests,
		exports:         exports,
		reportCards:     reportCards,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordInvalidGrade counts a grade that scored zero for being unrecognised.
func (m *MetricsService) RecordInvalidGrade(subject string) {
	if m == nil {
		return
	}
	m.invalidGrades.WithLabelValues(subject).Inc()
}

// RecordGradeUpdate counts an applied single-subject change.
func (m *MetricsService) RecordGradeUpdate(subject string) {
	if m == nil {
		return
	}
	m.gradeUpdates.WithLabelValues(subject).Inc()
}

// ObserveGradeRequest counts a grade update request, successful or not.
func (m *MetricsService) ObserveGradeRequest(subject string, status int) {
	if m == nil {
		return
	}
	m.gradeRequests.WithLabelValues(subject, fmt.Sprintf("%d", status)).Inc()
}

// RecordExport counts a rendered export.
func (m *MetricsService) RecordExport(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

// SetHostedReportCards reports the registry size.
func (m *MetricsService) SetHostedReportCards(n int) {
	if m == nil {
		return
	}
	m.reportCards.Set(float64(n))
}
