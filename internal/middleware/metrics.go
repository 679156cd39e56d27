package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/report-card-api/internal/service"
	"github.com/noah-isme/report-card-api/pkg/reportcard"
)

// Metrics returns middleware that captures request metrics using the provided service.
// Routes carrying a :subject param are also counted per subject.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, duration)

		if raw := c.Param("subject"); raw != "" {
			metricsSvc.ObserveGradeRequest(subjectLabel(raw), status)
		}
	}
}

// subjectLabel keeps label cardinality bounded to the known subjects.
func subjectLabel(raw string) string {
	subject, err := reportcard.ParseSubject(raw)
	if err != nil {
		return "unknown"
	}
	return subject.String()
}
