package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/prescriptions-api/pkg/errors"
	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

// Metrics records request duration and counts per route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.RequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(method, path, status).Inc()

		if last := c.Errors.Last(); last != nil {
			kind := errors.KindInternal
			var appErr *errors.AppError
			if errors.As(last.Err, &appErr) {
				kind = appErr.Kind
			}
			m.ErrorTotal.WithLabelValues(method, path, kind.String()).Inc()
		}
	}
}
