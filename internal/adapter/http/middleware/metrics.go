package middleware

import (
	"strconv"
	"time"

	"brokerage_crm/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency labelled by route template, so path ids do
// not explode label cardinality. Unmatched routes are labelled "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
