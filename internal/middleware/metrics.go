package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/child-therapy-api/internal/service"
)

// Metrics records per-request duration and counts, labelled by route
// template so path parameters do not explode cardinality.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
