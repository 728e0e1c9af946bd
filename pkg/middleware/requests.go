package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/formaltex/formal/backend/api/pkg/metrics"
)

// RequestMetrics counts every request by method, matched route and status.
// Unmatched routes are counted under their raw path so 404 noise stays visible.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
