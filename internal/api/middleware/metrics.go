package middleware

import (
	"strconv"
	"time"

	"recipe-finder/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 記錄每個路由的請求數與延遲
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
