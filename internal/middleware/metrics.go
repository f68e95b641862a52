package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests by route pattern, e.g. /api/v1/records/:recordId instead of the raw path.
func (m Middleware) MetricsMiddleware(ctx *gin.Context) {
	if m.app.Metrics == nil || ctx.Request.URL.Path == "/metrics" {
		ctx.Next()
		return
	}

	start := time.Now()
	ctx.Next()

	path := ctx.FullPath()
	if path == "" {
		// unmatched routes would otherwise explode the label cardinality
		path = "unmatched"
	}

	m.app.Metrics.RequestCount.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
	m.app.Metrics.RequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
}
