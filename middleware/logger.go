package middleware

import (
	"strconv"
	"time"

	"cabtour/metrics"
	"cabtour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured line per request and feeds the HTTP metrics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.ObserveHTTP(route, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("ip", getClientIP(c)),
		}
		if p, ok := CurrentPrincipal(c); ok {
			fields = append(fields, zap.String("principal", p.Kind+":"+p.ID))
		}
		logger := utils.GetLogger()
		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
