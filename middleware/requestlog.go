package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/geo-audit/backend/logging"
)

// RequestLogger emits one structured log line per request with latency and
// outcome.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logging.Log.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"clientIp":  c.ClientIP(),
			"latencyMs": time.Since(start).Milliseconds(),
		}).Info("request handled")
	}
}
