package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation/logger"
)

// RequestLogger logs one line per request after the handler chain runs.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"latency", time.Since(start).String(),
		)
	}
}
