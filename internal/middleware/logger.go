package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleet-ledger-api/internal/logger"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if logger.App == nil {
			return
		}
		logger.App.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"cost_ms":  time.Since(start).Milliseconds(),
			"operator": c.GetString(OperatorKey),
		}).Info("request")
	}
}
