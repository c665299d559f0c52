package middleware

import (
	"github.com/gin-gonic/gin"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/logger"
	"fleet-ledger-api/internal/utils"
)

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if logger.App != nil {
					logger.App.Errorf("panic recovered: %v", r)
				}
				c.JSON(500, utils.Error(constant.CodeSystemError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
