package middleware

import "github.com/gin-gonic/gin"

// OperatorKey 经办人在 gin context 里的 key
const OperatorKey = "operator"

// Operator 从请求头取经办人标识，写路径落库和审计都用它。
// 身份校验由网关层负责，这里只透传。
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := c.GetHeader("X-Operator")
		if operator == "" {
			operator = "system"
		}
		c.Set(OperatorKey, operator)
		c.Next()
	}
}
