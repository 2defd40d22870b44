package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"

	"git.thinkinpower.net/cardgen/mod"
)

// Recovery turns panics into a failure envelope instead of a dropped
// connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf("panic recovered: %v\n%s", err, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "内部错误"})
			}
		}()
		c.Next()
	}
}
