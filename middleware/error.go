package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/geo-audit/backend/logging"
)

// ErrorHandler recovers from panics in downstream handlers and answers
// with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.Log.WithFields(logrus.Fields{
					"panic": err,
					"path":  c.Request.URL.Path,
				}).Errorf("panic recovered\n%s", debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
