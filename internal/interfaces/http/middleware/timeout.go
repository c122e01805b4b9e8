package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds each request by putting a deadline on its context. Handlers
// pass the context down to gorm and redis, which abort their work when it
// expires; the handler goroutine itself is never abandoned, so there is no
// second writer racing on the response.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.JSON(http.StatusRequestTimeout, gin.H{
				"message": "Request timeout",
			})
			c.Abort()
		}
	}
}
