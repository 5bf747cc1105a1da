package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/numbername/wscutils"
)

// CtxKeyTimedOut is set to true on the gin context when the request deadline
// passed before the handler finished.
const CtxKeyTimedOut = "TimedOut"

// TimeoutMiddleware gives every request a context deadline of timeout.
// Handlers pass c.Request.Context() to blocking calls (the Redis cache) so
// that they stop at the deadline. If the deadline passed and the handler
// wrote nothing, a 504 response is sent. A timeout of zero or less disables
// the deadline.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.Set(CtxKeyTimedOut, true)
			if !c.Writer.Written() {
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, wscutils.NewErrorResponse(wscutils.ErrcodeTimeout))
			}
		}
	}
}
