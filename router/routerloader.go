package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
)

// SetupRouter creates the gin engine with recovery, request logging and
// the request timeout applied globally.
func SetupRouter(l *logharbour.Logger, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LogRequest(NewLogHarbourAdapter(l)))
	r.Use(TimeoutMiddleware(timeout))
	return r
}
