// Package router provides the gin middleware shared by numbername services.
//
// LogRequest logs one structured entry per request at the end of its
// lifecycle through a RequestLogger. LogHarbourAdapter is the RequestLogger
// backed by LogHarbour:
//
//	logAdapter := router.NewLogHarbourAdapter(logger)
//	ginRouter.Use(router.LogRequest(logAdapter))
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/remiges-tech/logharbour/logharbour"
)

// TraceIDHeader carries the request trace ID. LogRequest generates one when
// the client does not send it and echoes it in the response.
const TraceIDHeader = "X-Trace-ID"

// CtxKeyTraceID is the gin context key under which the trace ID is stored.
const CtxKeyTraceID = "TraceID"

// RequestInfo contains all the information about a request to be logged
type RequestInfo struct {
	Method       string        `json:"method"`
	Path         string        `json:"path"`
	ClientIP     string        `json:"client_ip"`
	StatusCode   int           `json:"status_code"`
	StartTime    time.Time     `json:"start_time"` // UTC
	Duration     time.Duration `json:"duration"`
	RequestSize  int64         `json:"request_size"`
	ResponseSize int64         `json:"response_size"`
	Query        string        `json:"query,omitempty"`
	UserAgent    string        `json:"user_agent,omitempty"`
	TraceID      string        `json:"trace_id,omitempty"`
	TimedOut     bool          `json:"timed_out,omitempty"`
}

// RequestLogger defines the interface that a logger must implement to be used with LogRequest middleware
type RequestLogger interface {
	Log(info RequestInfo)
}

// LogRequest returns a Gin middleware that logs details about a request at the end of the request lifecycle.
func LogRequest(logger RequestLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestSize := c.Request.ContentLength

		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(CtxKeyTraceID, traceID)
		c.Header(TraceIDHeader, traceID)

		c.Next()

		timedOut := c.GetBool(CtxKeyTimedOut)

		logger.Log(RequestInfo{
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			ClientIP:     c.ClientIP(),
			StatusCode:   c.Writer.Status(),
			StartTime:    startTime.UTC(),
			Duration:     time.Since(startTime),
			RequestSize:  requestSize,
			ResponseSize: int64(c.Writer.Size()),
			Query:        c.Request.URL.RawQuery,
			UserAgent:    c.Request.UserAgent(),
			TraceID:      traceID,
			TimedOut:     timedOut,
		})
	}
}

// LogHarbourAdapter adapts a LogHarbour logger to implement the RequestLogger interface
type LogHarbourAdapter struct {
	logger *logharbour.Logger
}

func NewLogHarbourAdapter(logger *logharbour.Logger) *LogHarbourAdapter {
	return &LogHarbourAdapter{
		logger: logger,
	}
}

func (a *LogHarbourAdapter) Log(info RequestInfo) {
	logger := a.logger.WithModule("http").
		WithOp("request").
		WithRemoteIP(info.ClientIP).
		WithClass(info.Method).
		WithInstanceId(info.Path).
		WithStatus(getStatus(info.StatusCode))

	activityData := map[string]any{
		"method":        info.Method,
		"path":          info.Path,
		"status":        info.StatusCode,
		"start_time":    info.StartTime.Format(time.RFC3339),
		"duration_ms":   info.Duration.Milliseconds(),
		"request_size":  info.RequestSize,
		"response_size": info.ResponseSize,
		"query":         info.Query,
		"user_agent":    info.UserAgent,
		"trace_id":      info.TraceID,
	}
	if info.TimedOut {
		activityData["timed_out"] = true
	}

	logger.Info().LogActivity("HTTP request completed", activityData)
}

// getStatus converts an HTTP status code to a logharbour Status
func getStatus(statusCode int) logharbour.Status {
	if statusCode >= 200 && statusCode < 400 {
		return logharbour.Success
	}
	return logharbour.Failure
}
