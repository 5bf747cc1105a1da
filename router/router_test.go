package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type captureLogger struct {
	mu    sync.Mutex
	infos []RequestInfo
}

func (l *captureLogger) Log(info RequestInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, info)
}

func TestLogRequest(t *testing.T) {
	logger := &captureLogger{}

	r := gin.New()
	r.Use(LogRequest(logger))
	r.GET("/numbername/:number", func(c *gin.Context) {
		c.String(http.StatusOK, "two hundred")
	})

	t.Run("generates trace id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/numbername/200?mode=kata", nil))

		require.Len(t, logger.infos, 1)
		info := logger.infos[0]
		assert.Equal(t, http.MethodGet, info.Method)
		assert.Equal(t, "/numbername/200", info.Path)
		assert.Equal(t, "mode=kata", info.Query)
		assert.Equal(t, http.StatusOK, info.StatusCode)
		assert.Equal(t, int64(len("two hundred")), info.ResponseSize)
		assert.NotEmpty(t, info.TraceID)
		assert.Equal(t, info.TraceID, w.Header().Get(TraceIDHeader))
	})

	t.Run("keeps client trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/numbername/300", nil)
		req.Header.Set(TraceIDHeader, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Len(t, logger.infos, 2)
		assert.Equal(t, "trace-123", logger.infos[1].TraceID)
	})
}

func TestLogHarbourAdapter(t *testing.T) {
	var buf bytes.Buffer
	l := logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.DefaultPriority), "router-test", &buf)

	NewLogHarbourAdapter(l).Log(RequestInfo{
		Method:     http.MethodGet,
		Path:       "/numbername/40",
		StatusCode: http.StatusOK,
		StartTime:  time.Now().UTC(),
		TraceID:    "trace-abc",
	})

	out := buf.String()
	assert.True(t, strings.Contains(out, "HTTP request completed"), out)
	assert.True(t, strings.Contains(out, "trace-abc"), out)
}

func TestGetStatus(t *testing.T) {
	assert.Equal(t, logharbour.Success, getStatus(http.StatusOK))
	assert.Equal(t, logharbour.Success, getStatus(http.StatusFound))
	assert.Equal(t, logharbour.Failure, getStatus(http.StatusBadRequest))
	assert.Equal(t, logharbour.Failure, getStatus(http.StatusGatewayTimeout))
}

func TestTimeoutMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TimeoutMiddleware(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/quick", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"status":"error","data":null,"messages":[{"msgid":1008,"errcode":"request_timeout"}]}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quick", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestTimeoutMiddlewareDisabled(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		r := gin.New()
		r.Use(TimeoutMiddleware(timeout))
		r.GET("/quick", func(c *gin.Context) {
			_, hasDeadline := c.Request.Context().Deadline()
			assert.False(t, hasDeadline)
			assert.NoError(t, c.Request.Context().Err())
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quick", nil))
		assert.Equal(t, http.StatusOK, w.Code, "timeout %v", timeout)
		assert.Equal(t, "ok", w.Body.String())
	}
}

func TestSetupRouterWithoutTimeout(t *testing.T) {
	var buf bytes.Buffer
	l := logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.DefaultPriority), "router-test", &buf)
	r := SetupRouter(l, 0)
	r.GET("/quick", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quick", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, buf.String(), `"timed_out":true`)
}
