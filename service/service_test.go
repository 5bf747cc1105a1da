package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/numbername/service"
	"github.com/stretchr/testify/assert"
)

type MockConfig struct{}

func (mc *MockConfig) LoadConfig(c any) error {
	return nil
}

func (mc *MockConfig) Check() error {
	return nil
}

func (mc *MockConfig) Get(key string) (string, error) {
	return "dummy", nil
}

func TestWithConfig(t *testing.T) {
	cfg := &MockConfig{}

	s := service.NewService(nil).WithConfig(cfg)

	if s.Config != cfg {
		t.Errorf("WithConfig() = %v, want %v", s.Config, cfg)
	}
}

func TestWithDependency(t *testing.T) {
	s := service.NewService(nil).WithDependency("answer", 42)

	value, ok := s.Dependency("answer")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = s.Dependency("missing")
	assert.False(t, ok)
}

func TestRegisterRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := service.NewService(gin.New()).WithDependency("greeting", "hello")

	handler := func(c *gin.Context, s *service.Service) {
		greeting, _ := s.Dependency("greeting")
		c.String(http.StatusOK, greeting.(string))
	}
	s.RegisterRoute(http.MethodGet, "/hello", handler)
	s.CreateGroup("/v1").RegisterRoute(http.MethodPost, "/hello", handler)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/hello", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/hello", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
