package main

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-resty/resty/v2"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/numbername/cache"
	"github.com/remiges-tech/numbername/internal/webservices/numbername"
	"github.com/remiges-tech/numbername/numname"
	"github.com/remiges-tech/numbername/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	l := logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.DefaultPriority), "client-test", io.Discard)
	s := service.NewService(gin.New()).
		WithLogHarbour(l).
		WithDependency(numbername.DepConverter, numname.NewEnglishConverter()).
		WithDependency(numbername.DepNameCache, cache.NewRedisNameCache(rdb, 0))
	_, err = numbername.RegisterHandlers(s)
	require.NoError(t, err)

	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetName(t *testing.T) {
	srv := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	name, err := getName(client, "2000", numbername.ModeKata)
	require.NoError(t, err)
	assert.Equal(t, "two thousand", name)

	name, err = getName(client, "99", numbername.ModeFull)
	require.NoError(t, err)
	assert.Equal(t, "ninety-nine", name)
}

func TestGetNameError(t *testing.T) {
	srv := newTestServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	_, err := getName(client, "ten", numbername.ModeKata)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "number: invalid_number (ten)")

	_, err = getName(client, "12345", numbername.ModeKata)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Number: max (9999)")
}
