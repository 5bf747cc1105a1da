package infra

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/remiges-tech/logharbour/logharbour"
	"github.com/remiges-tech/numbername/cache"
	"github.com/remiges-tech/numbername/config"
	"github.com/remiges-tech/numbername/logger"
	"github.com/remiges-tech/numbername/metrics"
	"github.com/remiges-tech/numbername/wscutils"
)

const redisPingTimeout = 2 * time.Second

// Services are the infrastructure handles the numbername server runs on.
type Services struct {
	Logger  *logharbour.Logger
	Cache   cache.NameCache
	Metrics *metrics.PrometheusMetrics
	redis   *redis.Client
}

// InitInfraServices sets up required infrastructure services from cfg. The
// Redis cache is only connected when cfg.RedisAddr is set.
func InitInfraServices(cfg config.AppConfig) (*Services, error) {
	l, err := logger.LoadLogger(cfg.AppName, cfg.LogPriority)
	if err != nil {
		return nil, err
	}

	if cfg.ErrorTypesFile != "" {
		if err := loadErrorTypes(cfg.ErrorTypesFile); err != nil {
			return nil, err
		}
	}

	s := &Services{
		Logger:  l,
		Cache:   cache.NoCache{},
		Metrics: metrics.NewPrometheusMetrics(prometheus.NewRegistry()),
	}
	s.Metrics.SetCustomBuckets(metrics.ConversionDuration, metrics.ConversionDurationBuckets)
	metrics.RegisterServiceMetrics(s.Metrics)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		s.redis = rdb
		s.Cache = cache.NewRedisNameCache(rdb, cfg.CacheTTL())
		s.Metrics.Record(metrics.CacheEnabled, 1)
	}

	l.WithModule("infra").Info().LogActivity("infrastructure initialised", map[string]any{
		"redis":   cfg.RedisAddr != "",
		"metrics": cfg.EnableMetrics,
	})
	return s, nil
}

// Close releases the connections opened by InitInfraServices.
func (s *Services) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

func loadErrorTypes(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open error types file: %w", err)
	}
	defer f.Close()
	return wscutils.LoadErrorTypes(f)
}
