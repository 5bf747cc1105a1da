package config

import "time"

// AppConfig is the configuration of the numbername server.
type AppConfig struct {
	AppName        string `json:"app_name"`
	AppServerPort  string `json:"app_server_port"`
	LogPriority    string `json:"log_priority"`
	ErrorTypesFile string `json:"error_types_file"`
	RedisAddr      string `json:"redis_addr"`
	RedisPassword  string `json:"redis_password"`
	RedisDB        int    `json:"redis_db"`
	CacheTTLSecs   int    `json:"cache_ttl_secs"`
	RequestTimeout int    `json:"request_timeout_secs"`
	EnableMetrics  bool   `json:"enable_metrics"`
	DefaultMode    string `json:"default_mode"`
}

// DefaultAppConfig returns the values used for anything the config source
// leaves unset.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:        "numbername",
		AppServerPort:  "8080",
		LogPriority:    "info",
		CacheTTLSecs:   3600,
		RequestTimeout: 5,
		EnableMetrics:  true,
		DefaultMode:    "kata",
	}
}

func (c AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

func (c AppConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
