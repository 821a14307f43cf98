package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Feeds  FeedsConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Map    MapConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type FeedsConfig struct {
	PrimaryBaseURL  string
	FallbackBaseURL string
	PrimaryTimeout  time.Duration
	FallbackTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	FeedCacheTTL  time.Duration
	ShareLinkTTL  time.Duration
	MemoryEntries int
}

type MapConfig struct {
	ClusterThreshold int
	DefaultLat       float64
	DefaultLng       float64
	DefaultZoom      int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Feeds: FeedsConfig{
			PrimaryBaseURL:  viper.GetString("FEEDS_PRIMARY_BASE_URL"),
			FallbackBaseURL: viper.GetString("FEEDS_FALLBACK_BASE_URL"),
			PrimaryTimeout:  time.Duration(viper.GetInt("FEEDS_PRIMARY_TIMEOUT")) * time.Second,
			FallbackTimeout: time.Duration(viper.GetInt("FEEDS_FALLBACK_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			FeedCacheTTL:  time.Duration(viper.GetInt("FEED_CACHE_TTL")) * time.Second,
			ShareLinkTTL:  time.Duration(viper.GetInt("SHARE_LINK_TTL")) * time.Second,
			MemoryEntries: viper.GetInt("CACHE_MEMORY_ENTRIES"),
		},
		Map: MapConfig{
			ClusterThreshold: viper.GetInt("MAP_CLUSTER_THRESHOLD"),
			DefaultLat:       viper.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLng:       viper.GetFloat64("MAP_DEFAULT_LNG"),
			DefaultZoom:      viper.GetInt("MAP_DEFAULT_ZOOM"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	// Set default values if not provided
	if cfg.Feeds.PrimaryBaseURL == "" {
		cfg.Feeds.PrimaryBaseURL = "https://untileverycage-ikbq.shuttle.app"
	}
	if cfg.Feeds.FallbackBaseURL == "" {
		cfg.Feeds.FallbackBaseURL = "http://127.0.0.1:8000"
	}
	if cfg.Feeds.PrimaryTimeout == 0 {
		cfg.Feeds.PrimaryTimeout = 30 * time.Second
	}
	if cfg.Feeds.FallbackTimeout == 0 {
		cfg.Feeds.FallbackTimeout = 10 * time.Second
	}
	if cfg.Cache.FeedCacheTTL == 0 {
		cfg.Cache.FeedCacheTTL = 15 * time.Minute
	}
	if cfg.Cache.ShareLinkTTL == 0 {
		cfg.Cache.ShareLinkTTL = 30 * 24 * time.Hour
	}
	if cfg.Cache.MemoryEntries == 0 {
		cfg.Cache.MemoryEntries = 128
	}
	if cfg.Map.ClusterThreshold == 0 {
		cfg.Map.ClusterThreshold = 2800
	}
	if cfg.Map.DefaultLat == 0 {
		cfg.Map.DefaultLat = 31.42841
	}
	if cfg.Map.DefaultLng == 0 {
		cfg.Map.DefaultLng = -49.57343
	}
	if cfg.Map.DefaultZoom == 0 {
		cfg.Map.DefaultZoom = 2
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
