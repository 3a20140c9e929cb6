package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Search    SearchConfig    `mapstructure:"search"`
	Queue     QueueConfig     `mapstructure:"queue"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Dedup     DedupConfig     `mapstructure:"dedup"`
	Log       LogConfig       `mapstructure:"log"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// IsProduction 是否為正式環境
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// CatalogConfig 外部食譜目錄設定
type CatalogConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	Retries           int           `mapstructure:"retries"`
	RetryWait         time.Duration `mapstructure:"retry_wait"`
	Concurrency       int           `mapstructure:"concurrency"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	BreakerFailures   uint32        `mapstructure:"breaker_failures"`
	BreakerTimeout    time.Duration `mapstructure:"breaker_timeout"`
}

// SearchConfig 搜尋設定
type SearchConfig struct {
	MaxResults         int  `mapstructure:"max_results"`
	DisplayIngredients int  `mapstructure:"display_ingredients"`
	Translate          bool `mapstructure:"translate"`
}

// QueueConfig 搜尋併發閘門設定
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
	MaxSize int `mapstructure:"max_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// DedupConfig 重複請求過濾設定
type DedupConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Window    time.Duration `mapstructure:"window"`
	RedisAddr string        `mapstructure:"redis_addr"`
	RedisDB   int           `mapstructure:"redis_db"`
}

// LogConfig 日誌設定
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 為選用
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定常用環境變量
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("app.env", "APP_ENV")
	_ = viper.BindEnv("catalog.base_url", "CATALOG_BASE_URL")
	_ = viper.BindEnv("catalog.timeout", "CATALOG_TIMEOUT")
	_ = viper.BindEnv("catalog.concurrency", "CATALOG_CONCURRENCY")
	_ = viper.BindEnv("search.translate", "SEARCH_TRANSLATE")
	_ = viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	_ = viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	_ = viper.BindEnv("dedup.window", "DEDUP_WINDOW")
	_ = viper.BindEnv("dedup.redis_addr", "REDIS_ADDR")
	_ = viper.BindEnv("log.level", "LOG_LEVEL")
	_ = viper.BindEnv("log.file", "LOG_FILE")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-finder")

	// 伺服器設定
	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "120s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.request_timeout", "100s")
	viper.SetDefault("server.max_body_bytes", 1<<20)

	// 食譜目錄設定
	viper.SetDefault("catalog.base_url", "https://www.themealdb.com/api/json/v1/1")
	viper.SetDefault("catalog.timeout", "20s")
	viper.SetDefault("catalog.retries", 1)
	viper.SetDefault("catalog.retry_wait", "200ms")
	viper.SetDefault("catalog.concurrency", 5)
	viper.SetDefault("catalog.requests_per_second", 0)
	viper.SetDefault("catalog.breaker_failures", 5)
	viper.SetDefault("catalog.breaker_timeout", "30s")

	// 搜尋設定
	viper.SetDefault("search.max_results", 20)
	viper.SetDefault("search.display_ingredients", 10)
	viper.SetDefault("search.translate", true)

	// 隊列設定
	viper.SetDefault("queue.workers", 8)
	viper.SetDefault("queue.max_size", 100)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 60)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重設定
	viper.SetDefault("dedup.enabled", true)
	viper.SetDefault("dedup.window", "1s")
	viper.SetDefault("dedup.redis_addr", "")
	viper.SetDefault("dedup.redis_db", 0)

	// 日誌設定
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base url is required")
	}
	if config.Catalog.Timeout <= 0 {
		return fmt.Errorf("invalid catalog timeout")
	}
	if config.Catalog.Retries < 0 {
		return fmt.Errorf("invalid catalog retries")
	}
	if config.Catalog.Concurrency <= 0 {
		return fmt.Errorf("invalid catalog concurrency")
	}
	if config.Catalog.RequestsPerSecond < 0 {
		return fmt.Errorf("invalid catalog requests per second")
	}

	if config.Search.MaxResults <= 0 {
		return fmt.Errorf("invalid search max results")
	}
	if config.Search.DisplayIngredients <= 0 {
		return fmt.Errorf("invalid search display ingredients")
	}

	if config.Queue.Workers <= 0 {
		return fmt.Errorf("invalid queue workers")
	}
	if config.Queue.MaxSize < 0 {
		return fmt.Errorf("invalid queue max size")
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit requests")
		}
		if config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}
