package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis, used for chat rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// openai chat completions
	OpenAIBaseURL string `toml:"openai_base_url"`
	ChatModel     string `toml:"chat_model"`
	// ChatRateLimitAllowedPerMin limits the coach chat requests per minute
	ChatRateLimitAllowedPerMin int `toml:"chat_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	tomlBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var tomlConfig Toml
	if err := toml.Unmarshal(tomlBytes, &tomlConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	return cfg, nil
}
