// config — источник загрузки конфигурации для dispatcher-service.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Upstreams UpstreamsConfig `yaml:"upstreams"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
	Session   SessionConfig   `yaml:"session"`
	Cache     CacheConfig     `yaml:"cache"`
}

// HTTPConfig — публичный HTTP-сервер диспетчера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50070"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"50075"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// UpstreamsConfig — адреса внутренних HTTP-сервисов.
type UpstreamsConfig struct {
	UsersURL     string `yaml:"users_url"     env:"UPSTREAM_USERS_URL"     env-default:"http://localhost:50071"`
	GeneratorURL string `yaml:"generator_url" env:"UPSTREAM_GENERATOR_URL" env-default:"http://localhost:50072"`
	ClickerURL   string `yaml:"clicker_url"   env:"UPSTREAM_CLICKER_URL"   env-default:"http://localhost:50073"`
}

// TimeoutConfig — таймауты запросов.
// Upstream ограничивает каждый исходящий вызов: в исходной системе лимитов
// не было вовсе, и зависший апстрим вешал запрос целиком.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service"  env:"SERVICE_TIMEOUT"  env-default:"15s"`
	Upstream time.Duration `yaml:"upstream" env:"UPSTREAM_TIMEOUT" env-default:"5s"`
}

// SessionConfig — имена и срок жизни сессионных cookie.
//
// CacheTTL > 0 включает локальный кэш резолва токена (см. internal/cache);
// это вводит окно устаревания, равное TTL, поэтому по умолчанию кэш выключен.
type SessionConfig struct {
	AccessCookie  string        `yaml:"access_cookie"  env:"SESSION_ACCESS_COOKIE"  env-default:"access-token"`
	RefreshCookie string        `yaml:"refresh_cookie" env:"SESSION_REFRESH_COOKIE" env-default:"refresh-token"`
	CookieTTL     time.Duration `yaml:"cookie_ttl"     env:"SESSION_COOKIE_TTL"     env-default:"5h"`
	CacheTTL      time.Duration `yaml:"cache_ttl"      env:"SESSION_CACHE_TTL"      env-default:"0s"`
}

// CacheConfig — подключение к Redis; пустой URL отключает кэш.
type CacheConfig struct {
	RedisURL string `yaml:"redis_url" env:"CACHE_REDIS_URL" env-default:""`
	Prefix   string `yaml:"prefix"    env:"CACHE_PREFIX"    env-default:"dispatcher:session:"`
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	return &cfg, nil
}
