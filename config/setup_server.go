package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr" env:"SERVER_ADDR"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Auth           AuthConfig     `yaml:"auth"`
	Cookie         CookieConfig   `yaml:"cookie"`
}

// LoadConfig : читает yaml-файл, затем перекрывает значения переменными окружения
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig : значения по умолчанию, которые перекрываются файлом и окружением
func DefaultConfig() *AppConfig {
	return &AppConfig{
		ServerAddr: ":8000",
		RedisConfig: RedisConfig{
			Addr:       "localhost:6379",
			ProfileTTL: "5m",
		},
		JWT: JWTConfig{
			AccessTokenTTL:  "15m",
			RefreshTokenTTL: "240h",
			Issuer:          "videohub",
		},
		Auth: AuthConfig{
			RequestTimeout: "10s",
		},
		Cookie: CookieConfig{
			Secure:   true,
			Path:     "/",
			SameSite: "strict",
		},
	}
}

// Validate : проверяет, что конфигурация пригодна для запуска
func (c *AppConfig) Validate() error {
	if c.JWT.AccessTokenSecret == "" || c.JWT.RefreshTokenSecret == "" {
		return fmt.Errorf("jwt: ключи подписи access и refresh токенов обязательны")
	}
	if c.JWT.AccessTokenSecret == c.JWT.RefreshTokenSecret {
		return fmt.Errorf("jwt: ключи подписи access и refresh токенов должны различаться")
	}

	for name, value := range map[string]string{
		"jwt.access_token_ttl":    c.JWT.AccessTokenTTL,
		"jwt.refresh_token_ttl":   c.JWT.RefreshTokenTTL,
		"auth.request_timeout":    c.Auth.RequestTimeout,
		"redisConfig.profile_ttl": c.RedisConfig.ProfileTTL,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: некорректная длительность %q: %w", name, value, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s: длительность должна быть положительной", name)
		}
	}

	return nil
}

// MustDuration : парсит уже провалидированную длительность
func MustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(fmt.Sprintf("config: некорректная длительность %q", value))
	}
	return d
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
