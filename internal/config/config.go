package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the restaurant service.
// It is built once at startup and passed by reference into the
// components that need it; nothing reads the environment after Load.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	CookTime CookTimeConfig
	LogLevel string
}

// HTTPConfig holds the HTTP server bind address.
type HTTPConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	MaxConns int
}

// RabbitMQConfig holds RabbitMQ connection configuration.
// An empty Host disables messaging entirely.
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// CookTimeConfig holds the inclusive bounds, in minutes, for
// randomized cook-time generation.
type CookTimeConfig struct {
	Min int
	Max int
}

// Load reads configuration from the environment, after loading an
// optional .env file. Every value has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Host: getEnv("HTTP_HOST", "127.0.0.1"),
			Port: getEnvInt("HTTP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnvInt("PG_PORT", 5432),
			User:     getEnv("PG_USER", "postgres"),
			Password: getEnv("PG_PWD", ""),
			Database: getEnv("PG_DBNAME", "sukab_restaurant"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		CookTime: CookTimeConfig{
			Min: getEnvInt("COOK_TIME_MIN", 5),
			Max: getEnvInt("COOK_TIME_MAX", 15),
		},
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants. Called at startup so a
// misconfigured process fails fast instead of misbehaving at request time.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.Database.MaxConns)
	}
	if c.CookTime.Min < 1 {
		return fmt.Errorf("COOK_TIME_MIN must be at least 1, got %d", c.CookTime.Min)
	}
	if c.CookTime.Min > c.CookTime.Max {
		return fmt.Errorf("COOK_TIME_MIN (%d) must not exceed COOK_TIME_MAX (%d)", c.CookTime.Min, c.CookTime.Max)
	}
	return nil
}

// DatabaseURL returns a PostgreSQL connection URL.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQURL returns an AMQP connection URL.
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

// Enabled reports whether RabbitMQ messaging is configured.
func (c *RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
