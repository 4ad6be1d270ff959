package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the menu service.
type Config struct {
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
}

// DatabaseConfig holds PostgreSQL connection configuration. An empty Host
// means the service runs on the in-memory store.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// RabbitMQConfig holds RabbitMQ connection configuration. An empty Host
// disables event publishing.
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from the environment, with .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, err := intEnv("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	mqPort, err := intEnv("RABBITMQ_PORT", 5672)
	if err != nil {
		return nil, err
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: getEnv("DB_NAME", "qrmenu"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     os.Getenv("RABBITMQ_HOST"),
			Port:     mqPort,
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}, nil
}

// DatabaseEnabled reports whether a PostgreSQL backend is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// RabbitMQEnabled reports whether event publishing is configured.
func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQ.Host != ""
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

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
