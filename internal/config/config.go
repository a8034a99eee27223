package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	LogLevel string `envconfig:"LOG_LEVEL"`
}

type ServerConfig struct {
	Port           int `envconfig:"SERVER_PORT" mapstructure:"port"`
	TimeoutSeconds int `envconfig:"SERVER_TIMEOUT_SECONDS" mapstructure:"timeoutSeconds"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" mapstructure:"host"`
	Port     int    `envconfig:"DB_PORT" mapstructure:"port"`
	User     string `envconfig:"DB_USER" mapstructure:"user"`
	Password string `envconfig:"DB_PASSWORD" mapstructure:"password"`
	Name     string `envconfig:"DB_NAME" mapstructure:"name"`
	SSLMode  string `envconfig:"DB_SSLMODE" mapstructure:"sslmode"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" mapstructure:"url"`
}

type JWTConfig struct {
	Secret      string `envconfig:"JWT_SECRET" mapstructure:"secret"`
	ExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" mapstructure:"expiry_hours"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" mapstructure:"host"`
	Port     int    `envconfig:"SMTP_PORT" mapstructure:"port"`
	User     string `envconfig:"SMTP_USER" mapstructure:"user"`
	Password string `envconfig:"SMTP_PASSWORD" mapstructure:"password"`
	From     string `envconfig:"SMTP_FROM" mapstructure:"from"`
}

func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Port: 8080, TimeoutSeconds: 30},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "hospital",
			SSLMode: "disable",
		},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0"},
		JWT:      JWTConfig{ExpiryHours: 24},
		SMTP:     SMTPConfig{Port: 587, From: "no-reply@medicore.example"},
		LogLevel: "info",
	}
}

// LoadConfig starts from defaults, overlays an optional config.yaml, then
// overlays environment variables, so deployments can be configured entirely
// from env.
func LoadConfig() (*Config, error) {
	config := defaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err == nil {
		if err := viper.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &config, nil
}
