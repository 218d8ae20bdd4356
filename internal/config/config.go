package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Email     EmailConfig
	ImageHost ImageHostConfig
	Access    AccessConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// RedisConfig enables the last-good report cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type EmailConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	UserID     string
	ToEmail    string
	FromName   string
	Timeout    time.Duration
}

type ImageHostConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// AccessConfig holds the static code unlocking the reporting and
// vehicle-registration views. Not a security boundary.
type AccessConfig struct {
	Code string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "checklist")
	v.SetDefault("DATABASE_PASSWORD", "checklist")
	v.SetDefault("DATABASE_NAME", "checklist")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("EMAIL_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("EMAIL_SERVICE_ID", "")
	v.SetDefault("EMAIL_TEMPLATE_ID", "")
	v.SetDefault("EMAIL_USER_ID", "")
	v.SetDefault("EMAIL_TO", "")
	v.SetDefault("EMAIL_FROM_NAME", "Sistema de Checklist")
	v.SetDefault("EMAIL_TIMEOUT", "30s")
	v.SetDefault("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload")
	v.SetDefault("IMGBB_API_KEY", "")
	v.SetDefault("IMGBB_TIMEOUT", "60s")
	v.SetDefault("ACCESS_CODE", "")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durationOr(v.GetString("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Email: EmailConfig{
			Endpoint:   v.GetString("EMAIL_ENDPOINT"),
			ServiceID:  v.GetString("EMAIL_SERVICE_ID"),
			TemplateID: v.GetString("EMAIL_TEMPLATE_ID"),
			UserID:     v.GetString("EMAIL_USER_ID"),
			ToEmail:    v.GetString("EMAIL_TO"),
			FromName:   v.GetString("EMAIL_FROM_NAME"),
			Timeout:    durationOr(v.GetString("EMAIL_TIMEOUT"), 30*time.Second),
		},
		ImageHost: ImageHostConfig{
			Endpoint: v.GetString("IMGBB_ENDPOINT"),
			APIKey:   v.GetString("IMGBB_API_KEY"),
			Timeout:  durationOr(v.GetString("IMGBB_TIMEOUT"), 60*time.Second),
		},
		Access: AccessConfig{
			Code: v.GetString("ACCESS_CODE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func durationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
