package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8080"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	FrontendURL string        `env:"FRONTEND_URL, default=http://localhost:5173"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SMTP      SMTPConfig
	Storage   StorageConfig
	Recaptcha RecaptchaConfig
	Seed      SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@glowmart.example"`
}

type StorageConfig struct {
	Endpoint      string `env:"STORAGE_ENDPOINT,   default=localhost:9000"`
	AccessKey     string `env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `env:"STORAGE_SECRET_KEY"`
	Bucket        string `env:"STORAGE_BUCKET,     default=shop-images"`
	Region        string `env:"STORAGE_REGION"`
	UseSSL        bool   `env:"STORAGE_USE_SSL,    default=false"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_URL, default=http://localhost:9000"`
}

type RecaptchaConfig struct {
	Secret string `env:"RECAPTCHA_SECRET"`
}

type SeedConfig struct {
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@example.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=adminpassword"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
