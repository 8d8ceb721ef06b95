package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server                 ServerConfig
	Database               DatabaseConfig
	JWT                    JWTConfig
	SMTP                   SMTPConfig
	Uploads                UploadConfig
	Turnstile              TurnstileConfig
	AdminNotificationEmail string
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type UploadConfig struct {
	Dir              string
	MaxImageBytes    int64
	MaxDocumentBytes int64
}

type TurnstileConfig struct {
	// Secret empty disables verification (local development).
	Secret    string
	VerifyURL string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "sauvetage:sauvetage@tcp(localhost:3306)/sauvetage?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			Secret: getenv("JWT_SECRET", "change-me-in-production"),
			Expiry: 24 * time.Hour,
			Issuer: "sauvetage",
		},
		SMTP: SMTPConfig{
			Host:     getenv("SMTP_HOST", "localhost"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: getenv("SMTP_USERNAME", ""),
			Password: getenv("SMTP_PASSWORD", ""),
			From:     getenv("SMTP_FROM", "contact@sauvetage-secourisme.fr"),
		},
		Uploads: UploadConfig{
			Dir:              getenv("UPLOADS_DIR", "public/uploads"),
			MaxImageBytes:    5 << 20,
			MaxDocumentBytes: 10 << 20,
		},
		Turnstile: TurnstileConfig{
			Secret:    getenv("TURNSTILE_SECRET", ""),
			VerifyURL: getenv("TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify"),
		},
		AdminNotificationEmail: getenv("ADMIN_NOTIFICATION_EMAIL", "contact@sauvetage-secourisme.fr"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
