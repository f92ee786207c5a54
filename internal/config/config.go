package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	HTTPAddr      string
	Environment   string
	JWTSecret     string
	MigrationsDir string

	// Канал уведомлений персонала, не обязателен
	TelegramToken  string
	TelegramChatID string

	// OTLP-экспортёр трассировки, не обязателен
	OTLPEndpoint string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		Environment:    os.Getenv("ENV"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		MigrationsDir:  os.Getenv("MIGRATIONS_DIR"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_STAFF_CHAT_ID"),
		OTLPEndpoint:   os.Getenv("OTLP_ENDPOINT"),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}

	// Обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	// Уведомления включаются только целиком
	if cfg.TelegramToken != "" && cfg.TelegramChatID == "" {
		return nil, fmt.Errorf("TELEGRAM_STAFF_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

// NotificationsEnabled настроен ли канал уведомлений
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramToken != ""
}
