package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	LogLevel   string

	DatabaseURL string

	JWTSecret   []byte
	JWTTTLHours int

	HnbAPIURL string

	AdminCreateOnStartup bool
	AdminUsername        string
	AdminEmail           string
	AdminPassword        string

	KafkaAddress string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env file not found: %v, using system environment variables", err)
	}

	cfg := &Config{
		ServerPort: EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:   EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		JWTTTLHours: EnvIntDefault("JWT_TTL_HOURS", 24),

		HnbAPIURL: EnvDefault("HNB_API_URL", "https://api.hnb.hr/tecajn-v2/v3?valuta="),

		AdminCreateOnStartup: EnvBoolDefault("ADMIN_CREATE_ON_STARTUP", true),
		AdminUsername:        EnvDefault("ADMIN_USERNAME", "admin"),
		AdminEmail:           EnvDefault("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),

		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
	}

	MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	if cfg.AdminCreateOnStartup {
		MustNonEmpty(cfg.AdminPassword, "ADMIN_PASSWORD")
	}

	return cfg
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
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

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
