package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	BaseURL                string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	SessionKey             string
	SessionMaxAgeSeconds   int
	SecureCookies          bool
	GoogleClientID         string
	GoogleClientSecret     string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	redisAddr := ""
	if redisHost := getEnv("REDIS_HOST", ""); redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		BaseURL:                getEnv("BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "allocator.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              redisAddr,
		SessionKey:             getEnv("SESSION_KEY", ""),
		SessionMaxAgeSeconds:   getEnvAsInt("SESSION_MAX_AGE_SECONDS", 86400*7),
		SecureCookies:          getEnvAsBool("SECURE_COOKIES", false),
		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.SessionKey == "" {
		log.Fatal("SESSION_KEY must not be empty (cookie signing key)")
	}
	if cfg.SessionMaxAgeSeconds <= 0 {
		log.Fatal("SESSION_MAX_AGE_SECONDS must be greater than 0")
	}
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_SECRET must be set when GOOGLE_CLIENT_ID is")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
