package config

import (
	"os"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisHost     string
	RedisPort     string
	CORSOrigin    string
	ReapInterval  time.Duration
	IdleThreshold time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "4000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "http://localhost:3000"),
		ReapInterval:  getDuration("REAP_INTERVAL", time.Hour),
		IdleThreshold: getDuration("IDLE_THRESHOLD", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
