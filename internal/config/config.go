// Package config loads runtime configuration from the environment. A .env
// file in the working directory is read first when present, so local runs
// need no exported variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. The broker and Redis addresses are
// optional; empty values disable the corresponding integration and the
// system degrades to its in-process behavior.
type Config struct {
	Env          string     // application environment (dev/test/prod)
	LogLevel     slog.Level // minimum level for structured logs
	JWTSecret    string     // secret used to sign session tokens
	AccessTTLMin int        // session token time-to-live in minutes
	BcryptCost   int        // bcrypt cost for password hashing

	RedisAddr     string // optional host:port of a shared session store
	RedisPassword string
	RedisDB       int

	AMQPURL string // optional broker URL for audit events
}

// Load reads the environment (after an optional .env file) and fills in
// defaults for anything unset. It never exits the process: a library
// embedded in a caller must not log.Fatal over configuration.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:           get("APP_ENV", "dev"),
		LogLevel:      parseLevel(get("LOG_LEVEL", "info")),
		JWTSecret:     get("JWT_SECRET", "dev-only-secret"),
		AccessTTLMin:  getInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:    getInt("BCRYPT_COST", 10),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		AMQPURL:       firstEnv("RABBITMQ_URL", "AMQP_URL"),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
