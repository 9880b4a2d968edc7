package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	LogLevel       slog.Level
	ApiServicePort string

	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string

	JWTSecret       string
	TokenExpiration int64 // seconds

	// Bootstrap admin pair: a signup matching both values (plaintext
	// comparison) creates an admin account.
	AdminEmail    string
	AdminPassword string

	// Whether the Authorization header carries a "Bearer " scheme prefix.
	// Default is the raw-header convention.
	AuthBearerPrefix bool

	RedisHost     string
	RedisPort     int64
	RedisPassword string
	RedisDatabase int64

	LoginAttemptLimit  int64
	LoginAttemptWindow int64 // seconds
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),               // Default development
		LogLevel:           getLogLevel(),                                  // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8080"),             // Default 8080
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),         // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "blog_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "blog_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "blog_db"),       // Default database name
		JWTSecret:          getEnv("JWT_SECRET", "blog_secret"),            // Default secret key
		TokenExpiration:    getEnvAsInt64("TOKEN_EXPIRATION", 43200),       // Default 12 hours
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),                      // No admin bootstrap by default
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		AuthBearerPrefix:   getEnvAsBool("AUTH_BEARER_PREFIX", false),
		RedisHost:          getEnv("REDIS_HOST", "redis"),              // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),          // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),               // Default empty
		RedisDatabase:      getEnvAsInt64("REDIS_DATABASE", 0),         // Default 0
		LoginAttemptLimit:  getEnvAsInt64("LOGIN_ATTEMPT_LIMIT", 10),   // Default 10 attempts
		LoginAttemptWindow: getEnvAsInt64("LOGIN_ATTEMPT_WINDOW", 900), // Default 15 minutes
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
