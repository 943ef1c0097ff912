package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const devJWTSecret = "super-secret-key-change-in-production"

// CORSConfig holds the values written into Access-Control-* headers
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Config holds process-wide server settings loaded once at startup
type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDB         string
	RedisURI        string
	JWTSecret       string
	TokenTTL        time.Duration
	CORS            CORSConfig
	LegacyAsk       bool
	LogLevel        string
	LogFormat       string
	PersonasFile    string
	ShutdownTimeout time.Duration
}

// Load reads the server configuration from the environment
func Load() *Config {
	return &Config{
		HTTPPort:  getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "advisoryboard"),
		RedisURI:  getEnv("REDIS_URI", "localhost:6379"),
		JWTSecret: getEnv("JWT_SECRET", devJWTSecret),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
		},
		LegacyAsk:       getBool("LEGACY_ASK_ENABLED", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		PersonasFile:    os.Getenv("PERSONAS_FILE"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// UsesDevSecret reports whether JWT_SECRET was left unset
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

// RedisOptions accepts either a redis:// URL or a bare host:port
func (c *Config) RedisOptions() (*redis.Options, error) {
	if strings.HasPrefix(c.RedisURI, "redis://") || strings.HasPrefix(c.RedisURI, "rediss://") {
		return redis.ParseURL(c.RedisURI)
	}
	return &redis.Options{Addr: c.RedisURI}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func getBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
