package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/ims-admin/pkg/database"
)

// Config holds the runtime configuration of the IMS backend
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	UploadDir      string
	RequestTimeout time.Duration

	Database database.Config

	TracingEnabled bool
	JaegerEndpoint string

	RedisAddr          string
	RateLimitPerMinute int
	TrustProxyHeaders  bool

	KafkaBrokers []string

	ResetPasswordPlaceholder string
	SeedOnStart              bool
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "ims-backend"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "4000"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "imsdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		TracingEnabled:           getBool("TRACING_ENABLED", false),
		JaegerEndpoint:           getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RateLimitPerMinute:       getInt("RATE_LIMIT_PER_MINUTE", 120),
		TrustProxyHeaders:        getBool("TRUST_PROXY_HEADERS", false),
		KafkaBrokers:             getList("KAFKA_BROKERS"),
		ResetPasswordPlaceholder: getEnv("RESET_PASSWORD_PLACEHOLDER", "Reset123!"),
		SeedOnStart:              getBool("SEED_ON_START", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

// getList splits a comma separated variable, dropping empty items
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
