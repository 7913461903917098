package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	Host     string
	HTTPPort int
	GRPCPort int

	AllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	SessionCookies bool
	CatalogPath    string

	AMQPURL      string
	AMQPExchange string

	OTelEnabled     bool
	OTelSampleRatio float64
}

func Load() Config {
	return Config{
		AppEnv:            getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Host:              getEnv("HOST", "0.0.0.0"),
		HTTPPort:          getEnvInt("HTTP_PORT", 3000),
		GRPCPort:          getEnvInt("GRPC_PORT", 3001),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		SessionCookies:    getEnvBool("SESSION_COOKIES", true),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		AMQPURL:           getEnv("AMQP_URL", ""),
		AMQPExchange:      getEnv("AMQP_EXCHANGE", "storefront.events"),
		OTelEnabled:       getEnvBool("OTEL_ENABLED", false),
		OTelSampleRatio:   getEnvFloat("OTEL_SAMPLER_RATIO", 1),
	}
}

func (c Config) Production() bool {
	return strings.EqualFold(c.AppEnv, "prod") || strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
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

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
