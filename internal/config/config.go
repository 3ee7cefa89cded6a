package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8787"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Storage  string // "redis" (durable) or "memory" (ephemeral, dev only)
	SeedFile string // optional YAML with initial content for an empty store

	// Admin credentials. A bcrypt hash takes precedence over the plain
	// password; both drive the single static back-office account.
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	ChatAgentURL string // base URL of the external chat agent, empty = chat proxy disabled

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // cap on the wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedOrigins []string // CORS origins, default "*"
	AllowedHosts   []string // optional, restrict access to specific Host headers
	AllowedCIDRS   []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy     bool     // true => trust X-Forwarded-For headers

	// Token-bucket rate limit applied to public write endpoints
	// (contact form, review submission).
	RateLimitBurst  int
	RateLimitPerMin int
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CREZIA_LISTEN_PORT", ":8787"),
		ShutdownTimeout: mustDuration("CREZIA_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CREZIA_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CREZIA_PRETTY_LOG", true),

		// Storage
		Storage:  getenv("CREZIA_STORAGE", StorageRedis),
		SeedFile: getenv("CREZIA_SEED_FILE", ""),

		// Admin account
		AdminEmail:        getenv("CREZIA_ADMIN_EMAIL", "admin@creziapro.com"),
		AdminPassword:     getenv("CREZIA_ADMIN_PASSWORD", "password"),
		AdminPasswordHash: getenv("CREZIA_ADMIN_PASSWORD_HASH", ""),

		// Chat agent
		ChatAgentURL: getenv("CREZIA_CHAT_AGENT_URL", ""),

		// Redis settings
		RedisAddr:           getenv("CREZIA_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("CREZIA_REDIS_USERNAME", ""),
		RedisPassword:       getenv("CREZIA_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CREZIA_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("CREZIA_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("CREZIA_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("CREZIA_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("CREZIA_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("CREZIA_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("CREZIA_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("CREZIA_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("CREZIA_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("CREZIA_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedOrigins: splitAndTrim(getenv("CREZIA_ALLOWED_ORIGINS", "*")),
		AllowedHosts:   splitAndTrim(getenv("CREZIA_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   splitAndTrim(getenv("CREZIA_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("CREZIA_TRUST_PROXY", true),

		// Rate limiting
		RateLimitBurst:  getenvInt("CREZIA_RATE_LIMIT_BURST", 5),
		RateLimitPerMin: getenvInt("CREZIA_RATE_LIMIT_PER_MIN", 10),
	}

	if cfg.Storage != StorageRedis && cfg.Storage != StorageMemory {
		panic(fmt.Sprintf("❌ FATAL: CREZIA_STORAGE must be %q or %q, got %q",
			StorageRedis, StorageMemory, cfg.Storage))
	}
	if cfg.Storage == StorageRedis && cfg.RedisAddr == "" {
		panic("❌ FATAL: CREZIA_REDIS_ADDR is required when CREZIA_STORAGE=redis")
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
