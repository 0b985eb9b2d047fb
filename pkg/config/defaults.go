// Package config provides centralized default values for the SAUNTRIX content service
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

// Server defaults
var (
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
)

// Remote store defaults. StoreURL/StoreAnonKey empty means the service runs
// in offline mode: the cache stays at built-in defaults and all mutations
// are rejected with ErrStoreUnavailable.
var (
	StoreURL     string
	StoreAnonKey string
	StoreTimeout time.Duration
)

// Realtime defaults
var (
	RealtimeHeartbeatInterval time.Duration
	RealtimeMaxReconnectWait  time.Duration
)

// Auth defaults
var (
	AdminPasswordHash string
	JWTSecret         string
	AuthTokenTTL      time.Duration
)

// SSE defaults
var (
	SSEClientBufferSize int
)

// Logging defaults
var (
	LogVerbose bool
)

func init() {
	loadEnvFile()

	ServerPort = getEnvString("PORT", "10000")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second)

	StoreURL = getEnvString("SUPABASE_URL", "")
	StoreAnonKey = getEnvString("SUPABASE_ANON_KEY", "")
	StoreTimeout = getEnvDuration("STORE_TIMEOUT", 15*time.Second)

	RealtimeHeartbeatInterval = getEnvDuration("REALTIME_HEARTBEAT_INTERVAL", 30*time.Second)
	RealtimeMaxReconnectWait = getEnvDuration("REALTIME_MAX_RECONNECT_WAIT", 2*time.Minute)

	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	JWTSecret = getEnvString("JWT_SECRET", "")
	AuthTokenTTL = getEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour)

	SSEClientBufferSize = getEnvInt("SSE_CLIENT_BUFFER_SIZE", 16)

	LogVerbose = getEnvBool("LOG_VERBOSE", false)
}
