package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendAddr    string
	BackendToken   string
	BackendTimeout time.Duration

	KafkaBrokers []string
	AuditTopic   string
	AuditEnabled bool

	LogLevel string
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Error getting working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}
}

func Load() Config {
	loadEnv()

	return Config{
		Port:           getenv("PORT", "9000"),
		BackendAddr:    getenv("BACKEND_ADDRESS", "http://localhost:8080"),
		BackendToken:   os.Getenv("BACKEND_TOKEN"),
		BackendTimeout: getduration("BACKEND_TIMEOUT", 10*time.Second),
		KafkaBrokers:   strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
		AuditTopic:     getenv("AUDIT_TOPIC", "order_action_audit"),
		AuditEnabled:   getbool("AUDIT_ENABLED", false),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", value, key)
		return fallback
	}
	return parsed
}

func getduration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", value, key)
		return fallback
	}
	return parsed
}
