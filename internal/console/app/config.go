package app

import (
	"os"
	"time"
)

type Config struct {
	APIBaseURL string // Base URL of the BloodLink backend (default: http://localhost:8080)

	CredStore string // Credential store driver (file, sqlite) (default: file)
	CredFile  string // Path for the file driver (default: ~/.bloodlink/credentials)
	CredDB    string // Path for the sqlite driver (default: ~/.bloodlink/credentials.db)
	KeyFile   string // Path to the sealing key file (default: ~/.bloodlink/seal.key)

	HTTPTimeout time.Duration // Request timeout for backend calls (default: 10s)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	home := stateDir()

	return Config{
		APIBaseURL:  getEnvOrDefault("BLOODLINK_API_URL", "http://localhost:8080"),
		CredStore:   getEnvOrDefault("BLOODLINK_CRED_STORE", "file"),
		CredFile:    getEnvOrDefault("BLOODLINK_CRED_FILE", home+"/credentials"),
		CredDB:      getEnvOrDefault("BLOODLINK_CRED_DB", home+"/credentials.db"),
		KeyFile:     getEnvOrDefault("BLOODLINK_KEY_FILE", home+"/seal.key"),
		HTTPTimeout: getEnvDurationOrDefault("BLOODLINK_HTTP_TIMEOUT", 10*time.Second),
		Env:         getEnvOrDefault("ENV", "dev"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

// stateDir is where credentials and keys live by default. Falls back to the
// working directory when no home is resolvable.
func stateDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.bloodlink"
	}
	return ".bloodlink"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
