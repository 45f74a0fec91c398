package config

import (
	"os"
	"time"
)

// Config holds all service configuration
type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		// 4444 is the conventional WebDriver port
		ServerPort:      getEnv("SERVER_PORT", "4444"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	duration, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return duration
}
