// Package config handles application configuration via environment variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all configurable values for the app.
type Config struct {
	Env            string
	Addr           string
	DataPath       string
	AdminEmail     string
	AdminPassword  string
	MaxUploadBytes int64
}

// Load reads environment variables and populates a Config struct.
func Load() *Config {
	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "33554432"), 10, 64)
	if err != nil {
		log.Panicf("Invalid MAX_UPLOAD_BYTES: %v", err)
	}

	return &Config{
		Env:            getEnv("ENV", "development"),
		Addr:           getEnv("ADDR", ":8080"),
		DataPath:       getEnv("DATA_PATH", "loadup.db"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@loadup.de"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "LoadUp2026!"),
		MaxUploadBytes: maxUpload,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
