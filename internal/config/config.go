package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Load reads a .env file from the working directory if there is one.
// Values already present in the environment win.
func Load(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Debug("No .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integers. Unparsable values fall back with a warning.
func GetInt(key string, fallback int) int {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": raw}).Warn("invalid integer, using default")
		return fallback
	}
	return v
}

// GetFloat is Get for floats. Unparsable values fall back with a warning.
func GetFloat(key string, fallback float64) float64 {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": raw}).Warn("invalid number, using default")
		return fallback
	}
	return v
}

// GetDuration is Get for time.Duration values such as "10s".
func GetDuration(key string, fallback time.Duration) time.Duration {
	raw := Get(key, "")
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		log.WithFields(log.Fields{"key": key, "value": raw}).Warn("invalid duration, using default")
		return fallback
	}
	return v
}
