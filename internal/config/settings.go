package config

import (
	"runtime"
	"time"
)

// Settings shared by the server and the command line.
type Settings struct {
	Port      string
	LogLevel  string
	LogFormat string

	RedirectTimeout  time.Duration
	RedirectRPS      float64
	RedirectCacheTTL time.Duration
	RedisURL         string

	ZoneinfoDir string

	BatchWorkers int
}

// FromEnv collects Settings from the environment. Call Load first to pick up
// a .env file.
func FromEnv() Settings {
	return Settings{
		Port:             Get("PORT", "8080"),
		LogLevel:         Get("LOG_LEVEL", "info"),
		LogFormat:        Get("LOG_FORMAT", "text"),
		RedirectTimeout:  GetDuration("REDIRECT_TIMEOUT", 10*time.Second),
		RedirectRPS:      GetFloat("REDIRECT_RPS", 2),
		RedirectCacheTTL: GetDuration("REDIRECT_CACHE_TTL", time.Hour),
		RedisURL:         Get("REDIS_URL", ""),
		ZoneinfoDir:      Get("ZONEINFO_DIR", "/usr/share/zoneinfo"),
		BatchWorkers:     GetInt("BATCH_WORKERS", runtime.NumCPU()),
	}
}
