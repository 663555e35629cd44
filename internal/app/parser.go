package app

import (
	"fmt"

	"geocoord/internal/adapters/cache"
	"geocoord/internal/adapters/redirect"
	"geocoord/internal/adapters/timezone"
	"geocoord/internal/config"
	"geocoord/internal/ports"
	"geocoord/internal/services"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// NewParser wires the concrete redirect resolver and timezone locator behind
// the parser's ports. The returned close func releases the cache connection.
//
// A non-positive cache TTL disables resolution caching; REDIS_URL selects
// the shared Redis cache over the in-memory one.
func NewParser(s config.Settings) (*services.Parser, func() error, error) {
	noop := func() error { return nil }

	httpResolver, err := redirect.NewHTTPResolver(s.RedirectTimeout, s.RedirectRPS)
	if err != nil {
		return nil, noop, fmt.Errorf("new parser: %w", err)
	}

	var resolver ports.RedirectResolver = httpResolver
	closeFn := noop

	if s.RedirectCacheTTL > 0 {
		var c ports.ResponseCache
		if s.RedisURL != "" {
			opts, err := redis.ParseURL(s.RedisURL)
			if err != nil {
				return nil, noop, fmt.Errorf("new parser: parse REDIS_URL: %w", err)
			}
			client := redis.NewClient(opts)
			c = cache.NewRedisResponseCache(client, s.RedirectCacheTTL)
			closeFn = client.Close

			log.WithField("addr", opts.Addr).Info("Using redis redirect cache")
		} else {
			c = cache.NewMemoryResponseCache(s.RedirectCacheTTL)
		}
		resolver = redirect.NewCachedResolver(httpResolver, c)
	}

	locator := timezone.NewTabLocator(s.ZoneinfoDir)

	return services.NewParser(resolver, locator), closeFn, nil
}
