package redirect

import (
	"context"

	"geocoord/internal/ports"

	log "github.com/sirupsen/logrus"
)

// CachedResolver answers repeated lookups of the same link from a cache and
// delegates misses to the wrapped resolver. Failures are not cached, and a
// failing cache only costs an upstream request.
type CachedResolver struct {
	next  ports.RedirectResolver
	cache ports.ResponseCache
}

func NewCachedResolver(next ports.RedirectResolver, c ports.ResponseCache) *CachedResolver {
	return &CachedResolver{next: next, cache: c}
}

func (r *CachedResolver) ResolveRedirect(ctx context.Context, url string) (string, error) {
	headers, ok, err := r.cache.Get(ctx, url)
	if err != nil {
		log.WithError(err).WithField("url", url).Warn("redirect cache read failed")
	}
	if ok {
		return headers, nil
	}

	headers, err = r.next.ResolveRedirect(ctx, url)
	if err != nil {
		return "", err
	}

	if err := r.cache.Put(ctx, url, headers); err != nil {
		log.WithError(err).WithField("url", url).Warn("redirect cache write failed")
	}
	return headers, nil
}
