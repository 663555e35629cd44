package redirect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"geocoord/internal/platform/obs"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "geocoord/1.0"

// HTTPResolver implements ports.RedirectResolver with a single GET request
// that does not follow redirects.
//
// Transient failures are retried with backoff and outgoing requests are rate
// limited. The resolver is safe for concurrent use.
type HTTPResolver struct {
	session     *http.Client
	limiter     *rate.Limiter
	userAgent   string
	maxAttempts int
	backoff     time.Duration
}

// NewHTTPResolver builds a resolver with the given request timeout and
// request rate (requests per second, burst 1). rps <= 0 disables the limit.
func NewHTTPResolver(timeout time.Duration, rps float64) (*HTTPResolver, error) {
	if timeout <= 0 {
		return nil, errors.New("redirect resolver: timeout must be positive")
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	resolver := &HTTPResolver{
		session: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		limiter:     limiter,
		userAgent:   defaultUserAgent,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}

	return resolver, nil
}

// ResolveRedirect returns the status line and headers of the response to a
// GET request against url.
func (r *HTTPResolver) ResolveRedirect(ctx context.Context, url string) (_ string, err error) {
	defer obs.Time(ctx, "redirect.ResolveRedirect")(&err)

	url = strings.TrimSpace(url)
	if url == "" {
		return "", errors.New("resolve redirect: url must be non-empty")
	}

	resp, err := r.doWithRetry(ctx, func() (*http.Request, error) {
		return r.newRequest(ctx, url)
	})
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	log.WithFields(log.Fields{
		"url":      url,
		"status":   resp.StatusCode,
		"location": resp.Header.Get("Location"),
	}).Debug("redirect resolved")

	return headerBlock(resp), nil
}

// headerBlock renders a response head the way it went over the wire.
func headerBlock(resp *http.Response) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s\r\n", resp.Proto, resp.Status)
	_ = resp.Header.Write(&buf)
	buf.WriteString("\r\n")
	return buf.String()
}
