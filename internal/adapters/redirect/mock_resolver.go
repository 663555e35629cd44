package redirect

import (
	"context"
	"fmt"
	"sync"
)

// MockResolver answers from a fixed url -> header block table and counts
// calls per url.
type MockResolver struct {
	mu      sync.Mutex
	headers map[string]string
	calls   map[string]int
}

func NewMockResolver(headers map[string]string) *MockResolver {
	m := make(map[string]string, len(headers))
	for k, v := range headers {
		m[k] = v
	}
	return &MockResolver{headers: m, calls: make(map[string]int)}
}

func (r *MockResolver) ResolveRedirect(ctx context.Context, url string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[url]++

	h, ok := r.headers[url]
	if !ok {
		return "", fmt.Errorf("missing redirect for %q", url)
	}
	return h, nil
}

// Calls returns how often url was resolved.
func (r *MockResolver) Calls(url string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls[url]
}
