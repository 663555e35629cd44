package ports

import "context"

// Contract for following a short link without fetching its target.
type RedirectResolver interface {
	// Return the raw response header block (status line and headers) of a
	// GET request against url.
	ResolveRedirect(ctx context.Context, url string) (string, error)
}
