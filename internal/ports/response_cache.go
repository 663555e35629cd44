package ports

import "context"

// ResponseCache stores raw upstream responses by request key.
// A miss is reported with ok=false and a nil error.
type ResponseCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}
