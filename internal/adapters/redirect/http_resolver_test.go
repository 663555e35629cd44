package redirect

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const spotLocation = "https://www.google.com/maps/place/Leipzig/data=!3m1!4b1!8m2!3d51.3123709!4d12.4132924!16s"

func newTestResolver(t *testing.T) *HTTPResolver {
	t.Helper()

	r, err := NewHTTPResolver(2*time.Second, 0)
	if err != nil {
		t.Fatalf("NewHTTPResolver: %v", err)
	}
	r.backoff = time.Millisecond
	return r
}

func TestNewHTTPResolverRejectsZeroTimeout(t *testing.T) {
	if _, err := NewHTTPResolver(0, 1); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestResolveRedirectReturnsLocationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing user agent")
		}
		http.Redirect(w, r, spotLocation, http.StatusFound)
	}))
	defer srv.Close()

	headers, err := newTestResolver(t).ResolveRedirect(context.Background(), srv.URL+"/abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(headers, "HTTP/1.1 302") {
		t.Errorf("status line missing: %q", headers)
	}
	if !strings.Contains(headers, "Location: "+spotLocation+"\r\n") {
		t.Errorf("location header missing: %q", headers)
	}
}

func TestResolveRedirectRetriesTransientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		http.Redirect(w, r, spotLocation, http.StatusMovedPermanently)
	}))
	defer srv.Close()

	headers, err := newTestResolver(t).ResolveRedirect(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
	if !strings.Contains(headers, spotLocation) {
		t.Fatalf("headers = %q", headers)
	}
}

func TestResolveRedirectDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := newTestResolver(t).ResolveRedirect(context.Background(), srv.URL)

	var he *httpStatusError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 status error", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestResolveRedirectGivesUpAfterMaxAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := newTestResolver(t)
	if _, err := r.ResolveRedirect(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error")
	}
	if got := atomic.LoadInt32(&calls); int(got) != r.maxAttempts {
		t.Fatalf("calls = %d, want %d", got, r.maxAttempts)
	}
}

func TestResolveRedirectHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestResolver(t).ResolveRedirect(ctx, "http://127.0.0.1:1/")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
