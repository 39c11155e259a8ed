package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitSucceedsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := New(WithInitialInterval(time.Millisecond), WithMaxElapsed(5*time.Second))
	if err := p.Wait(context.Background(), srv.URL+"/"); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
}

func TestWaitGivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := New(WithInitialInterval(time.Millisecond), WithMaxElapsed(50*time.Millisecond))
	if err := p.Wait(context.Background(), srv.URL); err == nil {
		t.Fatal("expected wait to fail")
	}
}

func TestWaitHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(WithMaxElapsed(time.Minute))
	if err := p.Wait(ctx, srv.URL); err == nil {
		t.Fatal("expected canceled wait to fail")
	}
}

func TestWaitCustomPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/quiz" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if err := New(WithPath("/quiz"), WithMaxElapsed(time.Second)).Wait(context.Background(), srv.URL); err != nil {
		t.Fatalf("wait: %v", err)
	}
}
