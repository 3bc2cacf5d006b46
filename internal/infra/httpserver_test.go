package infra

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestHTTPServerStartReturnsNilAfterShutdown(t *testing.T) {
	cfg := &Config{
		Port:             "0",
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: time.Second,
		HTTPIdleTimeout:  time.Second,
	}
	srv := NewHTTPServer(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	// Give ListenAndServe a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start after graceful shutdown returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestHTTPServerStartFailureSurfaces(t *testing.T) {
	cfg := &Config{Port: "not-a-port"}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	if err := srv.Start(); err == nil {
		t.Fatal("expected error for invalid listen address")
	}
}
