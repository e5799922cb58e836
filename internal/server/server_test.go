package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/vanshika/bizbridge/internal/config"
)

func TestServeDrainsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
		w.WriteHeader(http.StatusNoContent)
	})

	srv := New(discardLogger(), config.HTTPConfig{ShutdownTimeout: 5 * time.Second}, handler)
	hookCalled := make(chan struct{})
	srv.RegisterOnShutdown(func() { close(hookCalled) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	respCh := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			respCh <- 0
			return
		}
		resp.Body.Close()
		respCh <- resp.StatusCode
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	if code := <-respCh; code != http.StatusNoContent {
		t.Fatalf("expected in-flight request to finish with 204, got %d", code)
	}
	select {
	case <-hookCalled:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown hook to run")
	}
}

func TestNewDefaultsShutdownTimeout(t *testing.T) {
	srv := New(discardLogger(), config.HTTPConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler())
	if srv.shutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", srv.shutdownTimeout)
	}
	if srv.Addr() != "127.0.0.1:9090" {
		t.Fatalf("expected addr 127.0.0.1:9090, got %s", srv.Addr())
	}
}
