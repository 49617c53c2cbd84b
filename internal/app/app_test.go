package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intiprima/backoffice/internal/config"
)

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) succeeded, want error")
	}
}

func TestResolveCORSConfig(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		configured  []string
		wantOrigins []string
	}{
		{
			name:        "configured origins win",
			mode:        gin.ReleaseMode,
			configured:  []string{"https://example.com"},
			wantOrigins: []string{"https://example.com"},
		},
		{
			name:        "release mode defaults to deny",
			mode:        gin.ReleaseMode,
			configured:  nil,
			wantOrigins: []string{},
		},
		{
			name:        "debug mode keeps permissive default",
			mode:        gin.DebugMode,
			configured:  nil,
			wantOrigins: []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCORSConfig(tt.mode, tt.configured)

			if len(got.AllowOrigins) != len(tt.wantOrigins) {
				t.Fatalf("AllowOrigins = %v, want %v", got.AllowOrigins, tt.wantOrigins)
			}
			for i, origin := range got.AllowOrigins {
				if origin != tt.wantOrigins[i] {
					t.Errorf("AllowOrigins[%d] = %q, want %q", i, origin, tt.wantOrigins[i])
				}
			}
		})
	}
}

// stubServer satisfies httpServer without opening a socket.
type stubServer struct {
	listenErr   error
	shutdownErr error
	shutdowns   int
}

func (s *stubServer) ListenAndServe() error {
	if s.listenErr != nil {
		return s.listenErr
	}
	select {} // block like a real server
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.shutdowns++
	return s.shutdownErr
}

func TestRun_ServerError(t *testing.T) {
	origNewServer := newHTTPServer
	origNotify := notifyContext
	defer func() {
		newHTTPServer = origNewServer
		notifyContext = origNotify
	}()

	listenErr := errors.New("address already in use")
	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return &stubServer{listenErr: listenErr}
	}
	notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(parent)
	}

	a := &App{
		engine: gin.New(),
		cfg: &config.Config{
			Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		},
	}

	err := a.Run()
	if err == nil || !errors.Is(err, listenErr) {
		t.Errorf("Run() error = %v, want wrapped listen error", err)
	}
}

func TestRun_GracefulShutdownOnSignal(t *testing.T) {
	origNewServer := newHTTPServer
	origNotify := notifyContext
	defer func() {
		newHTTPServer = origNewServer
		notifyContext = origNotify
	}()

	srv := &stubServer{}
	newHTTPServer = func(addr string, handler http.Handler) httpServer {
		return srv
	}

	ctx, cancel := context.WithCancel(context.Background())
	notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		return ctx, cancel
	}

	a := &App{
		engine: gin.New(),
		cfg: &config.Config{
			Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		},
	}

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	// Simulate SIGTERM.
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil on graceful shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after shutdown signal")
	}

	if srv.shutdowns != 1 {
		t.Errorf("Shutdown called %d times, want 1", srv.shutdowns)
	}
}

func TestRun_NilReceiverAndMissingDeps(t *testing.T) {
	var nilApp *App
	if err := nilApp.Run(); err == nil {
		t.Error("Run on nil app succeeded, want error")
	}

	if err := (&App{}).Run(); err == nil {
		t.Error("Run without config succeeded, want error")
	}

	if err := (&App{cfg: &config.Config{}}).Run(); err == nil {
		t.Error("Run without engine succeeded, want error")
	}
}
