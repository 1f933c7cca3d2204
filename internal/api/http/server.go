package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stayhive/hostel-manager/internal/apisrv/auth"
	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port            string   `mapstructure:"port"`
	Address         string   `mapstructure:"address"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	LoginAttempts   int      `mapstructure:"login_attempts"`
	LoginWindowMins int      `mapstructure:"login_window_minutes"`
}

// Server is the http server
type Server struct {
	hs           *http.Server
	c            *Config
	analytics    dependency.Analytics
	authsrv      *auth.Server
	loginLimiter *ratelimit.Limiter
	done         chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	attempts := config.LoginAttempts
	if attempts == 0 {
		attempts = 5
	}
	window := time.Duration(config.LoginWindowMins) * time.Minute
	if window == 0 {
		window = 15 * time.Minute
	}
	return &Server{
		c:            config,
		loginLimiter: ratelimit.NewLimiter(window, attempts),
		done:         make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start starts the server
func (s *Server) Start(ctx context.Context, analytics dependency.Analytics, authServer *auth.Server) error {
	s.analytics = analytics
	s.authsrv = authServer

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("hostel-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error", slog.String("error", err.Error()))
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
